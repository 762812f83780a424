package services

import (
	"context"

	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/repositories"
)

type CallMeetingService struct {
	repository *repositories.CallMeetingRepository
}

func NewCallMeetingService(repository *repositories.CallMeetingRepository) *CallMeetingService {
	return &CallMeetingService{repository: repository}
}

func (s *CallMeetingService) Upsert(ctx context.Context, entry *models.CallMeetingEntry) error {
	return s.repository.Upsert(ctx, entry)
}

func (s *CallMeetingService) GetAll(ctx context.Context) ([]models.CallMeetingEntry, error) {
	return s.repository.GetAll(ctx)
}

func (s *CallMeetingService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}

func (s *CallMeetingService) MonthSummary(ctx context.Context, month, year int) (map[string]int64, error) {
	return s.repository.MonthSummary(ctx, month, year)
}
