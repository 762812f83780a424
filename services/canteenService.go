package services

import (
	"context"

	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/repositories"
)

type CanteenService struct {
	repository  *repositories.CanteenRepository
	patientRepo *repositories.PatientRepository
}

func NewCanteenService(repository *repositories.CanteenRepository, patientRepo *repositories.PatientRepository) *CanteenService {
	return &CanteenService{repository: repository, patientRepo: patientRepo}
}

// Record appends a sale after confirming the patient exists. Returns
// (false, nil) when the patient is unknown.
func (s *CanteenService) Record(ctx context.Context, sale *models.CanteenSale) (bool, error) {
	patient, err := s.patientRepo.GetByID(ctx, sale.PatientID)
	if err != nil {
		return false, err
	}
	if patient == nil {
		return false, nil
	}
	return true, s.repository.Create(ctx, sale)
}

func (s *CanteenService) GetAll(ctx context.Context) ([]models.CanteenSale, error) {
	return s.repository.GetAll(ctx)
}
