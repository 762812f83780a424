package services

import (
	"context"

	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/repositories"
)

type ExpenseService struct {
	repository *repositories.ExpenseRepository
}

func NewExpenseService(repository *repositories.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repository: repository}
}

func (s *ExpenseService) Create(ctx context.Context, expense *models.Expense) error {
	return s.repository.Create(ctx, expense)
}

func (s *ExpenseService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
