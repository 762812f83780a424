package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/haniyashafiq/PRO-CRM/cache"
	"github.com/haniyashafiq/PRO-CRM/database"
	"github.com/haniyashafiq/PRO-CRM/models"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	cache *cache.Cache
}

func NewExpenseRepository(cache *cache.Cache) *ExpenseRepository {
	return &ExpenseRepository{cache: cache}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if expense.Kind != models.ExpenseIncoming && expense.Kind != models.ExpenseOutgoing {
		return fmt.Errorf("invalid expense kind: %q", expense.Kind)
	}
	if err := database.DB.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetAll returns the persisted ledger, most recent first. The synthetic
// auto entries are the aggregation engine's business, not the store's.
func (r *ExpenseRepository) GetAll(ctx context.Context) ([]models.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var expenses []models.Expense
	err := database.DB.Order("created_at DESC").Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uint) error {
	var expense models.Expense
	if err := database.DB.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return fmt.Errorf("failed to find expense: %w", err)
	}
	if err := database.DB.Delete(&models.Expense{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
