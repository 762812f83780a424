package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/haniyashafiq/PRO-CRM/cache"
	"github.com/haniyashafiq/PRO-CRM/database"
	"github.com/haniyashafiq/PRO-CRM/models"
)

const (
	CanteenCacheExpiry = 24 * time.Hour
)

type CanteenRepository struct {
	cache *cache.Cache
}

func NewCanteenRepository(cache *cache.Cache) *CanteenRepository {
	return &CanteenRepository{cache: cache}
}

// Create appends a sale to the ledger. Sales are immutable once written.
func (r *CanteenRepository) Create(ctx context.Context, sale *models.CanteenSale) error {
	if err := database.DB.Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create canteen sale: %w", err)
	}
	return r.DeleteAllCache(ctx)
}

func (r *CanteenRepository) GetAll(ctx context.Context) ([]models.CanteenSale, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "canteen_sales_cache"
	cachedSales, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedSales != "" {
		var sales []models.CanteenSale
		if err := json.Unmarshal([]byte(cachedSales), &sales); err == nil {
			return sales, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get canteen sales from cache: %v", err)
	}

	var sales []models.CanteenSale
	err = database.DB.Order("created_at DESC").Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get canteen sales: %w", err)
	}

	salesJSON, err := json.Marshal(sales)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal canteen sales: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, salesJSON, CanteenCacheExpiry); err != nil {
		log.Printf("Failed to set canteen sales in cache: %v", err)
	}

	return sales, nil
}

func (r *CanteenRepository) DeleteAllCache(ctx context.Context) error {
	return r.cache.DeleteAll(ctx, "canteen_sales_cache")
}
