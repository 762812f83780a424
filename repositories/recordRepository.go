package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/haniyashafiq/PRO-CRM/cache"
	"github.com/haniyashafiq/PRO-CRM/database"
	"github.com/haniyashafiq/PRO-CRM/models"
)

type RecordRepository struct {
	cache *cache.Cache
}

func NewRecordRepository(cache *cache.Cache) *RecordRepository {
	return &RecordRepository{cache: cache}
}

// Create appends a record. Records are never updated or individually deleted;
// they only go away when the owning patient is removed.
func (r *RecordRepository) Create(ctx context.Context, record *models.PatientRecord) error {
	if err := database.DB.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create patient record: %w", err)
	}
	return r.DeleteAllCache(ctx)
}

// GetByPatient returns a patient's records, most recent first.
func (r *RecordRepository) GetByPatient(ctx context.Context, patientID string) ([]models.PatientRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var records []models.PatientRecord
	err := database.DB.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get patient records: %w", err)
	}
	return records, nil
}

func (r *RecordRepository) DeleteAllCache(ctx context.Context) error {
	return r.cache.DeleteAll(ctx, "records_cache")
}
