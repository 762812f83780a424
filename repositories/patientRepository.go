package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/haniyashafiq/PRO-CRM/cache"
	"github.com/haniyashafiq/PRO-CRM/database"
	"github.com/haniyashafiq/PRO-CRM/models"
	"gorm.io/gorm"
)

const (
	PatientCacheExpiry = 7 * 24 * time.Hour
)

type PatientRepository struct {
	cache       *cache.Cache
	recordRepo  *RecordRepository
	canteenRepo *CanteenRepository
}

func NewPatientRepository(cache *cache.Cache, recordRepo *RecordRepository, canteenRepo *CanteenRepository) *PatientRepository {
	return &PatientRepository{
		cache:       cache,
		recordRepo:  recordRepo,
		canteenRepo: canteenRepo,
	}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s_%s", patient.Name, patient.CNIC)
	lockValue := uuid.New().String()

	// Retry logic for acquiring lock
	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	// Obtain the next sequence value for the display ID
	var nextID string
	if err := database.DB.Raw("SELECT 'HP-' || LPAD(nextval('patient_id_seq')::TEXT, 6, '0')").Scan(&nextID).Error; err != nil {
		return fmt.Errorf("failed to obtain next sequence value: %w", err)
	}
	patient.ID = nextID

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(patient).Error; err != nil {
			if rollbackErr := tx.Exec("SELECT setval('patient_id_seq', (SELECT last_value FROM patient_id_seq) - 1, false)").Error; rollbackErr != nil {
				return fmt.Errorf("transaction failed and sequence rollback failed: %v, rollback error: %v", err, rollbackErr)
			}
			return fmt.Errorf("failed to create patient: %w", err)
		}

		if err := r.cache.Delete(ctx, r.getPatientCacheKey(patient.ID)); err != nil {
			return fmt.Errorf("failed to delete patient cache: %w", err)
		}
		return r.cache.DeleteAll(ctx, "patients_cache")
	})
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(id)
	cachedPatient, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatient != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cachedPatient), &patient); err == nil {
			return &patient, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err = database.DB.First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}

	return &patient, nil
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "patients_cache"
	cachedPatients, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatients != "" {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cachedPatients), &patients); err == nil {
			return patients, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	err = database.DB.Order("created_at DESC").Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	patientsJSON, err := json.Marshal(patients)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patients: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientsJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}

	return patients, nil
}

// Update applies a partial update. fields maps column names to new values;
// the service layer has already dropped anything the caller may not touch.
func (r *PatientRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	lockKey := fmt.Sprintf("patient_lock:%s", id)
	lockValue := uuid.New().String()
	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	result := database.DB.Model(&models.Patient{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update patient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "patients_cache")
}

// Delete removes the patient and every associated record and sale in one
// transaction.
func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	lockKey := fmt.Sprintf("patient_lock:%s", id)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	var patient models.Patient
	if err := database.DB.First(&patient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return fmt.Errorf("failed to find patient: %w", err)
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", id).Delete(&models.PatientRecord{}).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Where("patient_id = ?", id).Delete(&models.CanteenSale{}).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Delete(&models.Patient{}, "id = ?", id).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
			return err
		}
		if err := r.cache.DeleteAll(ctx, "patients_cache"); err != nil {
			return err
		}
		if err := r.recordRepo.DeleteAllCache(ctx); err != nil {
			return err
		}
		return r.canteenRepo.DeleteAllCache(ctx)
	})
}

func (r *PatientRepository) getPatientCacheKey(patientID string) string {
	return fmt.Sprintf("patient_cache:%s", patientID)
}
