package services

import (
	"context"

	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/repositories"
)

type RecordService struct {
	repository  *repositories.RecordRepository
	patientRepo *repositories.PatientRepository
}

func NewRecordService(repository *repositories.RecordRepository, patientRepo *repositories.PatientRepository) *RecordService {
	return &RecordService{repository: repository, patientRepo: patientRepo}
}

// Append writes a record after confirming the patient exists. Returns
// (false, nil) when the patient is unknown.
func (s *RecordService) Append(ctx context.Context, record *models.PatientRecord) (bool, error) {
	patient, err := s.patientRepo.GetByID(ctx, record.PatientID)
	if err != nil {
		return false, err
	}
	if patient == nil {
		return false, nil
	}
	return true, s.repository.Create(ctx, record)
}

func (s *RecordService) GetByPatient(ctx context.Context, patientID string) ([]models.PatientRecord, error) {
	return s.repository.GetByPatient(ctx, patientID)
}
