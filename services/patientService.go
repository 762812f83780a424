package services

import (
	"context"

	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/repositories"
)

// patientColumns maps the JSON field names accepted on patient writes to
// their database columns. Anything not listed here is silently dropped,
// which keeps stray keys (like "id" or "created_at") out of updates.
var patientColumns = map[string]string{
	"name":             "name",
	"fatherName":       "father_name",
	"guardianName":     "guardian_name",
	"relation":         "relation",
	"admissionDate":    "admission_date",
	"idNo":             "id_no",
	"age":              "age",
	"cnic":             "cnic",
	"contactNo":        "contact_no",
	"address":          "address",
	"complaint":        "complaint",
	"drugProblem":      "drug_problem",
	"maritalStatus":    "marital_status",
	"prevAdmissions":   "prev_admissions",
	"monthlyFee":       "monthly_fee",
	"monthlyAllowance": "monthly_allowance",
	"laundryStatus":    "laundry_status",
	"laundryAmount":    "laundry_amount",
}

type PatientService struct {
	repository *repositories.PatientRepository
}

func NewPatientService(repository *repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	return s.repository.Create(ctx, patient)
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.repository.GetAll(ctx)
}

// Update applies the caller's field set after the role filter. Non-Admin
// editors have the sensitive fields dropped silently: the update still
// succeeds, those fields just keep their stored values.
func (s *PatientService) Update(ctx context.Context, id string, role string, fields map[string]interface{}) error {
	return s.repository.Update(ctx, id, filterPatientColumns(role, fields))
}

// filterPatientColumns translates JSON field names to columns, dropping
// unknown keys and, for non-Admin roles, the sensitive fields.
func filterPatientColumns(role string, fields map[string]interface{}) map[string]interface{} {
	columns := make(map[string]interface{}, len(fields))
	for name, value := range fields {
		column, ok := patientColumns[name]
		if !ok {
			continue
		}
		if role != models.RoleAdmin && models.IsSensitiveField(name) {
			continue
		}
		columns[column] = value
	}
	return columns
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
