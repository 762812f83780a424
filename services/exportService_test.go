package services

import (
	"context"
	"testing"
	"time"

	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPatientSource struct {
	getAll func(ctx context.Context) ([]models.Patient, error)
}

var _ PatientSource = (*mockPatientSource)(nil)

func (m *mockPatientSource) GetAll(ctx context.Context) ([]models.Patient, error) {
	return m.getAll(ctx)
}

func samplePatient() models.Patient {
	return models.Patient{
		ID:               "HP-000001",
		Name:             "Ahmed",
		FatherName:       "Karim",
		GuardianName:     "Karim",
		Relation:         "Father",
		AdmissionDate:    "2024-01-10",
		CNIC:             "35202-1234567-1",
		ContactNo:        "0300-1234567",
		MonthlyFee:       "25,000",
		MonthlyAllowance: "2,000",
		LaundryStatus:    true,
		LaundryAmount:    500,
		CreatedAt:        time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestProjectFullColumnSet(t *testing.T) {
	header, rows := Project([]models.Patient{samplePatient()}, models.RoleAdmin, nil)

	require.Len(t, rows, 1)
	assert.Len(t, header, len(exportColumns))
	assert.Equal(t, "name", header[0])
	assert.Equal(t, "created_at", header[len(header)-1])
	assert.Equal(t, "Ahmed", rows[0][0])
}

func TestProjectSelectsRequestedColumnsInOrder(t *testing.T) {
	header, rows := Project([]models.Patient{samplePatient()}, models.RoleAdmin, []string{"monthlyFee", "name"})

	assert.Equal(t, []string{"monthlyFee", "name"}, header)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"25,000", "Ahmed"}, rows[0])
}

func TestProjectFallsBackOnUnknownColumns(t *testing.T) {
	header, _ := Project([]models.Patient{samplePatient()}, models.RoleAdmin, []string{"nonexistent"})

	// Nothing valid requested, so the full column set is used.
	assert.Len(t, header, len(exportColumns))
}

func TestProjectBlanksSensitiveCellsForNonAdmin(t *testing.T) {
	fields := []string{"name", "monthlyFee", "cnic", "age"}

	header, rows := Project([]models.Patient{samplePatient()}, models.RoleDoctor, fields)

	// Columns still appear, the cells are just empty.
	assert.Equal(t, fields, header)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ahmed", rows[0][0])
	assert.Equal(t, "", rows[0][1])
	assert.Equal(t, "", rows[0][2])
}

func TestBuildWorkbookNoPatients(t *testing.T) {
	source := &mockPatientSource{
		getAll: func(ctx context.Context) ([]models.Patient, error) {
			return nil, nil
		},
	}
	service := NewExportService(source)

	_, err := service.BuildWorkbook(context.Background(), models.RoleAdmin, nil)
	assert.ErrorIs(t, err, ErrNoPatients)
}

func TestBuildWorkbookWritesHeaderAndRows(t *testing.T) {
	source := &mockPatientSource{
		getAll: func(ctx context.Context) ([]models.Patient, error) {
			return []models.Patient{samplePatient()}, nil
		},
	}
	service := NewExportService(source)

	file, err := service.BuildWorkbook(context.Background(), models.RoleAdmin, []string{"name", "monthlyFee"})
	require.NoError(t, err)

	name, err := file.GetCellValue(exportSheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "name", name)

	fee, err := file.GetCellValue(exportSheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "25,000", fee)
}
