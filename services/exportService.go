package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoPatients is returned instead of an empty workbook when there is
// nothing to export.
var ErrNoPatients = errors.New("no patients found")

const exportSheetName = "Patients"

// PatientSource supplies the export snapshot.
type PatientSource interface {
	GetAll(ctx context.Context) ([]models.Patient, error)
}

// exportColumn pairs a column name with its cell extractor.
type exportColumn struct {
	name  string
	value func(p models.Patient) string
}

// exportColumns fixes the column order of a full export.
var exportColumns = []exportColumn{
	{"name", func(p models.Patient) string { return p.Name }},
	{"fatherName", func(p models.Patient) string { return p.FatherName }},
	{"guardianName", func(p models.Patient) string { return p.GuardianName }},
	{"relation", func(p models.Patient) string { return p.Relation }},
	{"admissionDate", func(p models.Patient) string { return p.AdmissionDate }},
	{"idNo", func(p models.Patient) string { return p.IDNo }},
	{"age", func(p models.Patient) string { return p.Age }},
	{"cnic", func(p models.Patient) string { return p.CNIC }},
	{"contactNo", func(p models.Patient) string { return p.ContactNo }},
	{"address", func(p models.Patient) string { return p.Address }},
	{"complaint", func(p models.Patient) string { return p.Complaint }},
	{"drugProblem", func(p models.Patient) string { return p.DrugProblem }},
	{"maritalStatus", func(p models.Patient) string { return p.MaritalStatus }},
	{"prevAdmissions", func(p models.Patient) string { return p.PrevAdmissions }},
	{"monthlyFee", func(p models.Patient) string { return p.MonthlyFee }},
	{"monthlyAllowance", func(p models.Patient) string { return p.MonthlyAllowance }},
	{"laundryStatus", func(p models.Patient) string { return strconv.FormatBool(p.LaundryStatus) }},
	{"laundryAmount", func(p models.Patient) string { return strconv.FormatInt(p.LaundryAmount, 10) }},
	{"created_at", func(p models.Patient) string { return p.CreatedAt.Format(time.RFC3339) }},
}

type ExportService struct {
	patients PatientSource
}

func NewExportService(patients PatientSource) *ExportService {
	return &ExportService{patients: patients}
}

// Project flattens the patients into a header row plus one row per patient.
// Unknown requested columns are dropped; if nothing valid remains the full
// column set is used. Sensitive cells are blanked for non-Admin callers so
// the column still appears, just empty.
func Project(patients []models.Patient, role string, fields []string) (header []string, rows [][]string) {
	columns := selectColumns(fields)

	header = make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.name
	}

	rows = make([][]string, 0, len(patients))
	for _, p := range patients {
		row := make([]string, len(columns))
		for i, col := range columns {
			if role != models.RoleAdmin && models.IsSensitiveField(col.name) {
				row[i] = ""
				continue
			}
			row[i] = col.value(p)
		}
		rows = append(rows, row)
	}
	return header, rows
}

func selectColumns(fields []string) []exportColumn {
	if len(fields) == 0 {
		return exportColumns
	}

	byName := make(map[string]exportColumn, len(exportColumns))
	for _, col := range exportColumns {
		byName[col.name] = col
	}

	// The caller's order wins for valid names.
	selected := make([]exportColumn, 0, len(fields))
	for _, name := range fields {
		if col, ok := byName[name]; ok {
			selected = append(selected, col)
		}
	}
	if len(selected) == 0 {
		return exportColumns
	}
	return selected
}

// BuildWorkbook produces the export spreadsheet for the given role and
// column selection. Returns ErrNoPatients when the ledger holds no patients.
func (s *ExportService) BuildWorkbook(ctx context.Context, role string, fields []string) (*excelize.File, error) {
	patients, err := s.patients.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(patients) == 0 {
		return nil, ErrNoPatients
	}

	header, rows := Project(patients, role, fields)

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheetName)

	for i, name := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheetName, cell, name); err != nil {
			return nil, err
		}
	}
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
