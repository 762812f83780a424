package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/haniyashafiq/PRO-CRM/database"
	"github.com/haniyashafiq/PRO-CRM/models"
)

// LedgerRepository exposes the aggregation reads the finance service runs.
// Every call goes straight to the store: aggregation results are recomputed
// per request and never cached.
type LedgerRepository struct{}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

func (r *LedgerRepository) CountPatients(ctx context.Context) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Patient{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return count, nil
}

func (r *LedgerRepository) CountAdmissions(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Patient{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count admissions: %w", err)
	}
	return count, nil
}

// PatientFees returns the stored monthly fee text for every patient. Parsing
// happens in the service so one malformed fee cannot fail the query.
func (r *LedgerRepository) PatientFees(ctx context.Context) ([]string, error) {
	var fees []string
	err := database.DB.Model(&models.Patient{}).Pluck("monthly_fee", &fees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read patient fees: %w", err)
	}
	return fees, nil
}

func (r *LedgerRepository) PatientAllowances(ctx context.Context) ([]models.PatientAllowance, error) {
	var rows []models.PatientAllowance
	err := database.DB.Model(&models.Patient{}).
		Select("id, name, monthly_allowance").
		Order("name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read patient allowances: %w", err)
	}
	return rows, nil
}

// CanteenTotal sums sale amounts in [from, to). No rows means 0, not an error.
func (r *LedgerRepository) CanteenTotal(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := database.DB.Model(&models.CanteenSale{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum canteen sales: %w", err)
	}
	return total, nil
}

func (r *LedgerRepository) CanteenTotalsByPatient(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	type patientTotal struct {
		PatientID string
		Total     int64
	}
	var rows []patientTotal
	err := database.DB.Model(&models.CanteenSale{}).
		Select("patient_id, COALESCE(SUM(amount), 0) AS total").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("patient_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group canteen sales: %w", err)
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.PatientID] = row.Total
	}
	return totals, nil
}

// ExpenseTotals sums the month's persisted expenses per kind.
func (r *LedgerRepository) ExpenseTotals(ctx context.Context, from, to time.Time) (incoming, outgoing int64, err error) {
	type kindTotal struct {
		Kind  string
		Total int64
	}
	var rows []kindTotal
	err = database.DB.Model(&models.Expense{}).
		Select("kind, COALESCE(SUM(amount), 0) AS total").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum expenses: %w", err)
	}

	for _, row := range rows {
		switch row.Kind {
		case models.ExpenseIncoming:
			incoming = row.Total
		case models.ExpenseOutgoing:
			outgoing = row.Total
		}
	}
	return incoming, outgoing, nil
}

func (r *LedgerRepository) ExpensesNewestFirst(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	err := database.DB.Order("created_at DESC").Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// AdmissionsBetween lists patients admitted in [from, to), newest first.
func (r *LedgerRepository) AdmissionsBetween(ctx context.Context, from, to time.Time) ([]models.Patient, error) {
	var patients []models.Patient
	err := database.DB.
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list admissions: %w", err)
	}
	return patients, nil
}
