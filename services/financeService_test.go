package services

import (
	"context"
	"testing"
	"time"

	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLedger implements FinanceLedger with overridable func fields.
type mockLedger struct {
	countPatients          func(ctx context.Context) (int64, error)
	countAdmissions        func(ctx context.Context, from, to time.Time) (int64, error)
	patientFees            func(ctx context.Context) ([]string, error)
	patientAllowances      func(ctx context.Context) ([]models.PatientAllowance, error)
	canteenTotal           func(ctx context.Context, from, to time.Time) (int64, error)
	canteenTotalsByPatient func(ctx context.Context, from, to time.Time) (map[string]int64, error)
	expenseTotals          func(ctx context.Context, from, to time.Time) (int64, int64, error)
	expensesNewestFirst    func(ctx context.Context) ([]models.Expense, error)
	admissionsBetween      func(ctx context.Context, from, to time.Time) ([]models.Patient, error)
}

var _ FinanceLedger = (*mockLedger)(nil)

func (m *mockLedger) CountPatients(ctx context.Context) (int64, error) {
	return m.countPatients(ctx)
}

func (m *mockLedger) CountAdmissions(ctx context.Context, from, to time.Time) (int64, error) {
	return m.countAdmissions(ctx, from, to)
}

func (m *mockLedger) PatientFees(ctx context.Context) ([]string, error) {
	return m.patientFees(ctx)
}

func (m *mockLedger) PatientAllowances(ctx context.Context) ([]models.PatientAllowance, error) {
	return m.patientAllowances(ctx)
}

func (m *mockLedger) CanteenTotal(ctx context.Context, from, to time.Time) (int64, error) {
	return m.canteenTotal(ctx, from, to)
}

func (m *mockLedger) CanteenTotalsByPatient(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	return m.canteenTotalsByPatient(ctx, from, to)
}

func (m *mockLedger) ExpenseTotals(ctx context.Context, from, to time.Time) (int64, int64, error) {
	return m.expenseTotals(ctx, from, to)
}

func (m *mockLedger) ExpensesNewestFirst(ctx context.Context) ([]models.Expense, error) {
	return m.expensesNewestFirst(ctx)
}

func (m *mockLedger) AdmissionsBetween(ctx context.Context, from, to time.Time) ([]models.Patient, error) {
	return m.admissionsBetween(ctx, from, to)
}

func TestMonthWindow(t *testing.T) {
	asOf := time.Date(2024, time.November, 15, 10, 30, 0, 0, time.UTC)
	from, to := MonthWindow(asOf)

	assert.Equal(t, time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), to)

	// The window is half-open: the last instant of the month is in,
	// the first instant of the next month is out.
	lastInstant := time.Date(2024, time.November, 30, 23, 59, 59, 0, time.UTC)
	assert.True(t, !lastInstant.Before(from) && lastInstant.Before(to))
}

func TestMonthWindowDecemberRollover(t *testing.T) {
	asOf := time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)
	from, to := MonthWindow(asOf)

	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestDashboardSumsFeesLeniently(t *testing.T) {
	ledger := &mockLedger{
		countPatients: func(ctx context.Context) (int64, error) { return 3, nil },
		countAdmissions: func(ctx context.Context, from, to time.Time) (int64, error) {
			return 1, nil
		},
		patientFees: func(ctx context.Context) ([]string, error) {
			return []string{"1,000", "abc", "2500"}, nil
		},
		canteenTotal: func(ctx context.Context, from, to time.Time) (int64, error) {
			return 750, nil
		},
	}
	service := NewFinanceService(ledger)

	metrics, err := service.Dashboard(context.Background(), time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, int64(3), metrics.TotalPatients)
	assert.Equal(t, int64(1), metrics.AdmissionsThisMonth)
	assert.Equal(t, int64(3500), metrics.TotalIncomeThisMonth)
	assert.Equal(t, int64(750), metrics.TotalCanteenSalesMonth)
}

func TestCanteenBreakdownEveryPatientOnce(t *testing.T) {
	ledger := &mockLedger{
		patientAllowances: func(ctx context.Context) ([]models.PatientAllowance, error) {
			return []models.PatientAllowance{
				{ID: "HP-000001", Name: "Ahmed", MonthlyAllowance: "2,000"},
				{ID: "HP-000002", Name: "Bilal", MonthlyAllowance: "abc"},
				{ID: "HP-000003", Name: "Chand", MonthlyAllowance: "1500"},
			}, nil
		},
		canteenTotalsByPatient: func(ctx context.Context, from, to time.Time) (map[string]int64, error) {
			return map[string]int64{
				"HP-000001": 800,
				"HP-000002": 500,
			}, nil
		},
	}
	service := NewFinanceService(ledger)

	breakdown, err := service.CanteenBreakdown(context.Background(), time.Now())
	require.NoError(t, err)
	require.Len(t, breakdown, 3)

	assert.Equal(t, models.CanteenBalance{
		PatientID: "HP-000001", Name: "Ahmed",
		MonthlyAllowance: 2000, MonthlySales: 800, RemainingBalance: 1200,
	}, breakdown[0])

	// Unparseable allowance degrades to 0, leaving a negative balance.
	assert.Equal(t, int64(0), breakdown[1].MonthlyAllowance)
	assert.Equal(t, int64(-500), breakdown[1].RemainingBalance)

	// No sales recorded means zero sales, full allowance remaining.
	assert.Equal(t, int64(0), breakdown[2].MonthlySales)
	assert.Equal(t, int64(1500), breakdown[2].RemainingBalance)
}

func TestExpenseListPrependsAutoEntries(t *testing.T) {
	asOf := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	ledger := &mockLedger{
		patientFees: func(ctx context.Context) ([]string, error) {
			return []string{"10,000", "5000"}, nil
		},
		canteenTotal: func(ctx context.Context, from, to time.Time) (int64, error) {
			return 1200, nil
		},
		expensesNewestFirst: func(ctx context.Context) ([]models.Expense, error) {
			return []models.Expense{
				{ID: 7, Kind: models.ExpenseOutgoing, Amount: 900, Category: "Groceries"},
			}, nil
		},
	}
	service := NewFinanceService(ledger)

	entries, err := service.ExpenseList(context.Background(), asOf)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Auto fees first, auto canteen second, persisted entries after.
	assert.True(t, entries[0].Auto)
	assert.Equal(t, models.ExpenseIncoming, entries[0].Kind)
	assert.Equal(t, "Monthly Fees", entries[0].Category)
	assert.Equal(t, int64(15000), entries[0].Amount)
	assert.Equal(t, asOf, entries[0].CreatedAt)

	assert.True(t, entries[1].Auto)
	assert.Equal(t, "Canteen Sales", entries[1].Category)
	assert.Equal(t, int64(1200), entries[1].Amount)

	assert.False(t, entries[2].Auto)
	assert.Equal(t, uint(7), entries[2].ID)
	assert.Equal(t, int64(900), entries[2].Amount)
}

func TestExpenseSummaryFoldsAutoIncome(t *testing.T) {
	ledger := &mockLedger{
		expenseTotals: func(ctx context.Context, from, to time.Time) (int64, int64, error) {
			return 2000, 3000, nil
		},
		patientFees: func(ctx context.Context) ([]string, error) {
			return []string{"4000"}, nil
		},
		canteenTotal: func(ctx context.Context, from, to time.Time) (int64, error) {
			return 1000, nil
		},
	}
	service := NewFinanceService(ledger)

	summary, err := service.ExpenseSummary(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, int64(7000), summary.Incoming)
	assert.Equal(t, int64(3000), summary.Outgoing)
	assert.Equal(t, int64(4000), summary.Net)
	assert.Equal(t, int64(4000), summary.AutoFees)
	assert.Equal(t, int64(1000), summary.AutoCanteen)
}
