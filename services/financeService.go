package services

import (
	"context"
	"time"

	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/utils"
)

// FinanceLedger is the slice of the store the aggregation engine reads.
// Injected so the arithmetic can be tested without a database.
type FinanceLedger interface {
	CountPatients(ctx context.Context) (int64, error)
	CountAdmissions(ctx context.Context, from, to time.Time) (int64, error)
	PatientFees(ctx context.Context) ([]string, error)
	PatientAllowances(ctx context.Context) ([]models.PatientAllowance, error)
	CanteenTotal(ctx context.Context, from, to time.Time) (int64, error)
	CanteenTotalsByPatient(ctx context.Context, from, to time.Time) (map[string]int64, error)
	ExpenseTotals(ctx context.Context, from, to time.Time) (incoming, outgoing int64, err error)
	ExpensesNewestFirst(ctx context.Context) ([]models.Expense, error)
	AdmissionsBetween(ctx context.Context, from, to time.Time) ([]models.Patient, error)
}

// FinanceService computes the month-scoped financial metrics. Nothing here is
// cached or persisted: every call recomputes from the ledger, so the numbers
// always reflect the store at call time.
type FinanceService struct {
	ledger FinanceLedger
}

func NewFinanceService(ledger FinanceLedger) *FinanceService {
	return &FinanceService{ledger: ledger}
}

// MonthWindow returns the half-open interval [first instant of asOf's month,
// first instant of the next month). AddDate carries December into January.
func MonthWindow(asOf time.Time) (from, to time.Time) {
	from = time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	to = from.AddDate(0, 1, 0)
	return from, to
}

func (s *FinanceService) Dashboard(ctx context.Context, asOf time.Time) (*models.DashboardMetrics, error) {
	from, to := MonthWindow(asOf)

	totalPatients, err := s.ledger.CountPatients(ctx)
	if err != nil {
		return nil, err
	}

	admissions, err := s.ledger.CountAdmissions(ctx, from, to)
	if err != nil {
		return nil, err
	}

	// Income counts every patient's fee, not just this month's admissions.
	fees, err := s.ledger.PatientFees(ctx)
	if err != nil {
		return nil, err
	}
	var income int64
	for _, fee := range fees {
		income += utils.ParseAmount(fee)
	}

	canteenTotal, err := s.ledger.CanteenTotal(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &models.DashboardMetrics{
		TotalPatients:          totalPatients,
		AdmissionsThisMonth:    admissions,
		TotalIncomeThisMonth:   income,
		TotalCanteenSalesMonth: canteenTotal,
	}, nil
}

func (s *FinanceService) Admissions(ctx context.Context, asOf time.Time) ([]models.Patient, error) {
	from, to := MonthWindow(asOf)
	return s.ledger.AdmissionsBetween(ctx, from, to)
}

// CanteenBreakdown reconciles each patient's allowance against their canteen
// spending in the current month. Every patient appears exactly once; a patient
// with no sales gets zero sales, and an unparseable allowance degrades to 0
// (leaving the balance at minus the sales).
func (s *FinanceService) CanteenBreakdown(ctx context.Context, asOf time.Time) ([]models.CanteenBalance, error) {
	from, to := MonthWindow(asOf)

	patients, err := s.ledger.PatientAllowances(ctx)
	if err != nil {
		return nil, err
	}

	salesByPatient, err := s.ledger.CanteenTotalsByPatient(ctx, from, to)
	if err != nil {
		return nil, err
	}

	breakdown := make([]models.CanteenBalance, 0, len(patients))
	for _, p := range patients {
		allowance := utils.ParseAmount(p.MonthlyAllowance)
		sales := salesByPatient[p.ID]
		breakdown = append(breakdown, models.CanteenBalance{
			PatientID:        p.ID,
			Name:             p.Name,
			MonthlyAllowance: allowance,
			MonthlySales:     sales,
			RemainingBalance: allowance - sales,
		})
	}
	return breakdown, nil
}

// ExpenseList returns the persisted ledger newest first, prepended with the
// two synthetic incoming entries: auto-fees, then auto-canteen. The synthetic
// entries are dated asOf and never written to the store.
func (s *FinanceService) ExpenseList(ctx context.Context, asOf time.Time) ([]models.ExpenseEntry, error) {
	autoFees, autoCanteen, err := s.autoEntries(ctx, asOf)
	if err != nil {
		return nil, err
	}

	expenses, err := s.ledger.ExpensesNewestFirst(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ExpenseEntry, 0, len(expenses)+2)
	entries = append(entries,
		models.ExpenseEntry{
			Kind:      models.ExpenseIncoming,
			Amount:    autoFees,
			Category:  "Monthly Fees",
			Note:      "Sum of all patients' monthly fees",
			CreatedAt: asOf,
			Auto:      true,
		},
		models.ExpenseEntry{
			Kind:      models.ExpenseIncoming,
			Amount:    autoCanteen,
			Category:  "Canteen Sales",
			Note:      "This month's canteen sales",
			CreatedAt: asOf,
			Auto:      true,
		},
	)
	for _, e := range expenses {
		entries = append(entries, models.ExpenseEntry{
			ID:         e.ID,
			Kind:       e.Kind,
			Amount:     e.Amount,
			Category:   e.Category,
			Note:       e.Note,
			RecordedBy: e.RecordedBy,
			CreatedAt:  e.CreatedAt,
		})
	}
	return entries, nil
}

// ExpenseSummary folds the month's ledger totals together with the synthetic
// income. Auto entries only ever count as incoming.
func (s *FinanceService) ExpenseSummary(ctx context.Context, asOf time.Time) (*models.ExpenseSummary, error) {
	from, to := MonthWindow(asOf)

	incoming, outgoing, err := s.ledger.ExpenseTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	autoFees, autoCanteen, err := s.autoEntries(ctx, asOf)
	if err != nil {
		return nil, err
	}

	totalIncoming := incoming + autoFees + autoCanteen
	return &models.ExpenseSummary{
		Incoming:    totalIncoming,
		Outgoing:    outgoing,
		Net:         totalIncoming - outgoing,
		AutoFees:    autoFees,
		AutoCanteen: autoCanteen,
	}, nil
}

func (s *FinanceService) autoEntries(ctx context.Context, asOf time.Time) (autoFees, autoCanteen int64, err error) {
	fees, err := s.ledger.PatientFees(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, fee := range fees {
		autoFees += utils.ParseAmount(fee)
	}

	from, to := MonthWindow(asOf)
	autoCanteen, err = s.ledger.CanteenTotal(ctx, from, to)
	if err != nil {
		return 0, 0, err
	}
	return autoFees, autoCanteen, nil
}
