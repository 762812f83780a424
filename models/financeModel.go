package models

import (
	"time"
)

// PatientAllowance is the slice of a patient row the canteen reconciliation reads.
type PatientAllowance struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	MonthlyAllowance string `json:"monthlyAllowance"`
}

// DashboardMetrics holds the month-scoped headline numbers.
type DashboardMetrics struct {
	TotalPatients           int64 `json:"totalPatients"`
	AdmissionsThisMonth     int64 `json:"admissionsThisMonth"`
	TotalIncomeThisMonth    int64 `json:"totalIncomeThisMonth"`
	TotalCanteenSalesMonth  int64 `json:"totalCanteenSalesThisMonth"`
}

// CanteenBalance is one row of the per-patient allowance reconciliation.
type CanteenBalance struct {
	PatientID        string `json:"patient_id"`
	Name             string `json:"name"`
	MonthlyAllowance int64  `json:"monthlyAllowance"`
	MonthlySales     int64  `json:"monthlySales"`
	RemainingBalance int64  `json:"remainingBalance"`
}

// ExpenseEntry is an expense as presented to callers. Auto entries are
// computed at read time and never persisted.
type ExpenseEntry struct {
	ID         uint      `json:"id,omitempty"`
	Kind       string    `json:"kind"`
	Amount     int64     `json:"amount"`
	Category   string    `json:"category"`
	Note       string    `json:"note"`
	RecordedBy string    `json:"recorded_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	Auto       bool      `json:"auto"`
}

// ExpenseSummary is the month's reconciled totals.
type ExpenseSummary struct {
	Incoming    int64 `json:"incoming"`
	Outgoing    int64 `json:"outgoing"`
	Net         int64 `json:"net"`
	AutoFees    int64 `json:"autoFees"`
	AutoCanteen int64 `json:"autoCanteen"`
}
