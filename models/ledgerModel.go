package models

import (
	"time"
)

// CanteenSale model. Append-only ledger: there is no update path.
type CanteenSale struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID  string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Item       string    `gorm:"column:item;not null" json:"item"`
	Amount     int64     `gorm:"column:amount;not null" json:"amount"`
	RecordedBy string    `gorm:"column:recorded_by" json:"recorded_by"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	Patient    Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (CanteenSale) TableName() string {
	return "canteen_sales"
}

// Expense kinds.
const (
	ExpenseIncoming = "incoming"
	ExpenseOutgoing = "outgoing"
)

// Expense model
type Expense struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Kind       string    `gorm:"column:kind;check:kind IN ('incoming', 'outgoing');not null;index" json:"kind"`
	Amount     int64     `gorm:"column:amount;not null" json:"amount"`
	Category   string    `gorm:"column:category" json:"category"`
	Note       string    `gorm:"column:note" json:"note"`
	RecordedBy string    `gorm:"column:recorded_by" json:"recorded_by"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

// Contact types for the call/meeting tracker.
const (
	ContactCall    = "Call"
	ContactMeeting = "Meeting"
	ContactText    = "Text"
)

// CallMeetingEntry model. At most one entry per (person_name, day, month, year);
// a second write with the same key overwrites the first.
type CallMeetingEntry struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PersonName    string    `gorm:"column:person_name;not null;uniqueIndex:idx_contact_key" json:"person_name"`
	Day           int       `gorm:"column:day;not null;uniqueIndex:idx_contact_key" json:"day"`
	Month         int       `gorm:"column:month;not null;uniqueIndex:idx_contact_key;index:idx_contact_month" json:"month"`
	Year          int       `gorm:"column:year;not null;uniqueIndex:idx_contact_key;index:idx_contact_month" json:"year"`
	Type          string    `gorm:"column:type;check:type IN ('Call', 'Meeting', 'Text');not null" json:"type"`
	AdmissionDate string    `gorm:"column:admission_date" json:"admission_date"`
	RecordedBy    string    `gorm:"column:recorded_by" json:"recorded_by"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CallMeetingEntry) TableName() string {
	return "call_meeting_entries"
}
