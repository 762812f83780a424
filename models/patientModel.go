package models

import (
	"time"
)

// Patient model
type Patient struct {
	ID               string          `gorm:"primaryKey;column:id" json:"id"`
	Name             string          `gorm:"column:name;not null;index" json:"name"`
	FatherName       string          `gorm:"column:father_name" json:"fatherName"`
	GuardianName     string          `gorm:"column:guardian_name" json:"guardianName"`
	Relation         string          `gorm:"column:relation" json:"relation"`
	AdmissionDate    string          `gorm:"column:admission_date" json:"admissionDate"`
	IDNo             string          `gorm:"column:id_no" json:"idNo"`
	Age              string          `gorm:"column:age" json:"age"`
	CNIC             string          `gorm:"column:cnic" json:"cnic"`
	ContactNo        string          `gorm:"column:contact_no" json:"contactNo"`
	Address          string          `gorm:"column:address" json:"address"`
	Complaint        string          `gorm:"column:complaint" json:"complaint"`
	DrugProblem      string          `gorm:"column:drug_problem" json:"drugProblem"`
	MaritalStatus    string          `gorm:"column:marital_status" json:"maritalStatus"`
	PrevAdmissions   string          `gorm:"column:prev_admissions" json:"prevAdmissions"`
	MonthlyFee       string          `gorm:"column:monthly_fee" json:"monthlyFee"`
	MonthlyAllowance string          `gorm:"column:monthly_allowance" json:"monthlyAllowance"`
	LaundryStatus    bool            `gorm:"column:laundry_status" json:"laundryStatus"`
	LaundryAmount    int64           `gorm:"column:laundry_amount" json:"laundryAmount"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	Records          []PatientRecord `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	CanteenSales     []CanteenSale   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}

// Record type discriminators. Notes are general free-text observations;
// session notes and medical records are the typed clinical streams.
const (
	RecordNote          = "note"
	RecordSessionNote   = "session_note"
	RecordMedicalRecord = "medical_record"
)

// PatientRecord model. Append-only: rows are never updated once written.
type PatientRecord struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID  string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Type       string    `gorm:"column:type;check:type IN ('note', 'session_note', 'medical_record');not null" json:"type"`
	Text       string    `gorm:"column:text;not null" json:"text"`
	RecordedBy string    `gorm:"column:recorded_by" json:"recorded_by"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient    Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (PatientRecord) TableName() string {
	return "patient_records"
}

// SensitiveFields lists the patient JSON fields only Admins may write or read
// back in exports. Non-Admin edits drop them; non-Admin exports blank them.
var SensitiveFields = []string{
	"monthlyFee",
	"monthlyAllowance",
	"laundryStatus",
	"laundryAmount",
	"cnic",
	"contactNo",
	"guardianName",
	"relation",
	"address",
}

// IsSensitiveField reports whether the given JSON field name is restricted to Admins.
func IsSensitiveField(name string) bool {
	for _, f := range SensitiveFields {
		if f == name {
			return true
		}
	}
	return false
}
