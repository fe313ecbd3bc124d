package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TreatmentSession enriches a TREATMENT session with clinical and billing records
type TreatmentSession struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID  int       `gorm:"not null;uniqueIndex" json:"session_id"`
	CategoryID *int      `gorm:"index" json:"category_id"`
	Diagnosis  string    `gorm:"type:text" json:"diagnosis,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Session        *Session        `gorm:"foreignKey:SessionID" json:"session,omitempty"`
	Category       *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Prescriptions  []Prescription  `gorm:"foreignKey:TreatmentSessionID" json:"prescriptions,omitempty"`
	ToothSessions  []ToothSession  `gorm:"foreignKey:TreatmentSessionID" json:"tooth_sessions,omitempty"`
	PaymentRecords []PaymentRecord `gorm:"foreignKey:TreatmentSessionID" json:"payment_records,omitempty"`
}

func (TreatmentSession) TableName() string {
	return "treatment_sessions"
}

// Category groups treatment procedures
type Category struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`

	Procedures []Procedure `gorm:"foreignKey:CategoryID" json:"procedures,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

type Procedure struct {
	ID         int             `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID int             `gorm:"not null;index" json:"category_id"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
}

func (Procedure) TableName() string {
	return "procedures"
}

type Drug struct {
	ID    int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Unit  string          `gorm:"type:varchar(50)" json:"unit,omitempty"`
	Price decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
}

func (Drug) TableName() string {
	return "drugs"
}

type Prescription struct {
	ID                 int    `gorm:"primaryKey;autoIncrement" json:"id"`
	TreatmentSessionID int    `gorm:"not null;index" json:"treatment_session_id"`
	DrugID             int    `gorm:"not null" json:"drug_id"`
	Quantity           int    `gorm:"not null" json:"quantity"`
	Dosage             string `gorm:"type:varchar(255)" json:"dosage,omitempty"`
	Note               string `gorm:"type:text" json:"note,omitempty"`

	Drug *Drug `gorm:"foreignKey:DrugID" json:"drug,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// Tooth is a position in the dental chart
type Tooth struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Position int    `gorm:"not null;uniqueIndex" json:"position"`
}

func (Tooth) TableName() string {
	return "teeth"
}

// ToothSession records work done on one tooth during a treatment
type ToothSession struct {
	ID                 int    `gorm:"primaryKey;autoIncrement" json:"id"`
	TreatmentSessionID int    `gorm:"not null;index" json:"treatment_session_id"`
	ToothID            int    `gorm:"not null" json:"tooth_id"`
	Note               string `gorm:"type:text" json:"note,omitempty"`

	Tooth *Tooth `gorm:"foreignKey:ToothID" json:"tooth,omitempty"`
}

func (ToothSession) TableName() string {
	return "tooth_sessions"
}

type PaymentRecord struct {
	ID                 int             `gorm:"primaryKey;autoIncrement" json:"id"`
	TreatmentSessionID int             `gorm:"not null;index" json:"treatment_session_id"`
	Amount             decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Method             string          `gorm:"type:varchar(50);not null" json:"method"`
	Note               string          `gorm:"type:text" json:"note,omitempty"`
	PaidAt             time.Time       `gorm:"not null" json:"paid_at"`
}

func (PaymentRecord) TableName() string {
	return "payment_records"
}

// TotalPaid sums the loaded payment records.
func (t *TreatmentSession) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range t.PaymentRecords {
		total = total.Add(p.Amount)
	}
	return total
}
