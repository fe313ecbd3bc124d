package dto

import (
	"time"

	"dental-clinic-api/pkg/pagination"

	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateSessionRequest schedules a session. Required fields are checked by the
// scheduler so that a missing field yields a single message.
type CreateSessionRequest struct {
	PatientID   int    `json:"patient_id" validate:"omitempty,gte=1"`
	DentistID   int    `json:"dentist_id" validate:"omitempty,gte=1"`
	AssistantID *int   `json:"assistant_id" validate:"omitempty,gte=-1"`
	RoomID      int    `json:"room_id" validate:"omitempty,gte=1"`
	Note        string `json:"note" validate:"max=1000"`
	Time        string `json:"time"`
}

// SessionListQuery is the parsed query of a session listing.
type SessionListQuery struct {
	Today bool
	Page  pagination.Params
}

// Response DTOs

type SessionResponse struct {
	ID          int                `json:"id"`
	PatientID   int                `json:"patient_id"`
	DentistID   int                `json:"dentist_id"`
	AssistantID *int               `json:"assistant_id"`
	RoomID      int                `json:"room_id"`
	Note        string             `json:"note,omitempty"`
	Time        time.Time          `json:"time"`
	Type        string             `json:"type"`
	Status      string             `json:"status"`
	Patient     *PatientResponse   `json:"patient,omitempty"`
	Dentist     *PersonnelResponse `json:"dentist,omitempty"`
	Assistant   *PersonnelResponse `json:"assistant,omitempty"`
	Room        *RoomResponse      `json:"room,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type TreatmentSessionResponse struct {
	ID             int                     `json:"id"`
	SessionID      int                     `json:"session_id"`
	Diagnosis      string                  `json:"diagnosis,omitempty"`
	Session        *SessionResponse        `json:"session,omitempty"`
	Category       *CategoryResponse       `json:"category,omitempty"`
	Prescriptions  []PrescriptionResponse  `json:"prescriptions"`
	ToothSessions  []ToothSessionResponse  `json:"tooth_sessions"`
	PaymentRecords []PaymentRecordResponse `json:"payment_records"`
	TotalPaid      decimal.Decimal         `json:"total_paid"`
	CreatedAt      time.Time               `json:"created_at"`
}

type CategoryResponse struct {
	ID         int                 `json:"id"`
	Name       string              `json:"name"`
	Procedures []ProcedureResponse `json:"procedures"`
}

type ProcedureResponse struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type DrugResponse struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Unit  string          `json:"unit,omitempty"`
	Price decimal.Decimal `json:"price"`
}

type PrescriptionResponse struct {
	ID       int           `json:"id"`
	DrugID   int           `json:"drug_id"`
	Drug     *DrugResponse `json:"drug,omitempty"`
	Quantity int           `json:"quantity"`
	Dosage   string        `json:"dosage,omitempty"`
	Note     string        `json:"note,omitempty"`
}

type ToothResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

type ToothSessionResponse struct {
	ID      int            `json:"id"`
	ToothID int            `json:"tooth_id"`
	Tooth   *ToothResponse `json:"tooth,omitempty"`
	Note    string         `json:"note,omitempty"`
}

type PaymentRecordResponse struct {
	ID     int             `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Note   string          `json:"note,omitempty"`
	PaidAt time.Time       `json:"paid_at"`
}
