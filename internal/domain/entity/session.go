package entity

import "time"

// SessionType represents the kind of visit a session was booked for
type SessionType string

const (
	SessionTypeExamination   SessionType = "EXAMINATION"
	SessionTypeReExamination SessionType = "RE_EXAMINATION"
	SessionTypeTreatment     SessionType = "TREATMENT"
)

// SessionStatus represents the status of a session
type SessionStatus string

const (
	SessionStatusScheduled  SessionStatus = "SCHEDULED"
	SessionStatusInProgress SessionStatus = "IN_PROGRESS"
	SessionStatusCompleted  SessionStatus = "COMPLETED"
	SessionStatusCancelled  SessionStatus = "CANCELLED"
)

// NoAssistant is the client sentinel for "no assistant assigned".
const NoAssistant = -1

// Session is a scheduled patient visit
type Session struct {
	ID          int           `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int           `gorm:"not null;index" json:"patient_id"`
	DentistID   int           `gorm:"not null;index" json:"dentist_id"`
	AssistantID *int          `gorm:"index" json:"assistant_id"`
	RoomID      int           `gorm:"not null;index" json:"room_id"`
	Note        string        `gorm:"type:text" json:"note,omitempty"`
	Time        time.Time     `gorm:"not null;index" json:"time"`
	Type        SessionType   `gorm:"type:varchar(20);not null;index" json:"type"`
	Status      SessionStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED'" json:"status"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   *Patient   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Dentist   *Personnel `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
	Assistant *Personnel `gorm:"foreignKey:AssistantID" json:"assistant,omitempty"`
	Room      *Room      `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (Session) TableName() string {
	return "sessions"
}

// Valid reports whether t is a known session type.
func (t SessionType) Valid() bool {
	switch t {
	case SessionTypeExamination, SessionTypeReExamination, SessionTypeTreatment:
		return true
	}
	return false
}

// Label is the lower-case noun used in client messages.
func (t SessionType) Label() string {
	switch t {
	case SessionTypeExamination:
		return "examination"
	case SessionTypeReExamination:
		return "re-examination"
	case SessionTypeTreatment:
		return "treatment"
	}
	return "session"
}

// IsScheduled checks if session has not started yet
func (s *Session) IsScheduled() bool {
	return s.Status == SessionStatusScheduled
}
