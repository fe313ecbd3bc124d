package entity

import "time"

// PersonnelType discriminates the roles sharing the personnel table.
type PersonnelType string

const (
	PersonnelTypeDentist   PersonnelType = "DENTIST"
	PersonnelTypeAssistant PersonnelType = "ASSISTANT"
	PersonnelTypeStaff     PersonnelType = "STAFF"
	PersonnelTypeAdmin     PersonnelType = "ADMIN"
)

// PatientDirectory selects the patient table in directory listings.
const PatientDirectory = "PATIENT"

// Personnel represents a clinic employee
type Personnel struct {
	ID        int           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string        `gorm:"type:varchar(255);not null;index" json:"name"`
	Type      PersonnelType `gorm:"type:varchar(20);not null;index" json:"type"`
	Email     string        `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone     string        `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Personnel) TableName() string {
	return "personnel"
}

// Valid reports whether t is a known personnel type.
func (t PersonnelType) Valid() bool {
	switch t {
	case PersonnelTypeDentist, PersonnelTypeAssistant, PersonnelTypeStaff, PersonnelTypeAdmin:
		return true
	}
	return false
}

// Label is the lower-case noun used in client messages.
func (t PersonnelType) Label() string {
	switch t {
	case PersonnelTypeDentist:
		return "dentist"
	case PersonnelTypeAssistant:
		return "assistant"
	case PersonnelTypeStaff:
		return "staff"
	case PersonnelTypeAdmin:
		return "admin"
	}
	return "personnel"
}
