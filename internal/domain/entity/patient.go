package entity

import "time"

// Patient is a clinic patient. Patients do not share the personnel table.
type Patient struct {
	ID          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null;index" json:"name"`
	Phone       string     `gorm:"type:varchar(20);index" json:"phone,omitempty"`
	Email       string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Gender      string     `gorm:"type:char(1)" json:"gender,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
