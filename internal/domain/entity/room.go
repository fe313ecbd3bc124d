package entity

type Room struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}
