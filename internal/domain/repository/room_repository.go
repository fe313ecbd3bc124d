package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type RoomRepository interface {
	FindAll(db *gorm.DB) ([]entity.Room, error)
	FindByID(db *gorm.DB, id int) (*entity.Room, error)
}
