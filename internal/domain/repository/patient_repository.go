package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Count(db *gorm.DB, filter entity.DirectoryFilter) (int64, error)
	FindAll(db *gorm.DB, filter entity.DirectoryFilter, limit, offset int) ([]entity.Patient, error)
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
}
