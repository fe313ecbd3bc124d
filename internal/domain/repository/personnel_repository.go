package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PersonnelRepository interface {
	Count(db *gorm.DB, filter entity.DirectoryFilter) (int64, error)
	FindAll(db *gorm.DB, filter entity.DirectoryFilter, limit, offset int) ([]entity.Personnel, error)
	// FindByID returns nil when no row matches. An empty personnelType matches any type.
	FindByID(db *gorm.DB, id int, personnelType entity.PersonnelType) (*entity.Personnel, error)
}
