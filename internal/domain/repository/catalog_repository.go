package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type CatalogRepository interface {
	FindCategories(db *gorm.DB) ([]entity.Category, error)
	FindDrugs(db *gorm.DB, name string) ([]entity.Drug, error)
	FindTeeth(db *gorm.DB) ([]entity.Tooth, error)
}
