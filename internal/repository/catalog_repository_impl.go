package repository

import (
	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type catalogRepository struct{}

func NewCatalogRepository() domainRepo.CatalogRepository {
	return &catalogRepository{}
}

func (r *catalogRepository) FindCategories(db *gorm.DB) ([]entity.Category, error) {
	var categories []entity.Category
	err := db.Preload("Procedures", func(db *gorm.DB) *gorm.DB {
		return db.Order("procedures.name ASC")
	}).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *catalogRepository) FindDrugs(db *gorm.DB, name string) ([]entity.Drug, error) {
	var drugs []entity.Drug
	query := db.Order("name ASC")
	if name != "" {
		query = query.Where("name ILIKE ?", containsPattern(name))
	}
	if err := query.Find(&drugs).Error; err != nil {
		return nil, err
	}
	return drugs, nil
}

func (r *catalogRepository) FindTeeth(db *gorm.DB) ([]entity.Tooth, error) {
	var teeth []entity.Tooth
	err := db.Order("position ASC").Find(&teeth).Error
	if err != nil {
		return nil, err
	}
	return teeth, nil
}
