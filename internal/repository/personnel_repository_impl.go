package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type personnelRepository struct{}

func NewPersonnelRepository() domainRepo.PersonnelRepository {
	return &personnelRepository{}
}

func (r *personnelRepository) Count(db *gorm.DB, filter entity.DirectoryFilter) (int64, error) {
	var total int64
	err := applyDirectoryFilter(db.Model(&entity.Personnel{}), filter).Count(&total).Error
	return total, err
}

func (r *personnelRepository) FindAll(db *gorm.DB, filter entity.DirectoryFilter, limit, offset int) ([]entity.Personnel, error) {
	var personnel []entity.Personnel
	err := applyDirectoryFilter(db, filter).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&personnel).Error
	if err != nil {
		return nil, err
	}
	return personnel, nil
}

func (r *personnelRepository) FindByID(db *gorm.DB, id int, personnelType entity.PersonnelType) (*entity.Personnel, error) {
	var personnel entity.Personnel
	query := db.Where("id = ?", id)
	if personnelType != "" {
		query = query.Where("type = ?", personnelType)
	}
	err := query.First(&personnel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &personnel, nil
}
