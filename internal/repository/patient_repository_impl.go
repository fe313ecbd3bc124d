package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

// Count ignores filter.Type; patients have no role discriminant.
func (r *patientRepository) Count(db *gorm.DB, filter entity.DirectoryFilter) (int64, error) {
	filter.Type = ""
	var total int64
	err := applyDirectoryFilter(db.Model(&entity.Patient{}), filter).Count(&total).Error
	return total, err
}

func (r *patientRepository) FindAll(db *gorm.DB, filter entity.DirectoryFilter, limit, offset int) ([]entity.Patient, error) {
	filter.Type = ""
	var patients []entity.Patient
	err := applyDirectoryFilter(db, filter).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}
