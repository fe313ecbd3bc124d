package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type treatmentSessionRepository struct{}

func NewTreatmentSessionRepository() domainRepo.TreatmentSessionRepository {
	return &treatmentSessionRepository{}
}

func (r *treatmentSessionRepository) FindByID(db *gorm.DB, id int) (*entity.TreatmentSession, error) {
	var treatment entity.TreatmentSession
	err := db.
		Preload("Session.Patient").
		Preload("Session.Dentist").
		Preload("Session.Assistant").
		Preload("Session.Room").
		Preload("Category.Procedures", func(db *gorm.DB) *gorm.DB {
			return db.Order("procedures.id ASC")
		}).
		Preload("Prescriptions.Drug").
		Preload("ToothSessions.Tooth").
		Preload("PaymentRecords", func(db *gorm.DB) *gorm.DB {
			return db.Order("payment_records.paid_at ASC")
		}).
		Where("treatment_sessions.id = ?", id).
		First(&treatment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &treatment, nil
}
