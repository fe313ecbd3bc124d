package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type sessionRepository struct{}

func NewSessionRepository() domainRepo.SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Create(db *gorm.DB, session *entity.Session) error {
	return db.Omit("Patient", "Dentist", "Assistant", "Room").Create(session).Error
}

func (r *sessionRepository) Count(db *gorm.DB, filter entity.SessionFilter) (int64, error) {
	var total int64
	err := applySessionFilter(db.Model(&entity.Session{}), filter).Count(&total).Error
	return total, err
}

// FindAll returns the newest sessions first. Rooms are loaded with their name only.
func (r *sessionRepository) FindAll(db *gorm.DB, filter entity.SessionFilter, limit, offset int) ([]entity.Session, error) {
	var sessions []entity.Session
	err := applySessionFilter(db, filter).
		Preload("Patient").
		Preload("Dentist").
		Preload("Assistant").
		Preload("Room", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Order(`sessions."time" DESC`).
		Order("sessions.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) FindByID(db *gorm.DB, id int, sessionType entity.SessionType) (*entity.Session, error) {
	var session entity.Session
	query := db.Where("sessions.id = ?", id)
	if sessionType != "" {
		query = query.Where("sessions.type = ?", sessionType)
	}
	err := query.
		Preload("Patient").
		Preload("Dentist").
		Preload("Assistant").
		Preload("Room").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}
