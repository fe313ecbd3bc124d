package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Omit("Actor").Create(log).Error
}

func (r *auditLogRepository) Count(db *gorm.DB, action string) (int64, error) {
	var total int64
	query := db.Model(&entity.AuditLog{})
	if action != "" {
		query = query.Where("action = ?", action)
	}
	err := query.Count(&total).Error
	return total, err
}

func (r *auditLogRepository) FindAll(db *gorm.DB, action string, limit, offset int) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	query := db.Preload("Actor")
	if action != "" {
		query = query.Where("action = ?", action)
	}
	err := query.Order("created_at DESC").Order("id DESC").Limit(limit).Offset(offset).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.Preload("Actor").Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
