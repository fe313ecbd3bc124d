package service

import (
	"context"
	"fmt"

	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const auditSavePoint = "audit_log"

type AuditService interface {
	// LogCreate records a create action inside tx. A failed write is rolled back
	// to a savepoint so the surrounding transaction stays usable.
	LogCreate(ctx context.Context, tx *gorm.DB, actorID *int, action string, entityName string, entityID int, newValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, actorID *int, action string, entityName string, entityID int, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		ActorID: actorID,
		Action:  action,
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": entityID,
			"new_value": newValue,
		},
	}

	tx = tx.WithContext(ctx)
	if err := tx.SavePoint(auditSavePoint).Error; err != nil {
		s.log.Warnf("Failed to create audit savepoint: %+v", err)
		return err
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		if rbErr := tx.RollbackTo(auditSavePoint).Error; rbErr != nil {
			return fmt.Errorf("rollback audit savepoint: %w", rbErr)
		}
		return err
	}

	return nil
}
