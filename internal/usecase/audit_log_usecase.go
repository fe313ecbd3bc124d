package usecase

import (
	"context"
	"fmt"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context, action string, page pagination.Params) (*dto.ListResponse[dto.AuditLogResponse], error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context, action string, page pagination.Params) (*dto.ListResponse[dto.AuditLogResponse], error) {
	var (
		total int64
		logs  []entity.AuditLog
	)
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if total, err = u.auditLogRepo.Count(tx, action); err != nil {
			return err
		}
		logs, err = u.auditLogRepo.FindAll(tx, action, page.Take, page.Skip)
		return err
	}, snapshotTx)
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, fmt.Errorf("list audit logs: %w", err)
	}

	return &dto.ListResponse[dto.AuditLogResponse]{
		List:  converter.AuditLogsToResponses(logs),
		Total: total,
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log %d: %+v", id, err)
		return nil, fmt.Errorf("find audit log: %w", err)
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
