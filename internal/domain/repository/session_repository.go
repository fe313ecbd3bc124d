package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(db *gorm.DB, session *entity.Session) error
	Count(db *gorm.DB, filter entity.SessionFilter) (int64, error)
	FindAll(db *gorm.DB, filter entity.SessionFilter, limit, offset int) ([]entity.Session, error)
	// FindByID returns nil when no row matches. An empty sessionType matches any type.
	FindByID(db *gorm.DB, id int, sessionType entity.SessionType) (*entity.Session, error)
}

type TreatmentSessionRepository interface {
	FindByID(db *gorm.DB, id int) (*entity.TreatmentSession, error)
}
