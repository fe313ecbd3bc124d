package service

import (
	"context"
	"errors"
	"testing"

	"dental-clinic-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type mockAuditLogRepository struct {
	mock.Mock
}

func (m *mockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return m.Called(db, log).Error(0)
}

func (m *mockAuditLogRepository) Count(db *gorm.DB, action string) (int64, error) {
	args := m.Called(db, action)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAuditLogRepository) FindAll(db *gorm.DB, action string, limit, offset int) ([]entity.AuditLog, error) {
	args := m.Called(db, action, limit, offset)
	return args.Get(0).([]entity.AuditLog), args.Error(1)
}

func (m *mockAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	args := m.Called(db, id)
	return args.Get(0).(*entity.AuditLog), args.Error(1)
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mockSQL, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mockSQL
}

func TestAuditService_LogCreate(t *testing.T) {
	db, mockSQL := setupMockDB(t)
	log, _ := test.NewNullLogger()
	repo := new(mockAuditLogRepository)
	svc := NewAuditService(log, repo)

	actorID := 3
	mockSQL.ExpectExec("SAVEPOINT audit_log").WillReturnResult(sqlmock.NewResult(0, 0))
	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.AuditLog) bool {
		return l.Action == entity.AuditActionSessionCreate &&
			*l.ActorID == actorID &&
			l.Metadata["entity"] == "session" &&
			l.Metadata["entity_id"] == 42
	})).Return(nil)

	err := svc.LogCreate(context.Background(), db, &actorID, entity.AuditActionSessionCreate, "session", 42, map[string]int{"room_id": 3})
	require.NoError(t, err)
	repo.AssertExpectations(t)
	assert.NoError(t, mockSQL.ExpectationsWereMet())
}

func TestAuditService_LogCreate_RollsBackToSavePoint(t *testing.T) {
	db, mockSQL := setupMockDB(t)
	log, hook := test.NewNullLogger()
	repo := new(mockAuditLogRepository)
	svc := NewAuditService(log, repo)

	mockSQL.ExpectExec("SAVEPOINT audit_log").WillReturnResult(sqlmock.NewResult(0, 0))
	mockSQL.ExpectExec("ROLLBACK TO SAVEPOINT audit_log").WillReturnResult(sqlmock.NewResult(0, 0))
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("relation audit_logs does not exist"))

	err := svc.LogCreate(context.Background(), db, nil, entity.AuditActionSessionCreate, "session", 1, nil)
	assert.Error(t, err)
	assert.NoError(t, mockSQL.ExpectationsWereMet())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
