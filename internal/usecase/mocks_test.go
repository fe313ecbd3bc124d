package usecase

import (
	"context"
	"testing"

	"dental-clinic-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func newTestLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

type mockPersonnelRepository struct {
	mock.Mock
}

func (m *mockPersonnelRepository) Count(db *gorm.DB, filter entity.DirectoryFilter) (int64, error) {
	args := m.Called(db, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPersonnelRepository) FindAll(db *gorm.DB, filter entity.DirectoryFilter, limit, offset int) ([]entity.Personnel, error) {
	args := m.Called(db, filter, limit, offset)
	list, _ := args.Get(0).([]entity.Personnel)
	return list, args.Error(1)
}

func (m *mockPersonnelRepository) FindByID(db *gorm.DB, id int, personnelType entity.PersonnelType) (*entity.Personnel, error) {
	args := m.Called(db, id, personnelType)
	p, _ := args.Get(0).(*entity.Personnel)
	return p, args.Error(1)
}

type mockPatientRepository struct {
	mock.Mock
}

func (m *mockPatientRepository) Count(db *gorm.DB, filter entity.DirectoryFilter) (int64, error) {
	args := m.Called(db, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPatientRepository) FindAll(db *gorm.DB, filter entity.DirectoryFilter, limit, offset int) ([]entity.Patient, error) {
	args := m.Called(db, filter, limit, offset)
	list, _ := args.Get(0).([]entity.Patient)
	return list, args.Error(1)
}

func (m *mockPatientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	args := m.Called(db, id)
	p, _ := args.Get(0).(*entity.Patient)
	return p, args.Error(1)
}

type mockRoomRepository struct {
	mock.Mock
}

func (m *mockRoomRepository) FindAll(db *gorm.DB) ([]entity.Room, error) {
	args := m.Called(db)
	list, _ := args.Get(0).([]entity.Room)
	return list, args.Error(1)
}

func (m *mockRoomRepository) FindByID(db *gorm.DB, id int) (*entity.Room, error) {
	args := m.Called(db, id)
	r, _ := args.Get(0).(*entity.Room)
	return r, args.Error(1)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(db *gorm.DB, session *entity.Session) error {
	return m.Called(db, session).Error(0)
}

func (m *mockSessionRepository) Count(db *gorm.DB, filter entity.SessionFilter) (int64, error) {
	args := m.Called(db, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSessionRepository) FindAll(db *gorm.DB, filter entity.SessionFilter, limit, offset int) ([]entity.Session, error) {
	args := m.Called(db, filter, limit, offset)
	list, _ := args.Get(0).([]entity.Session)
	return list, args.Error(1)
}

func (m *mockSessionRepository) FindByID(db *gorm.DB, id int, sessionType entity.SessionType) (*entity.Session, error) {
	args := m.Called(db, id, sessionType)
	s, _ := args.Get(0).(*entity.Session)
	return s, args.Error(1)
}

type mockTreatmentSessionRepository struct {
	mock.Mock
}

func (m *mockTreatmentSessionRepository) FindByID(db *gorm.DB, id int) (*entity.TreatmentSession, error) {
	args := m.Called(db, id)
	t, _ := args.Get(0).(*entity.TreatmentSession)
	return t, args.Error(1)
}

type mockCatalogRepository struct {
	mock.Mock
}

func (m *mockCatalogRepository) FindCategories(db *gorm.DB) ([]entity.Category, error) {
	args := m.Called(db)
	list, _ := args.Get(0).([]entity.Category)
	return list, args.Error(1)
}

func (m *mockCatalogRepository) FindDrugs(db *gorm.DB, name string) ([]entity.Drug, error) {
	args := m.Called(db, name)
	list, _ := args.Get(0).([]entity.Drug)
	return list, args.Error(1)
}

func (m *mockCatalogRepository) FindTeeth(db *gorm.DB) ([]entity.Tooth, error) {
	args := m.Called(db)
	list, _ := args.Get(0).([]entity.Tooth)
	return list, args.Error(1)
}

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
	list, _ := args.Get(0).([]entity.AuditLog)
	return list, args.Error(1)
}

func (m *mockAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	args := m.Called(db, id)
	l, _ := args.Get(0).(*entity.AuditLog)
	return l, args.Error(1)
}

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, actorID *int, action string, entityName string, entityID int, newValue interface{}) error {
	return m.Called(ctx, tx, actorID, action, entityName, entityID, newValue).Error(0)
}
