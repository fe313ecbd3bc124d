package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/service"
	"dental-clinic-api/pkg/apperror"
	"dental-clinic-api/pkg/timeutil"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionUsecase interface {
	ListSessions(ctx context.Context, sessionType entity.SessionType, query dto.SessionListQuery) (*dto.ListResponse[dto.SessionResponse], error)
	// GetSessionInfo returns a session of the given type, or of any type when sessionType is empty.
	GetSessionInfo(ctx context.Context, id int, sessionType entity.SessionType) (*dto.SessionResponse, error)
	GetExaminationInfo(ctx context.Context, id int) (*dto.SessionResponse, error)
	GetTreatmentInfo(ctx context.Context, id int) (*dto.TreatmentSessionResponse, error)
	CreateSession(ctx context.Context, sessionType entity.SessionType, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
}

type sessionUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	now           func() time.Time
	sessionRepo   repository.SessionRepository
	treatmentRepo repository.TreatmentSessionRepository
	patientRepo   repository.PatientRepository
	personnelRepo repository.PersonnelRepository
	roomRepo      repository.RoomRepository
	auditService  service.AuditService
}

// NewSessionUsecase builds the session usecase. now is the clinic clock used for
// the "today" window; nil means time.Now.
func NewSessionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	now func() time.Time,
	sessionRepo repository.SessionRepository,
	treatmentRepo repository.TreatmentSessionRepository,
	patientRepo repository.PatientRepository,
	personnelRepo repository.PersonnelRepository,
	roomRepo repository.RoomRepository,
	auditService service.AuditService,
) SessionUsecase {
	if now == nil {
		now = time.Now
	}
	return &sessionUsecase{
		db:            db,
		log:           log,
		now:           now,
		sessionRepo:   sessionRepo,
		treatmentRepo: treatmentRepo,
		patientRepo:   patientRepo,
		personnelRepo: personnelRepo,
		roomRepo:      roomRepo,
		auditService:  auditService,
	}
}

func (u *sessionUsecase) ListSessions(ctx context.Context, sessionType entity.SessionType, query dto.SessionListQuery) (*dto.ListResponse[dto.SessionResponse], error) {
	filter := entity.SessionFilter{Type: sessionType}
	if query.Today {
		start, end := timeutil.DayBounds(u.now())
		filter.From = &start
		filter.To = &end
	}

	var (
		total    int64
		sessions []entity.Session
	)
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if total, err = u.sessionRepo.Count(tx, filter); err != nil {
			return err
		}
		sessions, err = u.sessionRepo.FindAll(tx, filter, query.Page.Take, query.Page.Skip)
		return err
	}, snapshotTx)
	if err != nil {
		u.log.Warnf("Failed to list %s sessions: %+v", sessionType.Label(), err)
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return &dto.ListResponse[dto.SessionResponse]{
		List:  converter.SessionsToResponses(sessions),
		Total: total,
	}, nil
}

func (u *sessionUsecase) GetSessionInfo(ctx context.Context, id int, sessionType entity.SessionType) (*dto.SessionResponse, error) {
	if id <= 0 {
		return nil, sessionNotFound(sessionType)
	}

	session, err := u.sessionRepo.FindByID(u.db.WithContext(ctx), id, sessionType)
	if err != nil {
		u.log.Warnf("Failed to find session %d: %+v", id, err)
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return nil, sessionNotFound(sessionType)
	}

	return converter.SessionToResponse(session), nil
}

func (u *sessionUsecase) GetExaminationInfo(ctx context.Context, id int) (*dto.SessionResponse, error) {
	return u.GetSessionInfo(ctx, id, entity.SessionTypeExamination)
}

func (u *sessionUsecase) GetTreatmentInfo(ctx context.Context, id int) (*dto.TreatmentSessionResponse, error) {
	if id <= 0 {
		return nil, ErrTreatmentNotFound
	}

	treatment, err := u.treatmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find treatment %d: %+v", id, err)
		return nil, fmt.Errorf("find treatment: %w", err)
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	return converter.TreatmentSessionToResponse(treatment), nil
}

// CreateSession schedules a session of sessionType.
//
// Flow:
// 1. Validate required fields and parse time
// 2. Check patient, dentist and room exist (rows held FOR SHARE)
// 3. Check assistant exists unless none was given
// 4. Insert the session as SCHEDULED
// 5. Record an audit entry under a savepoint
// Steps 2-5 run in one transaction.
func (u *sessionUsecase) CreateSession(ctx context.Context, sessionType entity.SessionType, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	if !sessionType.Valid() {
		return nil, ErrInvalidSessionType
	}

	// Step 1: Validate required fields
	if req.PatientID == 0 || req.DentistID == 0 || req.RoomID == 0 || strings.TrimSpace(req.Time) == "" {
		return nil, ErrMissingFields
	}
	at, err := time.Parse(time.RFC3339, req.Time)
	if err != nil {
		return nil, ErrInvalidTime
	}

	session := &entity.Session{
		PatientID:   req.PatientID,
		DentistID:   req.DentistID,
		AssistantID: assistantOf(req.AssistantID),
		RoomID:      req.RoomID,
		Note:        req.Note,
		Time:        at,
		Type:        sessionType,
		Status:      entity.SessionStatusScheduled,
	}

	var actorID *int
	if id, ok := middleware.GetPersonnelIDFromContext(ctx); ok {
		actorID = &id
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shared := func() *gorm.DB {
			return tx.Clauses(clause.Locking{Strength: "SHARE"})
		}

		// Step 2: Referenced rows must exist
		patient, err := u.patientRepo.FindByID(shared(), session.PatientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return ErrPatientNotExist
		}

		dentist, err := u.personnelRepo.FindByID(shared(), session.DentistID, "")
		if err != nil {
			return err
		}
		if dentist == nil {
			return ErrDentistNotExist
		}

		room, err := u.roomRepo.FindByID(shared(), session.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return ErrRoomNotExist
		}

		// Step 3: Assistant is optional
		if session.AssistantID != nil {
			assistant, err := u.personnelRepo.FindByID(shared(), *session.AssistantID, "")
			if err != nil {
				return err
			}
			if assistant == nil {
				return ErrAssistantNotExist
			}
		}

		// Step 4: Insert
		if err := u.sessionRepo.Create(tx, session); err != nil {
			return foreignKeyToNotExist(err)
		}

		// Step 5: Audit
		if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionSessionCreate, "session", session.ID, converter.SessionToResponse(session)); err != nil {
			u.log.Warnf("Audit entry for session %d skipped: %+v", session.ID, err)
		}
		return nil
	})
	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		u.log.Warnf("Failed to create %s session: %+v", sessionType.Label(), err)
		return nil, fmt.Errorf("create session: %w", err)
	}

	u.log.Infof("Scheduled %s session %d in room %d at %s", sessionType.Label(), session.ID, session.RoomID, session.Time.Format(time.RFC3339))
	return converter.SessionToResponse(session), nil
}

// assistantOf maps the "no assistant" inputs (absent, 0, -1) to nil.
func assistantOf(id *int) *int {
	if id == nil || *id == 0 || *id == entity.NoAssistant {
		return nil
	}
	v := *id
	return &v
}

func foreignKeyToNotExist(err error) error {
	switch {
	case isForeignKeyError(err, "patient_id"):
		return ErrPatientNotExist
	case isForeignKeyError(err, "dentist_id"):
		return ErrDentistNotExist
	case isForeignKeyError(err, "room_id"):
		return ErrRoomNotExist
	case isForeignKeyError(err, "assistant_id"):
		return ErrAssistantNotExist
	}
	return err
}
