package usecase

import (
	"errors"
	"strings"

	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrMissingFields        = apperror.Validation("You are missing some fields !")
	ErrInvalidTime          = apperror.Validation("time is invalid")
	ErrInvalidPersonnelType = apperror.Validation("type is invalid")
	ErrInvalidSessionType   = apperror.Validation("session type is invalid")

	ErrPatientNotExist   = apperror.NotFound("Patient is not exist")
	ErrDentistNotExist   = apperror.NotFound("Dentist is not exist")
	ErrRoomNotExist      = apperror.NotFound("Room is not exist")
	ErrAssistantNotExist = apperror.NotFound("Assistant is not exist")

	ErrPatientNotFound       = apperror.NotFound("patient not found")
	ErrPersonnelNotFound     = apperror.NotFound("personnel not found")
	ErrDentistNotFound       = apperror.NotFound("dentist not found")
	ErrAssistantNotFound     = apperror.NotFound("assistant not found")
	ErrStaffNotFound         = apperror.NotFound("staff not found")
	ErrAdminNotFound         = apperror.NotFound("admin not found")
	ErrSessionNotFound       = apperror.NotFound("session not found")
	ErrExaminationNotFound   = apperror.NotFound("examination not found")
	ErrReExaminationNotFound = apperror.NotFound("re-examination not found")
	ErrTreatmentNotFound     = apperror.NotFound("treatment not found")
	ErrAuditLogNotFound      = apperror.NotFound("audit log not found")
)

func personnelNotFound(t entity.PersonnelType) error {
	switch t {
	case entity.PersonnelTypeDentist:
		return ErrDentistNotFound
	case entity.PersonnelTypeAssistant:
		return ErrAssistantNotFound
	case entity.PersonnelTypeStaff:
		return ErrStaffNotFound
	case entity.PersonnelTypeAdmin:
		return ErrAdminNotFound
	}
	return ErrPersonnelNotFound
}

func sessionNotFound(t entity.SessionType) error {
	switch t {
	case entity.SessionTypeExamination:
		return ErrExaminationNotFound
	case entity.SessionTypeReExamination:
		return ErrReExaminationNotFound
	case entity.SessionTypeTreatment:
		return ErrTreatmentNotFound
	}
	return ErrSessionNotFound
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
