package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/pagination"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
	paginator      *pagination.Paginator
	validator      *validator.CustomValidator
}

func NewSessionHandler(sessionUsecase usecase.SessionUsecase, paginator *pagination.Paginator, validator *validator.CustomValidator) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		paginator:      paginator,
		validator:      validator,
	}
}

// ListSessions lists sessions of sessionType, newest first. today=true keeps
// only sessions of the current clinic day.
func (h *SessionHandler) ListSessions(sessionType entity.SessionType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.paginator.FromRequest(r)
		if err != nil {
			writeError(w, err, "")
			return
		}

		query := dto.SessionListQuery{
			Today: r.URL.Query().Get("today") == "true",
			Page:  page,
		}

		result, err := h.sessionUsecase.ListSessions(r.Context(), sessionType, query)
		if err != nil {
			writeError(w, err, "Failed to get "+sessionType.Label()+" list")
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

func (h *SessionHandler) CreateSession(sessionType entity.SessionType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.CreateSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := h.validator.Validate(&req); err != nil {
			response.ValidationError(w, "", h.validator.FormatValidationErrors(err))
			return
		}

		session, err := h.sessionUsecase.CreateSession(r.Context(), sessionType, &req)
		if err != nil {
			writeError(w, err, "Failed to create "+sessionType.Label())
			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

// GetSessionInfo returns a session of sessionType; an empty type accepts any.
func (h *SessionHandler) GetSessionInfo(sessionType entity.SessionType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, sessionType.Label())
		if err != nil {
			writeError(w, err, "")
			return
		}

		session, err := h.sessionUsecase.GetSessionInfo(r.Context(), id, sessionType)
		if err != nil {
			writeError(w, err, "Failed to get "+sessionType.Label())
			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

func (h *SessionHandler) GetExaminationInfo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, entity.SessionTypeExamination.Label())
	if err != nil {
		writeError(w, err, "")
		return
	}

	examination, err := h.sessionUsecase.GetExaminationInfo(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get examination")
		return
	}

	response.Success(w, http.StatusOK, examination)
}

func (h *SessionHandler) GetTreatmentInfo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, entity.SessionTypeTreatment.Label())
	if err != nil {
		writeError(w, err, "")
		return
	}

	treatment, err := h.sessionUsecase.GetTreatmentInfo(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get treatment")
		return
	}

	response.Success(w, http.StatusOK, treatment)
}
