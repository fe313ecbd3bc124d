package handler

import (
	"net/http"
	"strings"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/pagination"
	"dental-clinic-api/pkg/response"
)

type PersonnelHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	paginator        *pagination.Paginator
}

func NewPersonnelHandler(directoryUsecase usecase.DirectoryUsecase, paginator *pagination.Paginator) *PersonnelHandler {
	return &PersonnelHandler{
		directoryUsecase: directoryUsecase,
		paginator:        paginator,
	}
}

func (h *PersonnelHandler) directoryQuery(r *http.Request) (dto.DirectoryQuery, error) {
	page, err := h.paginator.FromRequest(r)
	if err != nil {
		return dto.DirectoryQuery{}, err
	}
	return dto.DirectoryQuery{
		Name: strings.TrimSpace(r.URL.Query().Get("name")),
		Page: page,
	}, nil
}

// ListByType lists personnel of one fixed type, e.g. GET /dentists.
func (h *PersonnelHandler) ListByType(personnelType entity.PersonnelType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := h.directoryQuery(r)
		if err != nil {
			writeError(w, err, "")
			return
		}

		result, err := h.directoryUsecase.ListPersonnel(r.Context(), personnelType, query)
		if err != nil {
			writeError(w, err, "Failed to get "+personnelType.Label()+" list")
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

// ListPersonnel lists personnel filtered by the optional type query value.
// type=PATIENT lists patients.
func (h *PersonnelHandler) ListPersonnel(w http.ResponseWriter, r *http.Request) {
	kind := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("type")))
	if kind == entity.PatientDirectory {
		h.ListPatients(w, r)
		return
	}

	h.ListByType(entity.PersonnelType(kind))(w, r)
}

func (h *PersonnelHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	query, err := h.directoryQuery(r)
	if err != nil {
		writeError(w, err, "")
		return
	}

	result, err := h.directoryUsecase.ListPatients(r.Context(), query)
	if err != nil {
		writeError(w, err, "Failed to get patient list")
		return
	}

	response.Success(w, http.StatusOK, result)
}

// GetByType returns one personnel record; an empty type accepts any role.
func (h *PersonnelHandler) GetByType(personnelType entity.PersonnelType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, personnelType.Label())
		if err != nil {
			writeError(w, err, "")
			return
		}

		personnel, err := h.directoryUsecase.GetPersonnel(r.Context(), id, personnelType)
		if err != nil {
			writeError(w, err, "Failed to get "+personnelType.Label())
			return
		}

		response.Success(w, http.StatusOK, personnel)
	}
}

func (h *PersonnelHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "patient")
	if err != nil {
		writeError(w, err, "")
		return
	}

	patient, err := h.directoryUsecase.GetPatient(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, patient)
}
