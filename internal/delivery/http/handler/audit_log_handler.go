package handler

import (
	"net/http"
	"strconv"

	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/pagination"
	"dental-clinic-api/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	paginator       *pagination.Paginator
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, paginator *pagination.Paginator) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		paginator:       paginator,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	auditLogID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		writeError(w, err, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, auditLog)
}

// GetAllAuditLogs lists audit entries newest first, optionally for one action.
func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	page, err := h.paginator.FromRequest(r)
	if err != nil {
		writeError(w, err, "")
		return
	}

	logs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), r.URL.Query().Get("action"), page)
	if err != nil {
		writeError(w, err, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, logs)
}
