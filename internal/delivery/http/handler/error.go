package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"dental-clinic-api/pkg/apperror"
	"dental-clinic-api/pkg/response"

	"github.com/gorilla/mux"
)

// writeError is the single place where usecase errors become HTTP replies.
// Unclassified errors are reported with fallback and never leak details.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Kind != apperror.KindInternal {
		response.Error(w, appErr.StatusCode(), appErr.Message)
		return
	}
	response.InternalServerError(w, fallback)
}

// pathID reads the {id} route variable.
func pathID(r *http.Request, label string) (int, error) {
	raw := strings.TrimSpace(mux.Vars(r)["id"])
	if raw == "" {
		return 0, apperror.Validation("id is required")
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperror.Validation("Invalid " + label + " ID")
	}
	return id, nil
}
