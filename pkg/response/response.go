package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope shared by success and error replies.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// New wraps payload for statusCode. A string payload on an error status
// becomes the message, anything else is carried as data.
func New(statusCode int, payload interface{}) Response {
	if msg, ok := payload.(string); ok && statusCode >= http.StatusBadRequest {
		return Response{Status: statusCode, Message: msg}
	}
	return Response{Status: statusCode, Data: payload}
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, data interface{}) {
	JSON(w, statusCode, New(statusCode, data))
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Response{
		Status:  statusCode,
		Message: message,
	})
}

func ValidationError(w http.ResponseWriter, message string, errors interface{}) {
	if message == "" {
		message = "Validation failed"
	}
	JSON(w, http.StatusBadRequest, Response{
		Status:  http.StatusBadRequest,
		Message: message,
		Errors:  errors,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

// NotFound replies 400, the status this API uses for missing records.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusBadRequest, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message)
}
