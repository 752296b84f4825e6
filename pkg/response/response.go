package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform failure body. Error is a string for domain
// failures and a field→message map for request-shape validation failures.
type ErrorResponse struct {
	Error interface{} `json:"error"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Error(w http.ResponseWriter, statusCode int, err interface{}) {
	JSON(w, statusCode, ErrorResponse{Error: err})
}

func BadRequest(w http.ResponseWriter, err interface{}) {
	Error(w, http.StatusBadRequest, err)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}

func TooManyRequests(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Too many requests"
	}
	Error(w, http.StatusTooManyRequests, message)
}
