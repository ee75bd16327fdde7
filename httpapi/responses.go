package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"raffler/domain"

	log "github.com/sirupsen/logrus"
)

type successEnvelope struct {
	Data any `json:"data"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

// validationError carries per-field messages from request body validation
type validationError struct {
	details map[string]string
}

func (e *validationError) Error() string { return "validation failed" }

func (e *validationError) Unwrap() error { return domain.ErrInvalidInput }

func writeSuccess(w http.ResponseWriter, data any) {
	writeSuccessStatus(w, http.StatusOK, data)
}

func writeSuccessStatus(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successEnvelope{Data: data})
}

// statusForError maps domain sentinels to HTTP status codes and error codes
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrInvalidOperation):
		return http.StatusUnprocessableEntity, "invalid_operation"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusForError(err)

	payload := errorEnvelope{Error: apiError{Code: code, Message: err.Error()}}
	var vErr *validationError
	if errors.As(err, &vErr) {
		payload.Error.Details = vErr.details
	}

	if status == http.StatusInternalServerError {
		log.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err,
		}).Error("Request failed")
		payload.Error.Message = "internal error"
	}

	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Warn("Failed to encode response")
	}
}
