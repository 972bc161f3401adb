// Package httpapi holds the JSON envelope and error mapping shared by module HTTP handlers.
// Every response carries a "success" discriminant.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pangolivas/gensemen-pro/modules/shared/apperrors"
)

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes data with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// WriteError maps err to a status code. action is the client-facing text for
// unexpected failures, e.g. "Error al obtener productos".
func WriteError(w http.ResponseWriter, err error, action string) {
	status, resp := Classify(err, action)
	WriteJSON(w, status, resp)
}

// Classify returns the status code and envelope for err.
func Classify(err error, action string) (int, ErrorResponse) {
	var (
		ve *apperrors.ValidationError
		nf *apperrors.NotFoundError
		fe *apperrors.ForbiddenError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ErrorResponse{Error: ve.Message, Message: err.Error()}
	case errors.As(err, &nf):
		return http.StatusNotFound, ErrorResponse{Error: nf.Message(), Message: err.Error()}
	case errors.As(err, &fe):
		return http.StatusForbidden, ErrorResponse{Error: fe.Message}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: action, Message: err.Error()}
	}
}
