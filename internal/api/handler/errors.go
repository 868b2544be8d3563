package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/acmecorp/admin-api/internal/domain"
	"github.com/acmecorp/admin-api/internal/pkg/logger"
)

// ErrorResponse is the flat error contract every non-2xx response uses.
// Clients get the message string only, never a stack trace.
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, err error, logger *logger.Logger) {
	status, message := mapError(err)

	if isDomainError(err) {
		logger.Warn("domain error",
			"error", err.Error(),
			"status", status,
		)
	} else {
		logger.Error("unexpected error",
			"error", err.Error(),
		)
	}

	writeJSON(w, status, ErrorResponse{Error: message}, logger)
}

// mapError translates domain sentinels into the status codes and exact
// message strings of the API contract.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound, "Team not found"
	case errors.Is(err, domain.ErrTeamOrUserNotFound):
		return http.StatusNotFound, "Team or user not found"
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusConflict, "Email already exists"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrUserNotFound) ||
		errors.Is(err, domain.ErrTeamNotFound) ||
		errors.Is(err, domain.ErrTeamOrUserNotFound) ||
		errors.Is(err, domain.ErrEmailExists) ||
		errors.Is(err, domain.ErrInvalidCredentials)
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}
