package handler

import (
	"encoding/json"
	"net/http"

	"github.com/acmecorp/admin-api/internal/domain"
	"github.com/acmecorp/admin-api/internal/pkg/logger"
	"github.com/acmecorp/admin-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// AuthHandler exposes the email-only login flow. No tokens or cookies
// are issued; the client keeps the returned user object itself.
type AuthHandler struct {
	authService *service.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger.Component("handler/auth"),
	}
}

func (h *AuthHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.With(
		RequireFields(h.logger, "email"),
		ValidateEmail(h.logger),
	).Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	return r
}

type LoginRequest struct {
	Email string `json:"email"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"}, h.logger)
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Message: "Login successful",
		User:    user,
	}, h.logger)
}

type LogoutResponse struct {
	Message string `json:"message"`
}

// Logout is stateless; the client discards its own session data.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LogoutResponse{Message: "Logout successful"}, h.logger)
}
