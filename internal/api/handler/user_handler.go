package handler

import (
	"encoding/json"
	"net/http"

	"github.com/acmecorp/admin-api/internal/domain"
	"github.com/acmecorp/admin-api/internal/pkg/logger"
	"github.com/acmecorp/admin-api/internal/service"
	"github.com/acmecorp/admin-api/internal/store"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
	logger      *logger.Logger
}

func NewUserHandler(userService *service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger.Component("handler/user"),
	}
}

func (h *UserHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.With(
		RequireFields(h.logger, "email", "name"),
		ValidateEmail(h.logger),
	).Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Get("/{id}/profile", h.Profile)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, users, h.logger)
}

// UserSummary is the trimmed single-user view: no status or timestamps.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, UserSummary{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, h.logger)
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.userService.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile, h.logger)
}

type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"}, h.logger)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), store.NewUser{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	})
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, user, h.logger)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var updates store.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"}, h.logger)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), chi.URLParam(r, "id"), updates)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user, h.logger)
}

type DeleteUserResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, DeleteUserResponse{
		Message: "User deactivated",
		User:    user,
	}, h.logger)
}
