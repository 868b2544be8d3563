package handler

import (
	"encoding/json"
	"net/http"

	"github.com/acmecorp/admin-api/internal/pkg/logger"
	"github.com/acmecorp/admin-api/internal/service"
	"github.com/go-chi/chi/v5"
)

type TeamHandler struct {
	teamService *service.TeamService
	logger      *logger.Logger
}

func NewTeamHandler(teamService *service.TeamService, logger *logger.Logger) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		logger:      logger.Component("handler/team"),
	}
}

func (h *TeamHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.With(RequireFields(h.logger, "name")).Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Get("/{id}/members", h.Members)
	r.With(RequireFields(h.logger, "userId")).Post("/{id}/members", h.AddMember)
	r.Delete("/{id}/members/{userId}", h.RemoveMember)

	return r
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, teams, h.logger)
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	team, err := h.teamService.GetTeam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, team, h.logger)
}

func (h *TeamHandler) Members(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamService.GetTeamMembers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, members, h.logger)
}

type CreateTeamRequest struct {
	Name string `json:"name"`
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"}, h.logger)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, team, h.logger)
}

type AddMemberRequest struct {
	UserID string `json:"userId"`
}

func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"}, h.logger)
		return
	}

	team, err := h.teamService.AddMember(r.Context(), chi.URLParam(r, "id"), req.UserID)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, team, h.logger)
}

func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	team, err := h.teamService.RemoveMember(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userId"))
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, team, h.logger)
}
