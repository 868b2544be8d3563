package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/acmecorp/admin-api/internal/api/handler"
	"github.com/acmecorp/admin-api/internal/pkg/logger"
	"github.com/acmecorp/admin-api/internal/service"
	"github.com/acmecorp/admin-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log := logger.Discard()
	mem, err := store.NewMemory(&store.Config{Latency: 0}, store.NewSequentialAllocator(), log)
	require.NoError(t, err)

	userService := service.NewUserService(mem, log)
	teamService := service.NewTeamService(mem, log)
	authService := service.NewAuthService(mem, log)
	statsService := service.NewStatsService(mem, mem, log)

	return setupRouter(
		handler.NewUserHandler(userService, log),
		handler.NewTeamHandler(teamService, log),
		handler.NewAuthHandler(authService, log),
		handler.NewStatsHandler(statsService, log),
		30*time.Second,
		log,
	)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var l []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &l))
	return l
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListUsers(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	users := decodeList(t, rec)
	require.Len(t, users, 8)
	assert.Equal(t, "alice@acme.com", users[0]["email"])
}

func TestGetUser_SubsetFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/users/1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "1", body["id"])
	assert.Equal(t, "alice@acme.com", body["email"])
	assert.Equal(t, "Alice Chen", body["name"])
	assert.Equal(t, "admin", body["role"])
	assert.NotContains(t, body, "status")
	assert.NotContains(t, body, "createdAt")
}

func TestGetUser_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/users/999", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestGetUserProfile(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/users/1/profile", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"displayName":"Alice Chen","email":"alice@acme.com","initials":"AC"}`, rec.Body.String())
}

func TestCreateUser(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", map[string]any{
		"email": "ivy@acme.com",
		"name":  "Ivy Nguyen",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "9", body["id"])
	assert.Equal(t, "developer", body["role"])
	assert.Equal(t, "active", body["status"])
	assert.Equal(t, body["createdAt"], body["updatedAt"])
}

func TestCreateUser_ValidationOrder(t *testing.T) {
	router := newTestRouter(t)

	// name is missing and the email is malformed; the required-fields
	// check runs first, so the missing field wins
	rec := doJSON(t, router, http.MethodPost, "/api/users", map[string]any{
		"email": "bad-email",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required field: name"}`, rec.Body.String())
}

func TestCreateUser_InvalidEmailFormat(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", map[string]any{
		"email": "bad-email",
		"name":  "Ivy Nguyen",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email format"}`, rec.Body.String())
}

func TestCreateUser_MissingEmail(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", map[string]any{
		"name": "Ivy Nguyen",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required field: email"}`, rec.Body.String())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", map[string]any{
		"email": "alice@acme.com",
		"name":  "Other Alice",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Email already exists"}`, rec.Body.String())
}

func TestUpdateUser_WhitelistOnly(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPatch, "/api/users/2", map[string]any{
		"name": "X",
		"id":   "hacked",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "2", body["id"])
	assert.Equal(t, "X", body["name"])
	assert.Equal(t, "bob@acme.com", body["email"])
}

func TestUpdateUser_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPatch, "/api/users/999", map[string]any{"name": "X"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestDeleteUser(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/users/3", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "User deactivated", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "3", user["id"])
	assert.Equal(t, "inactive", user["status"])
}

func TestListTeams(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/teams", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	teams := decodeList(t, rec)
	require.Len(t, teams, 4)
	assert.Equal(t, "Engineering", teams[0]["name"])
}

func TestGetTeam_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/teams/999", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Team not found"}`, rec.Body.String())
}

func TestGetTeamMembers(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/teams/1/members", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	members := decodeList(t, rec)
	require.Len(t, members, 4)
	assert.Equal(t, "Alice Chen", members[0]["name"])
}

func TestCreateTeam(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/teams", map[string]any{"name": "Marketing"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "5", body["id"])
	assert.Equal(t, "Marketing", body["name"])
	assert.Equal(t, []any{}, body["members"])
}

func TestCreateTeam_MissingName(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/teams", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required field: name"}`, rec.Body.String())
}

func TestAddTeamMember(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/teams/2/members", map[string]any{"userId": "4"})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, []any{"6", "4"}, body["members"])
}

func TestAddTeamMember_MissingUserID(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/teams/2/members", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required field: userId"}`, rec.Body.String())
}

func TestAddTeamMember_TeamOrUserMissing(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/teams/999/members", map[string]any{"userId": "1"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Team or user not found"}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/teams/1/members", map[string]any{"userId": "999"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Team or user not found"}`, rec.Body.String())
}

func TestRemoveTeamMember(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/teams/1/members/2", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, []any{"1", "3", "5"}, body["members"])
}

func TestRemoveTeamMember_TeamNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/teams/999/members/1", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Team not found"}`, rec.Body.String())
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]any{"email": "alice@acme.com"})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Login successful", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "1", user["id"])
}

func TestLogin_UnknownEmail(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]any{"email": "nobody@acme.com"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
}

func TestLogin_InvalidEmailFormat(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]any{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email format"}`, rec.Body.String())
}

func TestLogout(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/logout", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logout successful"}`, rec.Body.String())
}

func TestStats(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/stats", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)

	users := body["users"].(map[string]any)
	assert.Equal(t, float64(8), users["total"])
	assert.Equal(t, float64(6), users["active"])
	assert.Equal(t, float64(1), users["inactive"])
	assert.Equal(t, float64(1), users["pending"])
	byRole := users["byRole"].(map[string]any)
	assert.Equal(t, float64(5), byRole["developer"])
	assert.Equal(t, float64(1), byRole["admin"])

	teams := body["teams"].(map[string]any)
	assert.Equal(t, float64(4), teams["total"])
	assert.Equal(t, float64(8), teams["totalMemberships"])
}

func TestServerConfig_Validate(t *testing.T) {
	cfg := &ServerConfig{Host: "127.0.0.1", Port: 0}
	require.Error(t, cfg.Validate())

	cfg.Port = 3000
	require.NoError(t, cfg.Validate())
}
