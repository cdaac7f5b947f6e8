package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clean/internal/models/db_models"
	"clean/internal/services"
	"clean/internal/skinprofile"
	mem "clean/pkg/memcache"
	"clean/pkg/middleware"
	"clean/pkg/utils"
)

type stubAccountRepo struct {
	accounts    map[uuid.UUID]*db_models.Account
	updateErr   error
	updateCalls int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: map[uuid.UUID]*db_models.Account{}}
}

func (s *stubAccountRepo) InsertTx(account *db_models.Account, _ context.Context) error {
	for _, a := range s.accounts {
		if a.Email == account.Email {
			return errors.New("duplicate")
		}
	}
	account.ID = uuid.New()
	stored := *account
	s.accounts[account.ID] = &stored
	return nil
}

func (s *stubAccountRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	if a, ok := s.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (s *stubAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	for _, a := range s.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubAccountRepo) UpdateSkinProfile(_ context.Context, id uuid.UUID, skinType string, problems []string) (int64, error) {
	s.updateCalls++
	if s.updateErr != nil {
		return 0, s.updateErr
	}
	a, ok := s.accounts[id]
	if !ok {
		return 0, nil
	}
	a.SkinType = skinType
	a.SkinProblems = problems
	return 1, nil
}

type testServer struct {
	router *gin.Engine
	repo   *stubAccountRepo
	issuer *utils.TokenIssuer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newStubAccountRepo()
	issuer, err := utils.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	accounts := NewAccountController(services.NewAccountService(repo, issuer, mem.NewRefreshTokens(), time.Hour))
	survey := NewSurveyController(services.NewSurveyService(repo))

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	api := r.Group("/api")
	api.POST("/users/", accounts.Register)
	api.POST("/token/", accounts.Login)
	api.POST("/token/refresh/", accounts.Refresh)
	api.GET("/survey/questions/", survey.Questions)
	api.POST("/survey/classify/", survey.Classify)

	authed := api.Group("", middleware.JWTAuthMiddleware(issuer))
	authed.GET("/users/me/", accounts.Me)
	authed.PATCH("/users/update_skin_profile/", accounts.UpdateSkinProfile)
	authed.POST("/survey/submit/", survey.Submit)

	return &testServer{router: r, repo: repo, issuer: issuer}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func (s *testServer) seedUser(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	account := &db_models.Account{Username: "anna", Email: "anna@example.com", Role: db_models.RoleUser, SkinType: "Normal"}
	require.NoError(t, s.repo.InsertTx(account, context.Background()))
	token, err := s.issuer.CreateToken(account.ID, account.Role)
	require.NoError(t, err)
	return account.ID, token
}

func surveyBody(value int, overrides map[string]int, problems map[string]bool) map[string]any {
	answers := map[string]int{}
	for _, q := range skinprofile.SurveyQuestions() {
		answers[q.Code] = value
	}
	for code, v := range overrides {
		answers[code] = v
	}
	if problems == nil {
		problems = map[string]bool{}
	}
	return map[string]any{"skin_type_answers": answers, "problem_answers": problems}
}

func dataMap(t *testing.T, resp utils.APIResponse) map[string]any {
	t.Helper()
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data is %T", resp.Data)
	return data
}

func TestSurveySubmit_StoresResult(t *testing.T) {
	s := newTestServer(t)
	id, token := s.seedUser(t)

	body := surveyBody(1, map[string]int{"B1": 3, "B2": 3, "B3": 2, "B4": 3, "E1": 2, "E2": 2}, map[string]bool{"P7": true})
	w, resp := s.do(t, http.MethodPost, "/api/survey/submit/", body, token)

	require.Equal(t, http.StatusOK, w.Code, resp.Message)
	data := dataMap(t, resp)
	assert.Equal(t, "Dry", data["skin_type"])
	assert.Equal(t, []any{"Irritation/redness"}, data["skin_problems"])
	assert.NotEmpty(t, resp.TraceID)

	stored := s.repo.accounts[id]
	assert.Equal(t, "Dry", stored.SkinType)
	assert.Equal(t, []string{"Irritation/redness"}, []string(stored.SkinProblems))
}

func TestSurveySubmit_IncompleteIsBadRequest(t *testing.T) {
	s := newTestServer(t)
	_, token := s.seedUser(t)

	body := surveyBody(3, nil, nil)
	delete(body["skin_type_answers"].(map[string]int), "A1")

	w, resp := s.do(t, http.MethodPost, "/api/survey/submit/", body, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Message, "A1")
	assert.Zero(t, s.repo.updateCalls)
}

func TestSurveySubmit_PersistenceFailureIsServerError(t *testing.T) {
	s := newTestServer(t)
	_, token := s.seedUser(t)
	s.repo.updateErr = errors.New("connection refused")

	w, resp := s.do(t, http.MethodPost, "/api/survey/submit/", surveyBody(3, nil, nil), token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", resp.Message)
}

func TestSurveySubmit_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodPost, "/api/survey/submit/", surveyBody(3, nil, nil), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSurveyClassify_Composite(t *testing.T) {
	s := newTestServer(t)

	body := surveyBody(1, map[string]int{
		"A1": 2, "A2": 2, "A3": 2, "A4": 2, "A5": 2,
		"E1": 3, "E2": 3, "E3": 3,
	}, nil)
	w, resp := s.do(t, http.MethodPost, "/api/survey/classify/", body, "")

	require.Equal(t, http.StatusOK, w.Code, resp.Message)
	assert.Equal(t, "Oily - Sensitive", dataMap(t, resp)["skin_type"])
	assert.Empty(t, s.repo.accounts)
}

func TestSurveyQuestions(t *testing.T) {
	s := newTestServer(t)

	w, resp := s.do(t, http.MethodGet, "/api/survey/questions/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, resp)
	assert.Len(t, data["skin_type_questions"], 18)
	assert.Len(t, data["problem_questions"], 10)
}

func TestAccountFlow(t *testing.T) {
	s := newTestServer(t)

	w, resp := s.do(t, http.MethodPost, "/api/users/", map[string]string{
		"username": "anna", "email": "anna@example.com", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, resp.Message)

	w, resp = s.do(t, http.MethodPost, "/api/users/", map[string]string{
		"username": "anna2", "email": "anna@example.com", "password": "secret123",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w, resp = s.do(t, http.MethodPost, "/api/token/", map[string]string{"email": "anna@example.com", "password": "nope-nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp = s.do(t, http.MethodPost, "/api/token/", map[string]string{"email": "anna@example.com", "password": "secret123"}, "")
	require.Equal(t, http.StatusOK, w.Code, resp.Message)
	tokens := dataMap(t, resp)
	access := tokens["access"].(string)
	refresh := tokens["refresh"].(string)

	w, resp = s.do(t, http.MethodPatch, "/api/users/update_skin_profile/", map[string]any{
		"skin_type": "Combination - Sensitive", "skin_problems": []string{"Wrinkles"},
	}, access)
	require.Equal(t, http.StatusOK, w.Code, resp.Message)

	w, resp = s.do(t, http.MethodPatch, "/api/users/update_skin_profile/", map[string]any{"skin_type": "Sensitive - Sensitive"}, access)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = s.do(t, http.MethodGet, "/api/users/me/", nil, access)
	require.Equal(t, http.StatusOK, w.Code)
	me := dataMap(t, resp)
	assert.Equal(t, "Combination - Sensitive", me["skin_type"])
	assert.Equal(t, []any{"Wrinkles"}, me["skin_problems"])

	w, _ = s.do(t, http.MethodPost, "/api/token/refresh/", map[string]string{"refresh": refresh}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(t, http.MethodPost, "/api/token/refresh/", map[string]string{"refresh": refresh}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
