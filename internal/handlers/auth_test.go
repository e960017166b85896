package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cookie-sid/job-application-tracker/internal/auth"
	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
	"github.com/cookie-sid/job-application-tracker/internal/service"
)

type stubUserRepo struct {
	mu      sync.Mutex
	byID    map[string]dom.User
	byEmail map[string]string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: map[string]dom.User{}, byEmail: map[string]string{}}
}

func (s *stubUserRepo) Create(_ context.Context, u dom.User) (dom.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[u.Email]; exists {
		return dom.User{}, &pgconn.PgError{Code: "23505"}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	s.byID[u.ID] = u
	s.byEmail[u.Email] = u.ID
	return u, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[email]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return s.byID[id], nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (dom.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (s *stubUserRepo) UpdateProfile(_ context.Context, id, firstName string, skills []string) (dom.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	u.FirstName = firstName
	u.Skills = skills
	s.byID[id] = u
	return u, nil
}

func (s *stubUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = passwordHash
	s.byID[id] = u
	return nil
}

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newStubUserRepo()
	tokens := auth.NewTokenService("test-secret-at-least-16", time.Hour)
	h := NewAuthHandler(tokens, service.NewUserService(repo), zap.NewNop())

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	protected := api.Group("", auth.RequireAuth(tokens, repo))
	protected.GET("/auth/profile", h.GetProfile)
	protected.PUT("/auth/profile", h.UpdateProfile)
	protected.PUT("/auth/change-password", h.ChangePassword)
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": email, "password": "Passw0rd", "firstName": "Ada", "lastName": "Lovelace",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterEndpoint(t *testing.T) {
	r := newAuthTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "ada@example.com", "password": "Passw0rd", "firstName": "Ada", "lastName": "Lovelace",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := w.Body.String()
	assert.Contains(t, body, `"token"`)
	assert.Contains(t, body, `"ada@example.com"`)
	// No form of the credential may appear in the response.
	assert.NotContains(t, body, "Passw0rd")
	assert.NotContains(t, strings.ToLower(body), "hash")
	assert.NotContains(t, body, "$2a$")
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	r := newAuthTestRouter(t)
	registerUser(t, r, "ada@example.com")

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "ada@example.com", "password": "Passw0rd", "firstName": "Ada", "lastName": "Lovelace",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterEndpointAggregatesValidation(t *testing.T) {
	r := newAuthTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "nope", "password": "weak", "firstName": "A", "lastName": "",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	fields := map[string]bool{}
	for _, e := range resp.Errors {
		fields[e.Field] = true
	}
	assert.True(t, fields["email"])
	assert.True(t, fields["password"])
	assert.True(t, fields["firstName"])
	assert.True(t, fields["lastName"])
}

func TestLoginEndpointUniformError(t *testing.T) {
	r := newAuthTestRouter(t)
	registerUser(t, r, "ada@example.com")

	wrongPw := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ada@example.com", "password": "WrongPassw0rd",
	})
	unknown := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "nobody@example.com", "password": "Passw0rd",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	// Byte-identical bodies: the response must not reveal whether the
	// email is registered.
	assert.Equal(t, wrongPw.Body.String(), unknown.Body.String())
}

func TestProfileRoundTrip(t *testing.T) {
	r := newAuthTestRouter(t)
	token := registerUser(t, r, "ada@example.com")

	w := doJSON(r, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ada@example.com"`)

	w = doJSON(r, http.MethodPut, "/api/auth/profile", token, gin.H{
		"skills": []string{"Go", "SQL"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"Go"`)
	assert.Contains(t, w.Body.String(), `"Ada"`, "firstName untouched when omitted")
}

func TestProfileRequiresToken(t *testing.T) {
	r := newAuthTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/auth/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePasswordEndpoint(t *testing.T) {
	r := newAuthTestRouter(t)
	token := registerUser(t, r, "ada@example.com")

	w := doJSON(r, http.MethodPut, "/api/auth/change-password", token, gin.H{
		"currentPassword": "WrongPassw0rd", "newPassword": "NewPassw0rd",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Current password is incorrect.")

	w = doJSON(r, http.MethodPut, "/api/auth/change-password", token, gin.H{
		"currentPassword": "Passw0rd", "newPassword": "NewPassw0rd",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The old password stops working, the new one logs in.
	old := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ada@example.com", "password": "Passw0rd",
	})
	assert.Equal(t, http.StatusUnauthorized, old.Code)
	fresh := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ada@example.com", "password": "NewPassw0rd",
	})
	assert.Equal(t, http.StatusOK, fresh.Code)
}
