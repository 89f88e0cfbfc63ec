// AngelaMos | 2026
// handler_test.go

package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengarden-id/backend/internal/config"
	"github.com/greengarden-id/backend/internal/core"
	"github.com/greengarden-id/backend/internal/middleware"
)

type memoryUsers struct {
	mu      sync.Mutex
	byEmail map[string]*UserInfo
	byID    map[string]*UserInfo
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{
		byEmail: make(map[string]*UserInfo),
		byID:    make(map[string]*UserInfo),
	}
}

func (m *memoryUsers) GetByEmail(
	_ context.Context,
	email string,
) (*UserInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	return user, nil
}

func (m *memoryUsers) GetByID(
	_ context.Context,
	id string,
) (*UserInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	return user, nil
}

func (m *memoryUsers) Create(
	_ context.Context,
	email, passwordHash, name, phone string,
) (*UserInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := m.byEmail[key]; exists {
		return nil, fmt.Errorf("create user: %w", core.ErrDuplicateKey)
	}

	user := &UserInfo{
		ID:           uuid.New().String(),
		Email:        key,
		Name:         name,
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         "customer",
		CreatedAt:    time.Now(),
	}
	m.byEmail[key] = user
	m.byID[user.ID] = user
	return user, nil
}

func (m *memoryUsers) UpdatePassword(
	_ context.Context,
	userID, passwordHash string,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user, ok := m.byID[userID]; ok {
		user.PasswordHash = passwordHash
	}
	return nil
}

type memoryDenylist struct {
	mu      sync.Mutex
	revoked map[string]struct{}
}

func newMemoryDenylist() *memoryDenylist {
	return &memoryDenylist{revoked: make(map[string]struct{})}
}

func (m *memoryDenylist) Revoke(
	_ context.Context,
	jti string,
	_ time.Duration,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[jti] = struct{}{}
	return nil
}

func (m *memoryDenylist) IsRevoked(
	_ context.Context,
	jti string,
) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[jti]
	return ok, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	service := NewService(manager, newMemoryUsers(), newMemoryDenylist())
	cookies := NewCookieWriter(
		config.CookieConfig{Name: "auth_token"},
		config.JWTConfig{TokenExpire: time.Hour},
		false,
	)
	handler := NewHandler(service, cookies)

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		handler.RegisterRoutes(
			r,
			middleware.Authenticator(service, cookies.Name()),
			nil,
		)
	})
	return router
}

func doJSON(
	t *testing.T,
	router http.Handler,
	method, path string,
	body any,
	cookies []*http.Cookie,
) *httptest.ResponseRecorder {
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
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func sessionCookie(
	t *testing.T,
	rec *httptest.ResponseRecorder,
) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "auth_token" {
			return cookie
		}
	}
	t.Fatal("no auth_token cookie in response")
	return nil
}

func TestRegister_SetsSessionCookie(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "hunter2hunter2",
		"phone":    "08123456789",
	}, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	cookie := sessionCookie(t, rec)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestRegister_DuplicateEmailIsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "hunter2hunter2",
		"phone":    "08123456789",
	}

	first := doJSON(t, router, http.MethodPost, "/v1/auth/register", payload, nil)
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, router, http.MethodPost, "/v1/auth/register", payload, nil)
	require.Equal(t, http.StatusBadRequest, second.Code)

	env := decodeEnvelope(t, second)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DUPLICATE_EMAIL", env.Error.Code)
}

func TestRegister_RejectsInvalidPayload(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", map[string]string{
		"name":     "Ana",
		"email":    "not-an-email",
		"password": "short",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/v1/auth/register", map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "hunter2hunter2",
		"phone":    "08123456789",
	}, nil)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "ana@example.com",
		"password": "wrong-password",
	}, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "ghost@example.com",
		"password": "hunter2hunter2",
	}, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestSessionLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// register, then sign in fresh
	doJSON(t, router, http.MethodPost, "/v1/auth/register", map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "hunter2hunter2",
		"phone":    "08123456789",
	}, nil)

	login := doJSON(t, router, http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "ana@example.com",
		"password": "hunter2hunter2",
	}, nil)
	require.Equal(t, http.StatusOK, login.Code)
	cookie := sessionCookie(t, login)

	// identity endpoint sees the session
	me := doJSON(t, router, http.MethodGet, "/v1/auth/me", nil,
		[]*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, me.Code)

	var meBody struct {
		User UserResponse `json:"user"`
	}
	env := decodeEnvelope(t, me)
	require.NoError(t, json.Unmarshal(env.Data, &meBody))
	assert.Equal(t, "ana@example.com", meBody.User.Email)
	assert.Equal(t, "customer", meBody.User.Role)

	// logout clears the cookie and revokes the token
	logout := doJSON(t, router, http.MethodPost, "/v1/auth/logout", nil,
		[]*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, logout.Code)

	cleared := sessionCookie(t, logout)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)

	// the captured token is dead even though it has not expired
	replay := doJSON(t, router, http.MethodGet, "/v1/auth/me", nil,
		[]*http.Cookie{cookie})
	assert.Equal(t, http.StatusUnauthorized, replay.Code)
}

func TestGetMe_NoToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetMe_BearerFallback(t *testing.T) {
	router := newTestRouter(t)

	reg := doJSON(t, router, http.MethodPost, "/v1/auth/register", map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "hunter2hunter2",
		"phone":    "08123456789",
	}, nil)
	token := sessionCookie(t, reg).Value

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
