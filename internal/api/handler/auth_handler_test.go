package handler_test

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

	"quizhub/internal/api/handler"
	"quizhub/internal/api/middleware"
	"quizhub/internal/app/service"
	"quizhub/internal/common"
	"quizhub/internal/common/security"
	"quizhub/internal/domain/model"
	"quizhub/internal/platform/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]model.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, common.ErrNotFound
}

func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	config.AppConfig = &config.Config{
		Env:    config.EnvDevelopment,
		JWTKey: []byte("test-signing-secret"),
		JWTExp: 30 * 24 * time.Hour,
	}
	security.InitJWT()

	authService := service.NewAuthService(newMemUserRepo())

	r := chi.NewRouter()
	r.Use(middleware.ResolveIdentity)
	r.Route("/api/v1/auth", handler.NewAuthHandler(authService).RegisterRoutes)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return res
}

func decodeBody(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	defer res.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func registerUser(t *testing.T, srv *httptest.Server, username, email, password string) map[string]any {
	t.Helper()
	res := postJSON(t, srv.URL+"/api/v1/auth/register", map[string]any{
		"username": username, "email": email, "password": password, "isTeacher": false,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	return decodeBody(t, res)
}

func jwtCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == security.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestRegisterEndpoint(t *testing.T) {
	srv := newAuthServer(t)

	t.Run("creates a user and never returns a password", func(t *testing.T) {
		res := postJSON(t, srv.URL+"/api/v1/auth/register", map[string]any{
			"username": "alice", "email": "a@x.com", "password": "pw123456", "isTeacher": false,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode)

		body := decodeBody(t, res)
		assert.NotEmpty(t, body["id"])
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "a@x.com", body["email"])
		assert.Equal(t, false, body["isTeacher"])
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "hashedPassword")
		assert.Nil(t, jwtCookie(res), "registration must not authenticate")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		res := postJSON(t, srv.URL+"/api/v1/auth/register", map[string]any{
			"username": "alice2", "email": "a@x.com", "password": "pw123456",
		})
		defer res.Body.Close()
		assert.Equal(t, http.StatusConflict, res.StatusCode)
	})
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	srv := newAuthServer(t)
	registerUser(t, srv, "alice", "a@x.com", "pw123456")

	for name, body := range map[string]map[string]any{
		"unknown email":  {"email": "nobody@x.com", "password": "pw123456"},
		"wrong password": {"email": "a@x.com", "password": "wrong-pass"},
	} {
		t.Run(name, func(t *testing.T) {
			res := postJSON(t, srv.URL+"/api/v1/auth/login", body)
			require.Equal(t, http.StatusUnauthorized, res.StatusCode)
			assert.Equal(t, "Invalid email or password", decodeBody(t, res)["error"])
		})
	}
}

func TestLoginEndpoint_BearerCarrier(t *testing.T) {
	srv := newAuthServer(t)
	registerUser(t, srv, "alice", "a@x.com", "pw123456")

	res := postJSON(t, srv.URL+"/api/v1/auth/login", map[string]any{
		"email": "a@x.com", "password": "pw123456", "rememberMe": false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Nil(t, jwtCookie(res), "bearer login must not set a cookie")

	body := decodeBody(t, res)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	user := body["user"].(map[string]any)
	assert.Equal(t, "a@x.com", user["email"])

	// The issued token resolves back to the same user.
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/auth/autologin", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	res2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res2.StatusCode)
	resolved := decodeBody(t, res2)["user"].(map[string]any)
	assert.Equal(t, "a@x.com", resolved["email"])
}

func TestLoginEndpoint_CookieCarrier(t *testing.T) {
	srv := newAuthServer(t)
	registerUser(t, srv, "alice", "a@x.com", "pw123456")

	res := postJSON(t, srv.URL+"/api/v1/auth/login", map[string]any{
		"email": "a@x.com", "password": "pw123456", "rememberMe": true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	cookie := jwtCookie(res)
	require.NotNil(t, cookie, "rememberMe login must set the session cookie")
	assert.True(t, cookie.HttpOnly)
	assert.Positive(t, cookie.MaxAge)

	body := decodeBody(t, res)
	assert.NotContains(t, body, "token", "cookie login must not expose the token in the body")

	// The cookie alone resolves the identity.
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/auth/autologin", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	res2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res2.StatusCode)
	resolved := decodeBody(t, res2)["user"].(map[string]any)
	assert.Equal(t, "a@x.com", resolved["email"])
}

func TestAutologinEndpoint_Anonymous(t *testing.T) {
	srv := newAuthServer(t)

	t.Run("no credentials", func(t *testing.T) {
		res, err := http.Get(srv.URL + "/api/v1/auth/autologin")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Nil(t, decodeBody(t, res)["user"])
	})

	t.Run("sentinel bearer token", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/auth/autologin", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer undefined")
		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Nil(t, decodeBody(t, res)["user"])
	})
}

func TestLogoutEndpoint(t *testing.T) {
	srv := newAuthServer(t)
	registerUser(t, srv, "alice", "a@x.com", "pw123456")

	t.Run("requires a session", func(t *testing.T) {
		res := postJSON(t, srv.URL+"/api/v1/auth/logout", map[string]any{})
		defer res.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("expires the session cookie", func(t *testing.T) {
		login := postJSON(t, srv.URL+"/api/v1/auth/login", map[string]any{
			"email": "a@x.com", "password": "pw123456", "rememberMe": false,
		})
		token := decodeBody(t, login)["token"].(string)

		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/auth/logout", strings.NewReader("{}"))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)

		cookie := jwtCookie(res)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
		res.Body.Close()
	})
}
