package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	_ "cahaya-digital/docs"
	"cahaya-digital/internal/common/pagination"
	"cahaya-digital/internal/domain/entity"
	hhttp "cahaya-digital/internal/handler/http"
	"cahaya-digital/internal/handler/http/auth"
	"cahaya-digital/internal/handler/http/middleware"
	"cahaya-digital/internal/infra/adapter/persistence/memory"
	authservice "cahaya-digital/internal/service/auth"
	artUC "cahaya-digital/internal/usecase/article"
	settingsUC "cahaya-digital/internal/usecase/settings"
	statsUC "cahaya-digital/internal/usecase/stats"
	subUC "cahaya-digital/internal/usecase/subscriber"
	userUC "cahaya-digital/internal/usecase/user"
	"cahaya-digital/pkg/ratelimit"
	"cahaya-digital/pkg/security/password"
)

const origin = "http://cahayadigital25.rf.gd"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.New()
	hasher := password.NewHasher(bcrypt.MinCost)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := userUC.NewService(store.Users(), hasher)
	_, err := users.Create(context.Background(), userUC.CreateInput{Username: "admin", Password: "kata-sandi-kuat", Role: entity.RoleAdmin})
	require.NoError(t, err)

	authSvc, err := authservice.NewAuthService(store.Users(), hasher)
	require.NoError(t, err)

	loginLimit, err := ratelimit.New(ratelimit.Config{Rate: 3, Per: time.Minute})
	require.NoError(t, err)

	h := hhttp.NewRouter(hhttp.RouterConfig{
		Services: hhttp.Services{
			Articles:    artUC.NewService(store.Articles()),
			Users:       users,
			Settings:    settingsUC.NewService(store.Settings()),
			Subscribers: subUC.NewService(store.Subscribers()),
			Stats:       statsUC.NewService(store),
			Auth:        authSvc,
		},
		Tokens:       auth.NewTokenIssuer("k3p9-x7Qa-2mZr-8vLt-5nWc-1bYh-6dJs", time.Hour, "cahaya-digital"),
		Storage:      store,
		Driver:       "memory",
		Version:      "test",
		Pagination:   pagination.DefaultConfig(),
		CORS:         middleware.CORSConfig{AllowedOrigins: []string{origin}, MaxAge: 600},
		Security:     middleware.SecurityConfig{CSPEnabled: true},
		LoginLimiter: middleware.NewIPRateLimiter("login", loginLimit, nil, logger),
		Logger:       logger,
	})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, body, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Origin", origin)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestRouter_EditorialFlow(t *testing.T) {
	srv := newServer(t)

	resp := call(t, srv, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"kata-sandi-kuat"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, origin, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))

	article := `{"title":"Banjir di pesisir","content":"<p>Warga mengungsi</p>","category":"politik","imageUrl":"/uploads/banjir.jpg","author":"Redaksi","isBreaking":true}`
	assert.Equal(t, http.StatusUnauthorized, call(t, srv, http.MethodPost, "/api/articles", article, "").StatusCode)
	assert.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/api/articles", article, login.Token).StatusCode)

	resp = call(t, srv, http.MethodGet, "/api/articles/breaking", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var breaking []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&breaking))
	require.Len(t, breaking, 1)
	assert.Equal(t, "Banjir di pesisir", breaking[0]["title"])

	resp = call(t, srv, http.MethodGet, "/api/stats", "", login.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, srv, http.MethodGet, "/rss.xml", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<title>Banjir di pesisir</title>")
}

func TestRouter_LoginRateLimited(t *testing.T) {
	srv := newServer(t)
	for range 3 {
		assert.Equal(t, http.StatusUnauthorized,
			call(t, srv, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"salah-terus"}`, "").StatusCode)
	}
	resp := call(t, srv, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"kata-sandi-kuat"}`, "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
}

func TestRouter_Preflight(t *testing.T) {
	srv := newServer(t)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/articles", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "PATCH")
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestRouter_Operational(t *testing.T) {
	srv := newServer(t)

	assert.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/health", "", "").StatusCode)
	assert.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/ready", "", "").StatusCode)
	assert.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/live", "", "").StatusCode)

	call(t, srv, http.MethodGet, "/api/articles", "", "")
	resp := call(t, srv, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{`)

	resp = call(t, srv, http.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "/api/articles")
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "'unsafe-inline'")

	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodGet, "/api/nothing", "", "").StatusCode)
}
