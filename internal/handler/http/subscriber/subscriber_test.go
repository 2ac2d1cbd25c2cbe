package subscriber_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cahaya-digital/internal/common/pagination"
	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/handler/http/auth"
	"cahaya-digital/internal/handler/http/middleware"
	"cahaya-digital/internal/handler/http/subscriber"
	"cahaya-digital/internal/infra/adapter/persistence/memory"
	subUC "cahaya-digital/internal/usecase/subscriber"
	"cahaya-digital/pkg/ratelimit"
)

func newMux(t *testing.T, limit func(http.Handler) http.Handler) (*http.ServeMux, *auth.TokenIssuer) {
	t.Helper()
	tokens := auth.NewTokenIssuer("k3p9-x7Qa-2mZr-8vLt-5nWc-1bYh-6dJs", time.Hour, "cahaya-digital")
	mux := http.NewServeMux()
	subscriber.Register(mux, subUC.NewService(memory.New().Subscribers()), pagination.DefaultConfig(), tokens, limit)
	return mux, tokens
}

func post(mux http.Handler, email string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/subscribers", strings.NewReader(`{"email":"`+email+`"}`))
	req.RemoteAddr = "203.0.113.9:4000"
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestSubscribe_Idempotent(t *testing.T) {
	mux, _ := newMux(t, nil)

	first := post(mux, "Pembaca@Example.com")
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	second := post(mux, "pembaca@example.com")
	require.Equal(t, http.StatusCreated, second.Code)

	var a, b subscriber.DTO
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, "pembaca@example.com", a.Email)
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	mux, _ := newMux(t, nil)
	rec := post(mux, "bukan-email")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"email"`)
}

func TestSubscribe_RateLimited(t *testing.T) {
	lim, err := ratelimit.New(ratelimit.Config{Rate: 2, Per: time.Hour, Burst: 2})
	require.NoError(t, err)
	rl := middleware.NewIPRateLimiter("subscribe", lim, nil, slog.Default())
	mux, _ := newMux(t, rl.Middleware)

	assert.Equal(t, http.StatusCreated, post(mux, "a@example.com").Code)
	assert.Equal(t, http.StatusCreated, post(mux, "b@example.com").Code)
	rec := post(mux, "c@example.com")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestList_RequiresModerator(t *testing.T) {
	mux, tokens := newMux(t, nil)
	post(mux, "a@example.com")

	get := func(role entity.Role) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/subscribers", nil)
		if role != "" {
			tok, _, err := tokens.Issue(&entity.User{ID: 1, Username: "u", Role: role})
			require.NoError(t, err)
			req.Header.Set("Authorization", "Bearer "+tok)
		}
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, get("").Code)
	assert.Equal(t, http.StatusForbidden, get(entity.RoleEditor).Code)

	rec := get(entity.RoleModerator)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []subscriber.DTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
}
