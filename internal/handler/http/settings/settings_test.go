package settings_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/handler/http/auth"
	"cahaya-digital/internal/handler/http/settings"
	"cahaya-digital/internal/infra/adapter/persistence/memory"
	settingsUC "cahaya-digital/internal/usecase/settings"
)

func TestSettings(t *testing.T) {
	tokens := auth.NewTokenIssuer("k3p9-x7Qa-2mZr-8vLt-5nWc-1bYh-6dJs", time.Hour, "cahaya-digital")
	mux := http.NewServeMux()
	settings.Register(mux, settingsUC.NewService(memory.New().Settings()), tokens)

	do := func(method, body string, role entity.Role) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/api/settings", strings.NewReader(body))
		if role != "" {
			tok, _, err := tokens.Issue(&entity.User{ID: 1, Username: "u", Role: role})
			require.NoError(t, err)
			req.Header.Set("Authorization", "Bearer "+tok)
		}
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodGet, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"siteName":"CahayaDigital25","logoText":"CD","primaryColor":"#e53e3e","secondaryColor":"#333333","accentColor":"#f6ad55"}`, rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, do(http.MethodPatch, `{"siteName":"X"}`, "").Code)
	assert.Equal(t, http.StatusForbidden, do(http.MethodPatch, `{"siteName":"X"}`, entity.RoleModerator).Code)

	rec = do(http.MethodPatch, `{"siteName":"Kabar Kita","primaryColor":"#000"}`, entity.RoleAdmin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"siteName":"Kabar Kita"`)
	assert.Contains(t, rec.Body.String(), `"logoText":"CD"`)

	rec = do(http.MethodPatch, `{"accentColor":"orange"}`, entity.RoleAdmin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"accentColor"`)
}
