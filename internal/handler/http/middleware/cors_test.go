package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func portalCORS() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"http://cahayadigital25.rf.gd"},
		MaxAge:         600,
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	h := CORS(portalCORS())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	req.Header.Set("Origin", "http://cahayadigital25.rf.gd")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://cahayadigital25.rf.gd", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Origin", rr.Header().Get("Vary"))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	h := CORS(portalCORS())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	h := CORS(portalCORS())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodOptions, "/api/articles/1", nil)
	req.Header.Set("Origin", "http://cahayadigital25.rf.gd")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "GET, POST, PUT, PATCH, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Origin, X-Requested-With, Content-Type, Accept, Authorization, X-Request-ID",
		rr.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", rr.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_Wildcard(t *testing.T) {
	h := CORS(CORSConfig{AllowedOrigins: []string{"*"}})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/rss.xml", nil)
	req.Header.Set("Origin", "https://reader.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_SameOrigin(t *testing.T) {
	h := CORS(portalCORS())(okHandler())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/settings", nil))
	assert.Empty(t, rr.Header().Get("Vary"))
}

func TestCORSConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		wantErr bool
	}{
		{"valid", []string{"https://cahayadigital25.com", "http://localhost:5173"}, false},
		{"wildcard", []string{"*"}, false},
		{"empty", nil, true},
		{"no scheme", []string{"cahayadigital25.com"}, true},
		{"path", []string{"https://cahayadigital25.com/app"}, true},
		{"trailing slash", []string{"https://cahayadigital25.com/"}, true},
		{"ftp", []string{"ftp://cahayadigital25.com"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CORSConfig{AllowedOrigins: tt.origins}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
