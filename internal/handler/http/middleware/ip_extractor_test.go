package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteAddrExtractor(t *testing.T) {
	tests := []struct {
		remote string
		want   string
		err    bool
	}{
		{"192.168.1.1:54321", "192.168.1.1", false},
		{"[2001:db8::1]:8080", "2001:db8::1", false},
		{"127.0.0.1", "127.0.0.1", false},
		{"not-an-ip", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			req.Header.Set("X-Forwarded-For", "1.2.3.4")

			got, err := RemoteAddrExtractor{}.ExtractIP(req)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	prefixes, err := ParseTrustedProxies([]string{"10.0.0.0/8", " 192.168.1.1 ", "", "2001:db8::1"})
	require.NoError(t, err)
	require.Len(t, prefixes, 3)
	assert.Equal(t, "192.168.1.1/32", prefixes[1].String())
	assert.Equal(t, "2001:db8::1/128", prefixes[2].String())

	_, err = ParseTrustedProxies([]string{"10.0.0.0/99"})
	assert.Error(t, err)
}

func TestTrustedProxyExtractor(t *testing.T) {
	prefixes, err := ParseTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)
	ex := NewIPExtractor(prefixes)

	t.Run("trusted proxy uses first forwarded address", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.1.2.3:4000"
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.1.2.3")
		ip, err := ex.ExtractIP(req)
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.7", ip)
	})

	t.Run("trusted proxy falls back to X-Real-IP", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.1.2.3:4000"
		req.Header.Set("X-Real-IP", "203.0.113.9")
		ip, err := ex.ExtractIP(req)
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.9", ip)
	})

	t.Run("untrusted peer headers are ignored", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "198.51.100.1:4000"
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		ip, err := ex.ExtractIP(req)
		require.NoError(t, err)
		assert.Equal(t, "198.51.100.1", ip)
	})
}

func TestNewIPExtractor_Default(t *testing.T) {
	assert.IsType(t, RemoteAddrExtractor{}, NewIPExtractor(nil))
}
