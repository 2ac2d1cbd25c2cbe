package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// IPExtractor extracts the client IP address from an HTTP request.
type IPExtractor interface {
	ExtractIP(r *http.Request) (string, error)
}

// RemoteAddrExtractor uses the TCP peer address, which clients cannot spoof.
// It is the default when no trusted proxy is configured.
type RemoteAddrExtractor struct{}

func (e RemoteAddrExtractor) ExtractIP(r *http.Request) (string, error) {
	return extractIPFromAddr(r.RemoteAddr)
}

// TrustedProxyExtractor honours X-Forwarded-For and X-Real-IP only when the
// peer is one of the configured proxies.
type TrustedProxyExtractor struct {
	proxies []netip.Prefix
}

// ParseTrustedProxies parses IPs and CIDR ranges. Single IPs become /32 or /128 prefixes.
func ParseTrustedProxies(list []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		prefix, err := netip.ParsePrefix(s)
		if err != nil {
			ip, ipErr := netip.ParseAddr(s)
			if ipErr != nil {
				return nil, fmt.Errorf("invalid IP or CIDR format '%s'", s)
			}
			prefix = netip.PrefixFrom(ip, ip.BitLen())
		}
		prefixes = append(prefixes, prefix)
	}
	return prefixes, nil
}

// NewIPExtractor returns a TrustedProxyExtractor when proxies are configured,
// otherwise a RemoteAddrExtractor.
func NewIPExtractor(proxies []netip.Prefix) IPExtractor {
	if len(proxies) == 0 {
		return RemoteAddrExtractor{}
	}
	return &TrustedProxyExtractor{proxies: proxies}
}

func (e *TrustedProxyExtractor) isTrusted(remoteAddr string) bool {
	ip, err := extractIPFromAddr(remoteAddr)
	if err != nil {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	for _, p := range e.proxies {
		if p.Contains(addr.Unmap()) {
			return true
		}
	}
	return false
}

func (e *TrustedProxyExtractor) ExtractIP(r *http.Request) (string, error) {
	if !e.isTrusted(r.RemoteAddr) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			slog.Warn("untrusted peer attempting to set X-Forwarded-For",
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("x_forwarded_for", xff))
		}
		return extractIPFromAddr(r.RemoteAddr)
	}
	if ip := parseFirstIP(r.Header.Get("X-Forwarded-For")); ip != "" {
		return ip, nil
	}
	if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
		return ip.String(), nil
	}
	return extractIPFromAddr(r.RemoteAddr)
}

// extractIPFromAddr accepts "host:port", "[v6]:port" or a bare IP.
func extractIPFromAddr(addr string) (string, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		if ip := net.ParseIP(addr); ip != nil {
			return ip.String(), nil
		}
		return "", fmt.Errorf("invalid address format: %s", addr)
	}
	return host, nil
}

// parseFirstIP returns the client entry of an X-Forwarded-For list ("client, proxy1, proxy2").
func parseFirstIP(s string) string {
	first, _, _ := strings.Cut(s, ",")
	if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
		return ip.String()
	}
	return ""
}
