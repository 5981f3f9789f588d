// Package middleware contains request-scoped HTTP middleware that needs
// its own state: client IP extraction and per-client rate limiting.
package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"

	pkgconfig "butuhkidul/pkg/config"
)

// IPExtractor extracts the client IP address from a request.
type IPExtractor interface {
	ExtractIP(r *http.Request) (string, error)
}

// RemoteAddrExtractor uses the TCP peer address. It cannot be spoofed and
// is the default when no proxy is trusted.
type RemoteAddrExtractor struct{}

// ExtractIP returns the host part of r.RemoteAddr.
//
//   - "192.168.1.1:54321"  → "192.168.1.1"
//   - "[2001:db8::1]:8080" → "2001:db8::1"
//   - "127.0.0.1"          → "127.0.0.1"
func (e *RemoteAddrExtractor) ExtractIP(r *http.Request) (string, error) {
	return extractIPFromAddr(r.RemoteAddr)
}

// TrustedProxyConfig lists the reverse proxies (front-end server, CDN)
// whose forwarding headers are believed.
type TrustedProxyConfig struct {
	Enabled      bool
	AllowedCIDRs []netip.Prefix
}

// IsTrusted reports whether remoteAddr belongs to a trusted proxy.
func (c *TrustedProxyConfig) IsTrusted(remoteAddr string) bool {
	ip, err := extractIPFromAddr(remoteAddr)
	if err != nil {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	for _, prefix := range c.AllowedCIDRs {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// LoadTrustedProxyConfig reads TRUST_PROXY and TRUSTED_PROXIES (comma
// separated IPs or CIDRs). Invalid entries are an error so a typo does not
// silently disable per-client limiting.
func LoadTrustedProxyConfig() (*TrustedProxyConfig, error) {
	cfg := &TrustedProxyConfig{
		Enabled:      pkgconfig.GetEnvBool("TRUST_PROXY", false),
		AllowedCIDRs: []netip.Prefix{},
	}
	if !cfg.Enabled {
		return cfg, nil
	}

	raw := pkgconfig.GetEnvString("TRUSTED_PROXIES", "")
	if raw == "" {
		return nil, fmt.Errorf("TRUST_PROXY is enabled but TRUSTED_PROXIES is empty")
	}
	prefixes, err := ParseCIDRList(raw)
	if err != nil {
		return nil, err
	}
	cfg.AllowedCIDRs = prefixes
	return cfg, nil
}

// ParseCIDRList parses "10.0.0.0/8, 192.168.1.1" into prefixes. Bare IPs
// become /32 or /128.
func ParseCIDRList(raw string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(part); err == nil {
			out = append(out, prefix.Masked())
			continue
		}
		ip, err := netip.ParseAddr(part)
		if err != nil {
			return nil, fmt.Errorf("invalid IP or CIDR %q", part)
		}
		out = append(out, netip.PrefixFrom(ip, ip.BitLen()))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no valid proxies in %q", raw)
	}
	return out, nil
}

// TrustedProxyExtractor believes X-Forwarded-For and X-Real-IP only when
// the peer is a trusted proxy; otherwise it uses RemoteAddr.
type TrustedProxyExtractor struct {
	config TrustedProxyConfig
}

// NewTrustedProxyExtractor creates a TrustedProxyExtractor.
func NewTrustedProxyExtractor(config TrustedProxyConfig) *TrustedProxyExtractor {
	return &TrustedProxyExtractor{config: config}
}

// ExtractIP returns the first X-Forwarded-For entry, then X-Real-IP, then
// RemoteAddr, consulting headers only for trusted peers.
func (e *TrustedProxyExtractor) ExtractIP(r *http.Request) (string, error) {
	if !e.config.Enabled {
		return extractIPFromAddr(r.RemoteAddr)
	}

	if !e.config.IsTrusted(r.RemoteAddr) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			slog.Debug("ignoring X-Forwarded-For from untrusted peer",
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

func extractIPFromAddr(addr string) (string, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		if ip := net.ParseIP(strings.Trim(addr, "[]")); ip != nil {
			return ip.String(), nil
		}
		return "", fmt.Errorf("invalid address format: %s", addr)
	}
	return host, nil
}

// parseFirstIP returns the first entry of a comma separated list if it is
// a valid IP, otherwise "".
func parseFirstIP(s string) string {
	first, _, _ := strings.Cut(s, ",")
	if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
		return ip.String()
	}
	return ""
}
