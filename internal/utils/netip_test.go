package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseHostNoPort(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"10.0.0.1":      "10.0.0.1",
		"10.0.0.1:8080": "10.0.0.1",
		"[::1]:8080":    "::1",
		"[::1]":         "::1",
		"folio.dev:443": "folio.dev",
		"2001:db8::1":   "2001:db8::1",
	}
	for in, want := range tests {
		if got := ParseHostNoPort(in); got != want {
			t.Errorf("ParseHostNoPort(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{"remote addr", nil, false, "192.0.2.1"},
		{"headers ignored without trust", map[string]string{"X-Forwarded-For": "10.0.0.1"}, false, "192.0.2.1"},
		{"cloudflare first", map[string]string{"CF-Connecting-IP": "10.0.0.9", "X-Forwarded-For": "10.0.0.1"}, true, "10.0.0.9"},
		{"left-most forwarded", map[string]string{"X-Forwarded-For": " 10.0.0.1 , 10.0.0.2"}, true, "10.0.0.1"},
		{"real ip", map[string]string{"X-Real-IP": "10.0.0.3"}, true, "10.0.0.3"},
		{"no headers with trust", nil, true, "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:4321"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := ClientIP(req, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", " 192.168.1.10 ", "fd00::/8", "not-an-ip", ""})

	if m.IsEmpty() {
		t.Fatal("IsEmpty() = true")
	}

	tests := map[string]bool{
		"10.20.30.40":     true,
		"192.168.1.10":    true,
		"192.168.1.11":    false,
		"::ffff:10.1.1.1": true,
		"fd12::1":         true,
		"2001:db8::1":     false,
		"garbage":         false,
		"":                false,
	}
	for ip, want := range tests {
		if got := m.Allow(ip); got != want {
			t.Errorf("Allow(%q) = %v, want %v", ip, got, want)
		}
	}

	if !NewIPMatcher([]string{"nope", " "}).IsEmpty() {
		t.Error("matcher with only invalid entries is not empty")
	}
}
