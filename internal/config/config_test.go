package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FOLIO_REDIS_ADDR", "")
	t.Setenv("FOLIO_CONTENT_FILE", "")
	t.Setenv("FOLIO_PUBLIC_URL", "")

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want :8080", cfg.ListenPort)
	}
	if cfg.ScrollThreshold != 50 {
		t.Errorf("ScrollThreshold = %d, want 50", cfg.ScrollThreshold)
	}
	if cfg.RevealThreshold != 0.12 {
		t.Errorf("RevealThreshold = %v, want 0.12", cfg.RevealThreshold)
	}
	if cfg.PublicURL != "/public" {
		t.Errorf("PublicURL = %q, want /public", cfg.PublicURL)
	}
	if cfg.RedisEnabled() {
		t.Error("RedisEnabled() = true without FOLIO_REDIS_ADDR")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FOLIO_LISTEN_PORT", ":9090")
	t.Setenv("FOLIO_PUBLIC_URL", "/portfolio/")
	t.Setenv("FOLIO_SCROLL_THRESHOLD", "60")
	t.Setenv("FOLIO_REVEAL_THRESHOLD", "0.1")
	t.Setenv("FOLIO_REDIS_ADDR", "localhost:6379")
	t.Setenv("FOLIO_ALLOWED_CIDRS", "10.0.0.0/8, 127.0.0.1")

	cfg := Load()

	if cfg.ListenPort != ":9090" {
		t.Errorf("ListenPort = %q, want :9090", cfg.ListenPort)
	}
	if cfg.PublicURL != "/portfolio" {
		t.Errorf("PublicURL = %q, want /portfolio", cfg.PublicURL)
	}
	if cfg.ScrollThreshold != 60 {
		t.Errorf("ScrollThreshold = %d, want 60", cfg.ScrollThreshold)
	}
	if cfg.RevealThreshold != 0.1 {
		t.Errorf("RevealThreshold = %v, want 0.1", cfg.RevealThreshold)
	}
	if !cfg.RedisEnabled() {
		t.Error("RedisEnabled() = false with FOLIO_REDIS_ADDR set")
	}
	if len(cfg.AllowedCIDRS) != 2 {
		t.Errorf("AllowedCIDRS = %v, want 2 entries", cfg.AllowedCIDRS)
	}
}

func TestLoadPanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("FOLIO_REDIS_ADDR", "localhost:6379")
	t.Setenv("FOLIO_REDIS_PASSWORD_REQUIRED", "true")
	t.Setenv("FOLIO_REDIS_PASSWORD", "")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Load() should have panicked")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "FOLIO_REDIS_PASSWORD") {
			t.Errorf("panic = %v, want mention of FOLIO_REDIS_PASSWORD", r)
		}
	}()

	Load()
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{RevealThreshold: 0.12, ScrollThreshold: 50, ReloadInterval: time.Hour}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "reveal threshold zero", mutate: func(c *Config) { c.RevealThreshold = 0 }, wantErr: true},
		{name: "reveal threshold above one", mutate: func(c *Config) { c.RevealThreshold = 1.5 }, wantErr: true},
		{name: "reveal threshold exactly one", mutate: func(c *Config) { c.RevealThreshold = 1 }},
		{name: "negative scroll threshold", mutate: func(c *Config) { c.ScrollThreshold = -1 }, wantErr: true},
		{
			name: "content file without interval",
			mutate: func(c *Config) {
				c.ContentFile = "/etc/folio/content.yaml"
				c.ReloadInterval = 0
			},
			wantErr: true,
		},
		{
			name: "password required but empty",
			mutate: func(c *Config) {
				c.RedisAddr = "redis:6379"
				c.RedisPasswordRequired = true
			},
			wantErr: true,
		},
		{
			name: "password required only matters with redis",
			mutate: func(c *Config) {
				c.RedisPasswordRequired = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DURATION",
			value:    "5s",
			def:      1 * time.Second,
			expected: 5 * time.Second,
		},
		{
			name:     "invalid duration uses default",
			key:      "TEST_DURATION_INVALID",
			value:    "invalid",
			def:      10 * time.Second,
			expected: 10 * time.Second,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_DURATION_MISSING",
			value:    "",
			def:      15 * time.Second,
			expected: 15 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := mustDuration(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{name: "true value", key: "TEST_BOOL", value: "true", def: false, expected: true},
		{name: "false value", key: "TEST_BOOL_FALSE", value: "false", def: true, expected: false},
		{name: "invalid value uses default", key: "TEST_BOOL_INVALID", value: "invalid", def: true, expected: true},
		{name: "missing variable uses default", key: "TEST_BOOL_MISSING", value: "", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := mustBool(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetenvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "0.25")
	t.Setenv("TEST_FLOAT_INVALID", "quarter")

	if got := getenvFloat("TEST_FLOAT", 0.5); got != 0.25 {
		t.Errorf("getenvFloat() = %v, want 0.25", got)
	}
	if got := getenvFloat("TEST_FLOAT_INVALID", 0.5); got != 0.5 {
		t.Errorf("getenvFloat() invalid = %v, want default 0.5", got)
	}
	if got := getenvFloat("TEST_FLOAT_MISSING", 0.5); got != 0.5 {
		t.Errorf("getenvFloat() missing = %v, want default 0.5", got)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a, b ,c", []string{"a", "b", "c"}},
		{`"https://a.dev", 'https://b.dev'`, []string{"https://a.dev", "https://b.dev"}},
		{" , ,", []string{}},
	}

	for _, tt := range tests {
		got := splitAndTrim(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestNormalizeBase(t *testing.T) {
	tests := map[string]string{
		"/public":   "/public",
		"/public/":  "/public",
		"/":         "",
		"":          "",
		" /static ": "/static",

		"https://cdn.example.com/folio/": "https://cdn.example.com/folio",
	}
	for in, want := range tests {
		if got := normalizeBase(in); got != want {
			t.Errorf("normalizeBase(%q) = %q, want %q", in, got, want)
		}
	}
}
