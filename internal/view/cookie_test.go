package view

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

func TestCookieStoreGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: domain.ThemeKey, Value: "true"})

	s := NewCookieStore(nil, req)
	if v, ok := s.Get(domain.ThemeKey); !ok || v != "true" {
		t.Errorf("Get() = %q, %v, want true", v, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("Get(missing) ok = true")
	}
	if !domain.LoadTheme(s).Dark() {
		t.Error("LoadTheme() from cookie = light, want dark")
	}
}

func TestCookieStoreSet(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	rec := httptest.NewRecorder()

	theme := domain.LoadTheme(NewCookieStore(rec, req))
	if err := theme.Toggle(); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != "darkMode" || c.Value != "true" {
		t.Errorf("cookie = %s=%s, want darkMode=true", c.Name, c.Value)
	}
	if c.Path != "/" || c.MaxAge <= 0 || c.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie attributes = path %q maxAge %d sameSite %v", c.Path, c.MaxAge, c.SameSite)
	}
	if c.Secure {
		t.Error("cookie is Secure on a plain HTTP request")
	}
	if c.HttpOnly {
		t.Error("cookie is HttpOnly, scripts need to read it")
	}
}

func TestCookieStoreSecureOverTLS(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.TLS = &tls.ConnectionState{}
	rec := httptest.NewRecorder()

	if err := NewCookieStore(rec, req).Set(domain.ThemeKey, "false"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if c := rec.Result().Cookies(); len(c) != 1 || !c[0].Secure {
		t.Errorf("cookies = %+v, want one Secure cookie", c)
	}
}

func TestCookieStoreReadOnly(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	theme := domain.LoadTheme(NewCookieStore(nil, req))

	if err := theme.Toggle(); err == nil {
		t.Error("Toggle() on read-only store = nil, want error")
	}
	if !theme.Dark() {
		t.Error("flag did not flip when persisting failed")
	}
}
