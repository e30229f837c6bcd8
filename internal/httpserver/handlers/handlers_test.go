package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MrSnakeDoc/folio/internal/catalog"
	"github.com/MrSnakeDoc/folio/internal/content"
	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
	redisstore "github.com/MrSnakeDoc/folio/internal/store/redis"
	"github.com/MrSnakeDoc/folio/internal/view"
)

type fakeStore struct {
	mu       sync.Mutex
	pages    map[string][]byte
	stats    redisstore.Stats
	pingErr  error
	cacheErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{pages: map[string][]byte{}}
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) IncrementViews(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats.Views++
	return nil
}

func (f *fakeStore) IncrementToggles(_ context.Context, dark bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if dark {
		f.stats.TogglesDark++
	} else {
		f.stats.TogglesLight++
	}
	return nil
}

func (f *fakeStore) GetStats(context.Context) (redisstore.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats, nil
}

func (f *fakeStore) CachePage(_ context.Context, revision, theme string, html []byte, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cacheErr != nil {
		return f.cacheErr
	}
	f.pages[redisstore.PageKey(revision, theme)] = append([]byte(nil), html...)
	return nil
}

func (f *fakeStore) GetCachedPage(_ context.Context, revision, theme string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cacheErr != nil {
		return nil, f.cacheErr
	}
	return f.pages[redisstore.PageKey(revision, theme)], nil
}

func testDeps(t *testing.T) deps.Deps {
	t.Helper()

	r, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return deps.Deps{
		Logger:    logger.Nop(),
		StartTime: time.Now(),
		Version:   "test",
		Catalog:   catalog.NewHolder(content.Default(), "embedded"),
		Renderer:  r,
		View: view.Options{
			PublicURL:       "/public",
			AssetsURL:       view.AssetsPath,
			ScrollThreshold: 50,
			RevealThreshold: 0.12,
			CopyrightYear:   2026,
		},
	}
}

func TestPageLightByDefault(t *testing.T) {
	d := testDeps(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	Page(d)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "id=\"app\" class=\"app\"\n") {
		t.Error("page is not rendered in the light theme")
	}
}

func TestPageDarkFromCookie(t *testing.T) {
	d := testDeps(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: domain.ThemeKey, Value: "true"})
	rec := httptest.NewRecorder()
	Page(d)(rec, req)

	if !strings.Contains(rec.Body.String(), `id="app" class="app dark"`) {
		t.Error("page is not rendered in the dark theme")
	}
}

func TestPageUsesCache(t *testing.T) {
	d := testDeps(t)
	store := newFakeStore()
	d.Store = store

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		Page(d)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}

	key := redisstore.PageKey(d.Catalog.Revision(), "light")
	if _, ok := store.pages[key]; !ok {
		t.Errorf("page not cached under %q", key)
	}
	if store.stats.Views != 2 {
		t.Errorf("views = %d, want 2", store.stats.Views)
	}

	// A cached body is served as-is.
	store.pages[key] = []byte("cached")
	rec := httptest.NewRecorder()
	Page(d)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Body.String() != "cached" {
		t.Errorf("body = %q, want cached copy", rec.Body.String())
	}
}

func TestPageCacheFailureStillRenders(t *testing.T) {
	d := testDeps(t)
	store := newFakeStore()
	store.cacheErr = errors.New("redis down")
	d.Store = store

	rec := httptest.NewRecorder()
	Page(d)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `id="projects"`) {
		t.Error("page body missing")
	}
}

func TestThemeToggle(t *testing.T) {
	tests := []struct {
		name       string
		cookie     string
		wantCookie string
	}{
		{"no preference becomes dark", "", "true"},
		{"dark becomes light", "true", "false"},
		{"light becomes dark", "false", "true"},
		{"garbage reads as light", "yes", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDeps(t)
			store := newFakeStore()
			d.Store = store

			req := httptest.NewRequest(http.MethodPost, "/theme", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: domain.ThemeKey, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			Theme(d)(rec, req)

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want 303", rec.Code)
			}
			if loc := rec.Header().Get("Location"); loc != "/#home" {
				t.Errorf("Location = %q, want /#home", loc)
			}
			cookies := rec.Result().Cookies()
			if len(cookies) != 1 || cookies[0].Value != tt.wantCookie {
				t.Fatalf("cookies = %+v, want darkMode=%s", cookies, tt.wantCookie)
			}

			toggles := store.stats.TogglesDark + store.stats.TogglesLight
			if toggles != 1 {
				t.Errorf("toggles counted = %d, want 1", toggles)
			}
		})
	}
}

func TestRedirectTarget(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{"", "/#home"},
		{"http://example.com/", "/"},
		{"http://example.com/?lang=en#about", "/?lang=en"},
		{"http://evil.test/", "/#home"},
		{"http://example.com//evil.test/", "/#home"},
		{"::not a url", "/#home"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/theme", nil)
		if tt.referer != "" {
			req.Header.Set("Referer", tt.referer)
		}
		if got := redirectTarget(req); got != tt.want {
			t.Errorf("redirectTarget(%q) = %q, want %q", tt.referer, got, tt.want)
		}
	}
}

func TestCatalogJSON(t *testing.T) {
	d := testDeps(t)

	rec := httptest.NewRecorder()
	Catalog(d)(rec, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got domain.Catalog
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Revision != d.Catalog.Revision() || len(got.Projects) != 3 {
		t.Errorf("catalog = revision %q, %d projects", got.Revision, len(got.Projects))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	req.Header.Set("If-None-Match", rec.Header().Get("ETag"))
	rec = httptest.NewRecorder()
	Catalog(d)(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Errorf("conditional status = %d, want 304", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	d := testDeps(t)

	rec := httptest.NewRecorder()
	Healthz(d)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var got healthzResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "ok" || got.Version != "test" || got.Revision != d.Catalog.Revision() {
		t.Errorf("healthz = %+v", got)
	}
}

func TestReadyz(t *testing.T) {
	d := testDeps(t)

	rec := httptest.NewRecorder()
	Readyz(d)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	d.Renderer = nil
	rec = httptest.NewRecorder()
	Readyz(d)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status without renderer = %d, want 503", rec.Code)
	}
}

func TestInfra(t *testing.T) {
	tests := []struct {
		name      string
		store     *fakeStore
		wantMode  string
		wantRedis string
	}{
		{"redis disabled", nil, "direct", "disabled"},
		{"redis down", &fakeStore{pingErr: errors.New("refused")}, "direct", "degraded"},
		{"redis up", newFakeStore(), "cached", "optimal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDeps(t)
			if tt.store != nil {
				d.Store = tt.store
			}

			rec := httptest.NewRecorder()
			Infra(d)(rec, httptest.NewRequest(http.MethodGet, "/infra", nil))

			var got infraResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.ServingMode != tt.wantMode {
				t.Errorf("serving_mode = %q, want %q", got.ServingMode, tt.wantMode)
			}
			if got.Components["redis"].Mode != tt.wantRedis {
				t.Errorf("redis mode = %q, want %q", got.Components["redis"].Mode, tt.wantRedis)
			}
			cat := got.Components["catalog"]
			if !cat.OK || cat.ProjectsLoaded == nil || *cat.ProjectsLoaded != 3 || cat.Source != "embedded" {
				t.Errorf("catalog component = %+v", cat)
			}
			if cat.ProjectsLive == nil || *cat.ProjectsLive != 1 {
				t.Errorf("catalog projects_live = %v, want 1", cat.ProjectsLive)
			}
		})
	}
}

func TestReload(t *testing.T) {
	d := testDeps(t)

	rec := httptest.NewRecorder()
	Reload(d)(rec, httptest.NewRequest(http.MethodPost, "/reload", nil))
	if rec.Code != http.StatusConflict {
		t.Errorf("status without content file = %d, want 409", rec.Code)
	}

	d.ReloadTrigger = make(chan struct{}, 1)

	rec = httptest.NewRecorder()
	Reload(d)(rec, httptest.NewRequest(http.MethodPost, "/reload", nil))
	if rec.Code != http.StatusAccepted {
		t.Errorf("first trigger status = %d, want 202", rec.Code)
	}

	rec = httptest.NewRecorder()
	Reload(d)(rec, httptest.NewRequest(http.MethodPost, "/reload", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("pending trigger status = %d, want 429", rec.Code)
	}
}
