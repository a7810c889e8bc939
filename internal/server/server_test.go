package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/jonathan/resume-page/internal/server/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleContent = "../content/testdata/content.json"

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	if cfg.Content == "" {
		cfg.Content = sampleContent
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = &ratelimit.Config{Enabled: false}
	}
	cfg.Logger = zap.NewNop()
	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func get(t *testing.T, h http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex_RendersPage(t *testing.T) {
	s := newTestServer(t, Config{})
	rec := get(t, s.Handler(), "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, ColorSchemeHint, rec.Header().Get("Accept-CH"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "Jane Q. Doe", doc.Find("#full_name").Text())
	assert.Equal(t, "Jane Q. Doe", doc.Find("head title").Text())
	assert.Equal(t, 2, doc.Find("#experiences > div").Length())
	assert.False(t, doc.Find("html").HasClass("dark"))
}

func TestIndex_ColorSchemeHint(t *testing.T) {
	s := newTestServer(t, Config{})
	rec := get(t, s.Handler(), "/", map[string]string{ColorSchemeHint: `"dark"`})
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.True(t, doc.Find("html").HasClass("dark"))
}

func TestIndex_FallsBackToConfiguredScheme(t *testing.T) {
	s := newTestServer(t, Config{Dark: true})

	rec := get(t, s.Handler(), "/", nil)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.True(t, doc.Find("html").HasClass("dark"))

	rec = get(t, s.Handler(), "/", map[string]string{ColorSchemeHint: "light"})
	doc, err = goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.False(t, doc.Find("html").HasClass("dark"))
}

func TestIndex_RereadsContentOnEveryRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	write := func(first string) {
		data := `{"info": {"full_name": {"first_name": "` + first + `", "last_name": "Doe", "format": {"pattern": "f l", "case": "upper"}}, "contact": {}}}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	}

	write("ada")
	s := newTestServer(t, Config{Content: path})
	rec := get(t, s.Handler(), "/", nil)
	assert.Contains(t, rec.Body.String(), "ADA DOE")

	write("grace")
	rec = get(t, s.Handler(), "/", nil)
	assert.Contains(t, rec.Body.String(), "GRACE DOE")
}

func TestIndex_LoadFailures(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte(`{"info":`), 0o600))
	noInfo := filepath.Join(dir, "noinfo.json")
	require.NoError(t, os.WriteFile(noInfo, []byte(`{"experiences": []}`), 0o600))

	tests := []struct {
		name   string
		source string
		want   int
	}{
		{name: "missing file", source: filepath.Join(dir, "absent.json"), want: http.StatusBadGateway},
		{name: "malformed", source: malformed, want: http.StatusUnprocessableEntity},
		{name: "missing info", source: noInfo, want: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, Config{Content: tt.source})
			rec := get(t, s.Handler(), "/", nil)
			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `role="alert"`)
			assert.NotContains(t, rec.Body.String(), "full_name")
		})
	}
}

func TestNew_MissingTemplate(t *testing.T) {
	_, err := New(Config{Template: filepath.Join(t.TempDir(), "nope.html")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read template")
}

func TestContent_ServesRawDocument(t *testing.T) {
	s := newTestServer(t, Config{})
	rec := get(t, s.Handler(), "/content.json", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	want, err := os.ReadFile(sampleContent)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), rec.Body.String())
}

func TestContent_ReportsLoadError(t *testing.T) {
	s := newTestServer(t, Config{Content: filepath.Join(t.TempDir(), "absent.json")})
	rec := get(t, s.Handler(), "/content.json", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, Config{})
	rec := get(t, s.Handler(), "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestUnknownPath(t *testing.T) {
	s := newTestServer(t, Config{})
	rec := get(t, s.Handler(), "/admin", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := get(t, s.Handler(), "/health", nil)
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	rec = get(t, s.Handler(), "/health", map[string]string{RequestIDHeader: id})
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	rec = get(t, s.Handler(), "/health", map[string]string{RequestIDHeader: "not-a-uuid"})
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, Config{RateLimit: &ratelimit.Config{
		Enabled:         true,
		Limit:           2,
		Window:          time.Hour,
		Burst:           2,
		CleanupInterval: time.Hour,
		IdleTTL:         time.Hour,
		Unlimited:       map[string]bool{"/health": true},
	}})
	h := s.Handler()

	assert.Equal(t, http.StatusOK, get(t, h, "/content.json", nil).Code)
	assert.Equal(t, http.StatusOK, get(t, h, "/content.json", nil).Code)

	rec := get(t, h, "/content.json", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, get(t, h, "/health", nil).Code)
}

func TestPrefersDark(t *testing.T) {
	tests := []struct {
		hint     string
		fallback bool
		want     bool
	}{
		{hint: "dark", want: true},
		{hint: `"dark"`, want: true},
		{hint: "Light", fallback: true, want: false},
		{hint: "", fallback: true, want: true},
		{hint: "sepia", want: false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.hint != "" {
			req.Header.Set(ColorSchemeHint, tt.hint)
		}
		assert.Equal(t, tt.want, prefersDark(req, tt.fallback), "hint %q", tt.hint)
	}
}
