package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"trenchsniffer.io/web/internal/anchors"
	"trenchsniffer.io/web/internal/config"
	"trenchsniffer.io/web/internal/handlers"
)

// newTestApp builds the app against the repository templates and assets.
func newTestApp(t *testing.T) *app {
	t.Helper()
	cfg, err := config.Load(config.WithoutSystemEnv(), config.WithEnvFiles())
	require.NoError(t, err)
	cfg.Paths.Templates = "../../templates"
	cfg.Paths.Public = "../../public"

	a, err := newApp(cfg, zaptest.NewLogger(t), prometheus.NewRegistry())
	require.NoError(t, err)
	a.decor = func() handlers.Decor { return handlers.SeededDecor(1) }
	return a
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestApp(t).routes()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func parseDoc(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestHealthzOK(t *testing.T) {
	rec := get(t, newTestRouter(t), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", strings.TrimSpace(rec.Body.String()))
}

func TestHomeRendersSections(t *testing.T) {
	rec := get(t, newTestRouter(t), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc := parseDoc(t, rec.Body.String())
	require.Equal(t, 1, doc.Find("section#hero[data-parallax-root]").Length())
	require.Equal(t, 1, doc.Find("[data-parallax-grid]").Length())
	require.Equal(t, 1, doc.Find("section#features").Length())
	require.Equal(t, 1, doc.Find("section#roadmap").Length())

	var titles []string
	doc.Find("[data-feature-card] h3").Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, strings.TrimSpace(s.Text()))
	})
	require.Equal(t, []string{"AI Analysis", "Smart Tracking", "Neural Networks", "Live Monitoring"}, titles)

	var indicators, sides []string
	doc.Find("[data-milestone]").Each(func(_ int, s *goquery.Selection) {
		indicators = append(indicators, strings.TrimSpace(s.Find("[data-indicator]").Text()))
		side, _ := s.Attr("data-side")
		sides = append(sides, side)
	})
	require.Equal(t, []string{"✓", "2", "3"}, indicators)
	require.Equal(t, []string{"left", "right", "left"}, sides)

	var hrefs []string
	doc.Find("[data-nav-link]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		hrefs = append(hrefs, href)
	})
	require.Equal(t, []string{"#features", "#roadmap"}, hrefs)
	require.Equal(t, 2, doc.Find("#mobile-menu [data-mobile-nav-link]").Length())

	toggle := doc.Find("[data-menu-toggle]")
	require.Equal(t, "false", toggle.AttrOr("aria-expanded", ""))
	require.Equal(t, "bars", toggle.AttrOr("data-icon", ""))
}

func TestExternalLinksOpenInNewTab(t *testing.T) {
	rec := get(t, newTestRouter(t), "/")
	doc := parseDoc(t, rec.Body.String())

	external := doc.Find(`a[href^="http"]`)
	require.Greater(t, external.Length(), 0)
	external.Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		require.Equal(t, "_blank", s.AttrOr("target", ""), href)
		require.Equal(t, "noopener noreferrer", s.AttrOr("rel", ""), href)
	})
}

func TestHomeAnchorsResolve(t *testing.T) {
	rec := get(t, newTestRouter(t), "/")
	rep, err := anchors.Audit(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	require.NoError(t, rep.Err())
	require.Contains(t, rep.Links, "#features")
	require.Contains(t, rep.Links, "#roadmap")
}

func TestNotFoundUsesLayout(t *testing.T) {
	rec := get(t, newTestRouter(t), "/does-not-exist")
	require.Equal(t, http.StatusNotFound, rec.Code)
	doc := parseDoc(t, rec.Body.String())
	require.Equal(t, "noindex", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
	require.Equal(t, 1, doc.Find("[data-menu-toggle]").Length())

	rep, err := anchors.Audit(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	require.NoError(t, rep.Err())

	require.Zero(t, doc.Find("[data-nav-link], [data-mobile-nav-link]").Length())
	var hrefs []string
	doc.Find(".site-nav__links a").Each(func(_ int, s *goquery.Selection) {
		hrefs = append(hrefs, s.AttrOr("href", ""))
	})
	require.Equal(t, []string{"/#features", "/#roadmap"}, hrefs)
}

func TestAuditCoversEveryPage(t *testing.T) {
	require.NoError(t, newTestApp(t).auditAnchors())
}

func TestDevFlagReachesClient(t *testing.T) {
	a := newTestApp(t)
	doc := parseDoc(t, get(t, a.routes(), "/").Body.String())
	_, dev := doc.Find("body").Attr("data-dev")
	require.False(t, dev)

	a.opts.Dev = true
	doc = parseDoc(t, get(t, a.routes(), "/").Body.String())
	_, dev = doc.Find("body").Attr("data-dev")
	require.True(t, dev)
}

func TestStaticRoutes(t *testing.T) {
	r := newTestRouter(t)

	rec := get(t, r, "/logo.png")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	rec = get(t, r, "/assets/motion.css")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "@keyframes")

	rec = get(t, r, "/assets/css/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)

	rec = get(t, r, "/")
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestMetricsCountRenders(t *testing.T) {
	r := newTestRouter(t)
	get(t, r, "/")
	get(t, r, "/")

	rec := get(t, r, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `trench_web_page_renders_total{page="home"} 2`)
	require.Contains(t, body, `trench_web_http_requests_total{method="GET",route="/",status="200"} 2`)
}

func TestExportWritesSite(t *testing.T) {
	a := newTestApp(t)
	out := t.TempDir()
	require.NoError(t, a.export(out))

	for _, name := range []string{"index.html", "404.html", "logo.png", "assets/motion.css", "assets/css/site.css", "assets/js/boot.js"} {
		_, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err, name)
	}

	first, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	rep, err := anchors.Audit(bytes.NewReader(first))
	require.NoError(t, err)
	require.NoError(t, rep.Err())

	// A second export into the same directory is identical.
	require.NoError(t, a.export(out))
	second, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	f := &flags{addr: ":9999", templates: "tpl", dev: true}
	cfg, err := loadConfig(f, config.WithoutSystemEnv(), config.WithEnvFiles(), config.WithEnvMap(map[string]string{"PORT": "7000"}))
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.Server.Addr)
	require.Equal(t, "tpl", cfg.Paths.Templates)
	require.Equal(t, "public", cfg.Paths.Public)
	require.True(t, cfg.Dev)
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	require.True(t, strings.HasPrefix(out.String(), "trench-web "))
}
