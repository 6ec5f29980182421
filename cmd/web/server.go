package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trenchsniffer.io/web/internal/anchors"
	"trenchsniffer.io/web/internal/config"
	"trenchsniffer.io/web/internal/content"
	"trenchsniffer.io/web/internal/handlers"
	mw "trenchsniffer.io/web/internal/middleware"
	"trenchsniffer.io/web/internal/motion"
	"trenchsniffer.io/web/internal/observability"
	"trenchsniffer.io/web/internal/view"
)

const requestTimeout = 30 * time.Second

// app wires configuration, content and templates into the HTTP surface.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	metrics  *observability.Metrics
	site     *content.Site
	renderer *view.Renderer
	opts     handlers.Options
	decor    func() handlers.Decor
}

func newApp(cfg config.Config, logger *zap.Logger, reg *prometheus.Registry) (*app, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	site, err := content.Load(cfg.Paths.Content)
	if err != nil {
		return nil, err
	}
	renderer, err := view.New(cfg.Paths.Templates)
	if err != nil {
		return nil, err
	}
	a := &app{
		cfg:      cfg,
		logger:   logger,
		metrics:  observability.NewMetrics(reg),
		site:     site,
		renderer: renderer,
		opts: handlers.Options{
			SiteURL:      cfg.Site.URL,
			Analytics:    handlers.AnalyticsFromConfig(cfg.Analytics),
			ClientBundle: hasClientBundle(cfg.Paths.Public),
			Dev:          cfg.Dev,
		},
		decor: func() handlers.Decor { return handlers.NewDecor(nil) },
	}
	return a, nil
}

// hasClientBundle reports whether the WASM client and its loader were built into public.
func hasClientBundle(public string) bool {
	for _, name := range []string{"client.wasm", "wasm_exec.js"} {
		if _, err := os.Stat(filepath.Join(public, "assets", "js", name)); err != nil {
			return false
		}
	}
	return true
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(a.logger, a.metrics))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(mw.SecurityHeaders)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})
	r.Method(http.MethodGet, "/metrics", a.metrics.Handler())

	assetsDir := filepath.Join(a.cfg.Paths.Public, "assets")
	r.Get("/logo.png", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(assetsDir, "img", "logo.png"))
	})
	r.Method(http.MethodGet, "/assets/motion.css", mw.StaticBytes("text/css; charset=utf-8", []byte(motion.Stylesheet())))
	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(os.DirFS(assetsDir))))

	r.Get("/", a.homeHandler)
	r.NotFound(a.notFoundHandler)
	return r
}

func (a *app) homeHandler(w http.ResponseWriter, r *http.Request) {
	data := handlers.BuildHomeData(a.site, a.decor(), a.opts)
	if err := a.renderer.RenderHTTP(w, http.StatusOK, "home", data); err != nil {
		observability.FromContext(r.Context()).Error("render page", zap.String("page", "home"), zap.Error(err))
		return
	}
	a.metrics.RecordRender("home")
}

func (a *app) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	data := handlers.BuildNotFoundData(a.site, a.opts, r.URL.Path)
	if err := a.renderer.RenderHTTP(w, http.StatusNotFound, "404", data); err != nil {
		observability.FromContext(r.Context()).Error("render page", zap.String("page", "404"), zap.Error(err))
		return
	}
	a.metrics.RecordRender("404")
}

// renderHome renders the home page with a fixed decor seed.
func (a *app) renderHome(seed uint64) ([]byte, error) {
	var buf bytes.Buffer
	data := handlers.BuildHomeData(a.site, handlers.SeededDecor(seed), a.opts)
	if err := a.renderer.Render(&buf, "home", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderNotFound renders the 404 page as served for path.
func (a *app) renderNotFound(path string) ([]byte, error) {
	var buf bytes.Buffer
	if err := a.renderer.Render(&buf, "404", handlers.BuildNotFoundData(a.site, a.opts, path)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// auditAnchors checks that every in-page link on each page has a target.
func (a *app) auditAnchors() error {
	home, err := a.renderHome(0)
	if err != nil {
		return err
	}
	notFound, err := a.renderNotFound("/404.html")
	if err != nil {
		return err
	}
	for _, page := range [][]byte{home, notFound} {
		if err := auditPage(page); err != nil {
			return err
		}
	}
	return nil
}

func auditPage(page []byte) error {
	rep, err := anchors.Audit(bytes.NewReader(page))
	if err != nil {
		return err
	}
	return rep.Err()
}

func (a *app) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           a.routes(),
		ReadHeaderTimeout: a.cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
		IdleTimeout:       a.cfg.Server.IdleTimeout,
	}

	var watcher *view.Watcher
	if a.cfg.Dev {
		w, err := view.NewWatcher(a.renderer, a.cfg.Paths.Templates,
			view.WithLogger(a.logger),
			view.OnReload(func(err error) {
				if err == nil {
					a.metrics.RecordReload()
				}
			}),
		)
		if err != nil {
			return err
		}
		watcher = w
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("web listening",
			zap.String("addr", srv.Addr),
			zap.Bool("dev", a.cfg.Dev),
			zap.Bool("client_bundle", a.opts.ClientBundle),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if watcher != nil {
		g.Go(func() error { return watcher.Run(gctx) })
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("graceful shutdown failed", zap.Error(err))
			return err
		}
		a.logger.Info("web stopped")
		return nil
	})
	return g.Wait()
}

func newServeCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			logger, err := observability.NewLogger(cfg.LogLevel, cfg.Dev)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			a, err := newApp(cfg, logger, prometheus.NewRegistry())
			if err != nil {
				logger.Error("startup failed", zap.Error(err))
				return err
			}
			if err := a.auditAnchors(); err != nil {
				logger.Warn("anchor audit", zap.Error(err))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}
