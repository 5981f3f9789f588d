package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"butuhkidul/internal/common/pagination"
	"butuhkidul/internal/config"
	"butuhkidul/internal/infra/probe"
	"butuhkidul/internal/infra/villageapi"
	"butuhkidul/internal/observability/logging"
	"butuhkidul/internal/observability/tracing"
	pageUC "butuhkidul/internal/usecase/page"
	"butuhkidul/internal/utils/markdown"

	hhttp "butuhkidul/internal/handler/http"
	"butuhkidul/internal/handler/http/middleware"
	hpage "butuhkidul/internal/handler/http/page"
	"butuhkidul/internal/handler/http/requestid"
)

func main() {
	loadDotEnv()
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing, err := tracing.Setup(cfg.App.TraceSampleRatio)
	if err != nil {
		logger.Error("failed to set up tracing", slog.Any("error", err))
		os.Exit(1)
	}

	components := setupServer(logger, cfg)
	if err := components.Probe.Start(cfg.App.Probe.Schedule); err != nil {
		logger.Error("failed to start upstream probe", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(logger, cfg.App, components)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("tracer shutdown failed", slog.Any("error", err))
	}
}

// loadDotEnv reads .env when present. A missing file is normal in
// containers where the environment is set directly.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", slog.Any("error", err))
	}
}

// appConfig gathers every configuration source read at startup.
type appConfig struct {
	App        *config.AppConfig
	API        villageapi.Config
	Site       *config.SiteConfig
	Proxy      *middleware.TrustedProxyConfig
	Pagination pagination.Config
}

func loadConfig() (*appConfig, error) {
	app, err := config.LoadAppConfig()
	if err != nil {
		return nil, err
	}
	api, err := villageapi.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	site, err := config.LoadSiteConfig(app.SiteConfigPath)
	if err != nil {
		return nil, err
	}
	proxy, err := middleware.LoadTrustedProxyConfig()
	if err != nil {
		return nil, err
	}
	pager, err := pagination.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	return &appConfig{
		App:        app,
		API:        api,
		Site:       site,
		Proxy:      proxy,
		Pagination: pager,
	}, nil
}

// ServerComponents holds what runServer starts and stops.
type ServerComponents struct {
	Handler http.Handler
	Probe   *probe.Probe
	Limiter *middleware.IPRateLimiter
}

func setupServer(logger *slog.Logger, cfg *appConfig) *ServerComponents {
	client := villageapi.New(cfg.API, nil, logger)
	villages := &villageapi.VillagesAPI{Client: client}

	svc := &pageUC.Service{
		VillageRepo:    villages,
		ArticleRepo:    &villageapi.ArticlesAPI{Client: client},
		UnitRepo:       &villageapi.UnitsAPI{Client: client},
		PopulationRepo: &villageapi.PopulationAPI{Client: client},
		Site:           cfg.Site.Site,
		Pagination:     cfg.Pagination,
		Renderer:       markdown.NewRenderer(logger),
		Logger:         logger,
	}

	upstream := probe.New(villages, cfg.App.Probe.Timeout, logger)

	var limiter *middleware.IPRateLimiter
	if cfg.App.RateLimit.Enabled {
		var extractor middleware.IPExtractor = &middleware.RemoteAddrExtractor{}
		if cfg.Proxy.Enabled {
			extractor = middleware.NewTrustedProxyExtractor(*cfg.Proxy)
			logger.Info("rate limiting: trusted proxy mode enabled",
				slog.Int("trusted_proxies_count", len(cfg.Proxy.AllowedCIDRs)))
		} else {
			logger.Info("rate limiting: using RemoteAddr (proxy headers ignored)")
		}
		limiter = middleware.NewIPRateLimiter(cfg.App.RateLimit.RPS, cfg.App.RateLimit.Burst, extractor)
		logger.Info("rate limiting initialized",
			slog.Float64("rps", cfg.App.RateLimit.RPS),
			slog.Int("burst", cfg.App.RateLimit.Burst))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	handler := newHandler(logger, handlerDeps{
		Loader:         svc,
		Upstream:       upstream,
		Limiter:        limiter,
		Pagination:     cfg.Pagination,
		Version:        cfg.App.Version,
		RequestTimeout: cfg.App.RequestTimeout,
	})

	return &ServerComponents{Handler: handler, Probe: upstream, Limiter: limiter}
}

type handlerDeps struct {
	Loader         hpage.Loader
	Upstream       hhttp.UpstreamChecker
	Limiter        *middleware.IPRateLimiter
	Pagination     pagination.Config
	Version        string
	RequestTimeout time.Duration
}

// newHandler builds the routes and wraps them in the middleware chain,
// outermost first: request ID, security headers, rate limit, recover,
// logging, tracing, metrics, input validation, timeout.
func newHandler(logger *slog.Logger, deps handlerDeps) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /health", &hhttp.HealthHandler{Version: deps.Version, Upstream: deps.Upstream})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Upstream: deps.Upstream})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	hpage.Register(mux, deps.Loader, deps.Pagination)

	chain := []hhttp.Middleware{
		requestid.Middleware,
		hhttp.SecurityHeaders,
	}
	if deps.Limiter != nil {
		chain = append(chain, deps.Limiter.Middleware)
	}
	chain = append(chain,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		tracing.Middleware,
		hhttp.MetricsMiddleware,
		hhttp.InputValidation(),
		hhttp.Timeout(deps.RequestTimeout),
	)
	return hhttp.Chain(mux, chain...)
}

func runServer(logger *slog.Logger, cfg *config.AppConfig, components *ServerComponents) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if components.Limiter != nil {
		go hhttp.StartRateLimitCleanup(ctx, components.Limiter, cfg.RateLimit.CleanupInterval, cfg.RateLimit.CleanupInterval)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if err := components.Probe.Stop(shutdownCtx); err != nil {
		logger.Error("probe shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
