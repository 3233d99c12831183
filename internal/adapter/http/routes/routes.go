package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "marcenaria_site/docs" // swag generated
	"marcenaria_site/internal/adapter/http/handlers"
	"marcenaria_site/internal/adapter/http/middleware"
	"marcenaria_site/internal/adapter/http/views"
	"marcenaria_site/internal/config"
	"marcenaria_site/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathStatic  = "/static"
	PathMetrics = "/metrics"
	PathSwagger = "/swagger/*any"
)

// Run will start the server
func Run() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

// run owns every resource it opens so the deferred cleanup happens before Run exits.
func run() error {
	cfg, loader, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = appLog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(ctx, cfg, appLog)
	if err != nil {
		appLog.Error("failed to wire dependencies", logger.ErrorF(err))
		return fmt.Errorf("failed to wire dependencies: %w", err)
	}
	defer deps.Close()

	loader.WatchSite(func(site config.SiteConfig) {
		deps.Site.Set(site)
		appLog.Info("site content reloaded", logger.Int("gallery", len(site.Gallery)))
	}, func(err error) {
		appLog.Warn("site content reload failed", logger.ErrorF(err))
	})

	router, err := NewRouter(cfg, deps, appLog)
	if err != nil {
		appLog.Error("failed to build router", logger.ErrorF(err))
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
	}
	appLog.Info("server listening", logger.String("addr", srv.Addr), logger.String("environment", cfg.App.Environment))
	return serve(ctx, srv, cfg.Server.ShutdownTimeout, appLog)
}

// serve blocks until ctx is done or the listener fails, then shuts srv down.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, appLog *logger.Logger) error {
	listenErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err, ok := <-listenErr:
		if ok {
			appLog.Error("failed to startup the application", logger.ErrorF(err))
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	appLog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("graceful shutdown failed", logger.ErrorF(err))
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// NewRouter mounts the pages, the /v1 API and the ops endpoints.
func NewRouter(cfg *config.Config, deps *Dependencies, appLog *logger.Logger) (*gin.Engine, error) {
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	pageHandler := handlers.NewPageHandler(deps.Site, cfg.UI, deps.Estimates, deps.Contacts, deps.Analytics, appLog)
	setMiddlewares(router, cfg, appLog, pageHandler)

	router.Static(PathStatic, cfg.Server.StaticDir)
	router.GET(PathMetrics, gin.WrapH(promhttp.Handler()))

	// Swagger documentation endpoint
	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, handlers.NewEstimateHandler(deps.Estimates))
	addContactRoutes(v1, handlers.NewContactHandler(deps.Contacts))
	addAnalyticsRoutes(v1, handlers.NewAnalyticsHandler(deps.Analytics))

	addPageRoutes(router, pageHandler)
	router.NoRoute(pageHandler.NotFound)

	return router, nil
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, appLog *logger.Logger, pages *handlers.PageHandler) {
	router.Use(middleware.Recovery(appLog, pages.InternalError))
	router.Use(middleware.Session(cfg.Server.SecureCookies))
	router.Use(middleware.RequestLogger(appLog, PathStatic, PathMetrics))
}
