package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "dispatch/internal/app"
	"dispatch/internal/handlers/rest/bucket_toggle_post"
	"dispatch/internal/handlers/rest/buckets_get"
	"dispatch/internal/handlers/rest/cancel_confirm_post"
	"dispatch/internal/handlers/rest/cancel_delete"
	"dispatch/internal/handlers/rest/cancel_post"
	"dispatch/internal/handlers/rest/detail_get"
	"dispatch/internal/handlers/rest/healthcheck_head"
	"dispatch/internal/handlers/rest/logout_post"
	"dispatch/internal/handlers/rest/map_get"
	"dispatch/internal/handlers/rest/notification_delete"
	"dispatch/internal/handlers/rest/notifications_get"
	"dispatch/internal/handlers/rest/order_get"
	"dispatch/internal/handlers/rest/order_post"
	"dispatch/internal/handlers/rest/orders_get"
	"dispatch/internal/handlers/rest/selection_delete"
	"dispatch/internal/handlers/rest/selection_put"
	"dispatch/internal/handlers/rest/signin_post"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	metrics_system "dispatch/internal/pkg/metrics"
	"dispatch/internal/pkg/middlewares/graceful_shutdown"
	"dispatch/internal/pkg/middlewares/metrics"
	"dispatch/internal/pkg/middlewares/rate_limiter"
	"dispatch/internal/pkg/middlewares/session_gate"
	"dispatch/internal/pkg/middlewares/timeout"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/token_bucket"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	envLoaded, envErr := dotenv.Load()

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting dispatch dashboard")

	if envErr != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", envErr))
		return
	}
	if !envLoaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	if err := dotenv.ApplyFlags(os.Args[1:]); err != nil {
		mainLog.Error("parse flags", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background(), это часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	businessApp, err := application.InitializeApplication(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, businessApp),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil-канал при выключенном pprof, кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	// ctx уже отменён, фоновая очистка сессий завершает текущий проход
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.SessionStore)).Methods("HEAD")
	router.Handle("/signin", signin_post.New(log, app.ServiceSession)).Methods("POST")

	protected := router.NewRoute().Subrouter()
	protected.Use(session_gate.Middleware(log, app.ServiceSession))

	protected.Handle("/logout", logout_post.New(log, app.ServiceSession)).Methods("POST")

	protected.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	protected.Handle("/order", order_post.New(log, app.ServiceOrder)).Methods("POST")
	protected.Handle("/order/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	protected.Handle("/order/{id}/cancel", cancel_post.New(log, app.ServicePanel)).Methods("POST")
	protected.Handle("/order/{id}/cancel/confirm", cancel_confirm_post.New(log, app.ServicePanel)).Methods("POST")
	protected.Handle("/order/{id}/cancel", cancel_delete.New(log, app.ServicePanel)).Methods("DELETE")

	protected.Handle("/panel/buckets", buckets_get.New(log, app.ServicePanel)).Methods("GET")
	protected.Handle("/panel/buckets/{name}/toggle", bucket_toggle_post.New(log, app.ServicePanel)).Methods("POST")
	protected.Handle("/panel/selection", selection_put.New(log, app.ServicePanel)).Methods("PUT")
	protected.Handle("/panel/selection", selection_delete.New(log, app.ServicePanel)).Methods("DELETE")
	protected.Handle("/panel/detail", detail_get.New(log, app.ServiceDetail)).Methods("GET")

	protected.Handle("/map", map_get.New(log, app.ServiceMap)).Methods("GET")

	protected.Handle("/notifications", notifications_get.New(log, app.ServiceNotification)).Methods("GET")
	protected.Handle("/notifications/{id}", notification_delete.New(log, app.ServiceNotification)).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, app *application.Application) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.SessionStore)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
