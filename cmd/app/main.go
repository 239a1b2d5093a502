package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"restaurant/api"
	"restaurant/cmd"
	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"

	"github.com/go-faster/errors"
	"github.com/labstack/gommon/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := cmd.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		log.Fatalf("restaurant api: %v", err)
	}
}

func run(ctx context.Context, cfg cmd.Config, logger *slog.Logger) error {
	gormDB, err := openDatabase(cfg.DB)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return errors.Wrap(err, "get sql db")
	}
	defer func() { _ = sqlDB.Close() }()

	if err = postgres.Migrate(gormDB); err != nil {
		return errors.Wrap(err, "migrate")
	}

	app := cmd.NewCompositionRoot(cfg, gormDB, logger)

	routerCfg := httpin.RouterConfig{
		AllowOrigins: cfg.CORS.Origins,
		RateLimit:    cfg.RateLimit.RPS,
		RateBurst:    cfg.RateLimit.Burst,
	}
	if cfg.OpenAPIValidation {
		doc, loadErr := api.Load(ctx)
		if loadErr != nil {
			return errors.Wrap(loadErr, "load openapi document")
		}
		routerCfg.Doc = doc
	}

	e, err := httpin.NewRouter(routerCfg, logger, httpin.NewServer(app.HTTPHandlers(), sqlDB))
	if err != nil {
		return errors.Wrap(err, "build router")
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return errors.Wrap(err, "start jobs")
	}
	defer jobManager.StopAll()

	return serve(ctx, cfg.HTTP, logger, otelhttp.NewHandler(e, "restaurant-api"))
}

func openDatabase(cfg cmd.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	return db, nil
}

// serve runs the HTTP server until ctx is cancelled and then drains in-flight
// requests for at most ShutdownTimeout.
func serve(ctx context.Context, cfg cmd.HTTPConfig, logger *slog.Logger, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "listen")
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
