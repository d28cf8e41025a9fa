package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"inquiryapi/docs"
	"inquiryapi/internal/config"
	"inquiryapi/internal/database"
	"inquiryapi/internal/database/schema"
	handlers "inquiryapi/internal/http/handler"
	"inquiryapi/internal/http/middleware"
	"inquiryapi/internal/logger"
	"inquiryapi/internal/otel"
	"inquiryapi/internal/repository/postgres"
	"inquiryapi/internal/service"
	"inquiryapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Inquiry API
// @version 1.0
// @description Program search inquiries submitted by prospective students.
// @BasePath /
func main() {
	cfg := config.Load()

	loc := logger.LoadLocation(cfg.Log.Timezone)
	log := logger.Configure(logger.Config{
		Level:    cfg.Log.Level,
		Pretty:   cfg.Log.Pretty,
		Location: loc,
	})

	if err := run(cfg, log, loc); err != nil {
		log.Fatal().Err(err).Msg("server_exit")
	}
}

func run(cfg *config.AppConfig, log zerolog.Logger, loc *time.Location) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}

	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoCreateSchema {
		if err := schema.EnsureCreated(ctx, db, log, cfg.Database.Host); err != nil {
			return err
		}
	}

	// Exports stay disabled (503) until object storage is configured.
	var store storage.Storage
	if cfg.MinIO.Endpoint != "" {
		store, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
	} else {
		log.Warn().Msg("export_storage_disabled")
	}

	repo := postgres.NewInquiryPostgres(db)
	svc := service.NewInquiryService(repo, store, time.Duration(cfg.ExportURLExpiry)*time.Second)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, db, svc)
	handlers.RegisterMetrics(app, reg)

	docs.SwaggerInfo.Host = cfg.AppHost
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}
		docs.SwaggerInfo.Schemes = []string{scheme}
		return swagger.HandlerDefault(c)
	})

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ":"+cfg.Port).Msg("server_listening")
		serverErrors <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown_signal_received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	log.Info().Msg("server_stopped")
	return errors.Join(errs...)
}
