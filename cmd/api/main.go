package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/hibiken/asynq"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"questshare/docs"
	"questshare/internal/config"
	"questshare/internal/database"
	"questshare/internal/database/migration"
	"questshare/internal/genai"
	handlers "questshare/internal/http/handler"
	"questshare/internal/http/middleware"
	"questshare/internal/otel"
	"questshare/internal/queue"
	"questshare/internal/repository/postgres"
	"questshare/internal/service"
	"questshare/internal/storage"
)

// @title QuestShare API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.Local

	ctx := context.Background()

	// Initialize OpenTelemetry tracing (degrades to noop when disabled)
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run idempotent schema migrations
	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Task queue client for deferred blob cleanup
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer asynqClient.Close()

	// Study-guide generation client
	genClient, err := genai.NewClient(cfg.GenAI)
	if err != nil {
		log.Fatalf("failed to initialize generation client: %v", err)
	}

	// Initialize repositories and services
	materialRepo := postgres.NewMaterialPostgres(db)
	accountRepo := postgres.NewAccountPostgres(db)

	accountSvc := service.NewAccountService(accountRepo, cfg.AdminEmail)
	materialSvc := service.NewMaterialService(objStore, materialRepo, queue.NewEnqueuer(asynqClient))
	moderationSvc := service.NewModerationService(materialRepo)
	guideSvc := service.NewStudyGuideService(genClient)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    service.MaxFileSize + 1024*1024,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// Distributed tracing for incoming requests
	app.Use(otelfiber.Middleware())

	// Prometheus request metrics and the /metrics scrape endpoint
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector())
	promMw, err := middleware.NewPrometheusMiddleware(promRegistry)
	if err != nil {
		log.Fatalf("failed to initialize prometheus middleware: %v", err)
	}
	app.Use(promMw.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, accountSvc, materialSvc, moderationSvc, guideSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
