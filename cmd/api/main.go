package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cardapi/docs"
	"cardapi/internal/config"
	"cardapi/internal/database"
	"cardapi/internal/database/migration"
	handlers "cardapi/internal/http/handler"
	"cardapi/internal/http/middleware"
	"cardapi/internal/logger"
	"cardapi/internal/otel"
	"cardapi/internal/repository"
	"cardapi/internal/repository/postgres"
	"cardapi/internal/repository/sqlite"
	"cardapi/internal/service"
)

// @title Credit Card API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.Location())

	shutdownTracing, err := otel.Init(context.Background(), log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize tracing")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.WithError(err).WithField("driver", cfg.Database.Driver).Fatal("failed to connect to database")
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		// Migrations get their own handle; Run closes it when done.
		migrateDB, err := database.Open(cfg.Database)
		if err != nil {
			log.WithError(err).Fatal("failed to open migration connection")
		}
		if err := migration.Run(migrateDB, cfg.Database.Driver, log); err != nil {
			log.WithError(err).Fatal("failed to apply migrations")
		}
	}

	cardSvc := service.NewCreditCardService(newCreditCardRepository(cfg.Database.Driver, db), log)
	cardHandler := handlers.NewCreditCardHandler(cardSvc, cfg.AppName, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: handlers.ErrorHandler(),
	})

	metrics, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.WithError(err).Fatal("failed to register metrics")
	}

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(metrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, cardHandler)

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

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	log.WithField("addr", addr).Info("server starting")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Error("failed to start server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		log.WithError(err).Error("tracer shutdown failed")
	}
}

func newCreditCardRepository(driver string, db *sql.DB) repository.CreditCardRepository {
	if driver == config.DriverSQLite {
		return sqlite.NewCreditCardRepo(db)
	}
	return postgres.NewCreditCardPostgres(db)
}
