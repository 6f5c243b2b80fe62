package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	appanalytics "github.com/jhoicas/dashboard-api/internal/application/analytics"
	"github.com/jhoicas/dashboard-api/internal/application/auth"
	"github.com/jhoicas/dashboard-api/internal/application/billing"
	"github.com/jhoicas/dashboard-api/internal/infrastructure/cache"
	"github.com/jhoicas/dashboard-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/dashboard-api/internal/interfaces/http"
	"github.com/jhoicas/dashboard-api/pkg/config"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

const pageCacheTTL = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// El pool se crea una sola vez acá y se inyecta en todos los repos: no hay
	// inicialización perezosa ni estado global compartido entre handlers.
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché de páginas: opcional. Sin REDIS_ADDR el caché es no-op.
	var pages *cache.Pages
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible; caché de páginas deshabilitado")
		} else {
			pages = cache.New(rdb, pageCacheTTL)
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	revenueRepo := postgres.NewRevenueRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, pages, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, pages, log)
	customerUC := billing.NewCustomerUseCase(customerRepo, pages, log)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, invoiceRepo, revenueRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InvoiceUC:   invoiceUC,
		CustomerUC:  customerUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
