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

	appanalytics "github.com/ecoshop/ecoshop-api/internal/application/analytics"
	"github.com/ecoshop/ecoshop-api/internal/application/auth"
	"github.com/ecoshop/ecoshop-api/internal/application/usecase"
	"github.com/ecoshop/ecoshop-api/internal/domain/storage"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/memstore"
	infrapdf "github.com/ecoshop/ecoshop-api/internal/infrastructure/pdf"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/postgres"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/records"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/redisstore"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/sqlitestore"
	httpRouter "github.com/ecoshop/ecoshop-api/internal/interfaces/http"
	"github.com/ecoshop/ecoshop-api/pkg/config"
	"github.com/ecoshop/ecoshop-api/pkg/logger"
)

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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var store storage.RecordStore
	switch cfg.Store.Driver {
	case config.StoreMemory:
		store = memstore.New()
	case config.StoreSQLite:
		s, err := sqlitestore.Open(cfg.Store.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir SQLite")
		}
		defer s.Close()
		store = s
	case config.StorePostgres:
		s, err := postgres.NewStore(ctx, cfg.Store.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer s.Close()
		store = s
	case config.StoreRedis:
		s, err := redisstore.New(cfg.Store.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer s.Close()
		store = s
	}

	productRepo := records.NewProductRepository(store)
	userRepo := records.NewUserRepository(store)
	orderRepo := records.NewOrderRepository(store)

	if cfg.App.SeedOnStart {
		if err := records.EnsureSeeded(ctx, productRepo, userRepo); err != nil {
			log.Fatal().Err(err).Msg("siembra inicial")
		}
		log.Info().Msg("catálogo y admin inicial verificados")
	}

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo, store, pdfGenerator)
	dashboardUC := appanalytics.NewDashboardUseCase(userRepo, productRepo, orderRepo)

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
		Title:    "EcoShop API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		OrderUC:     orderUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		Store:       store,
		Products:    productRepo,
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
