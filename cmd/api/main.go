// @title           POS Tracker API
// @version         1.0
// @description     API de inventario para punto de venta de llantas y repuestos. Cada cambio de cantidad queda en el libro de ajustes.
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
// @description     Bearer <token JWT>
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/pos-tracker/docs"
	"github.com/jhoicas/pos-tracker/internal/application/auth"
	"github.com/jhoicas/pos-tracker/internal/application/inventory"
	"github.com/jhoicas/pos-tracker/internal/application/ports"
	"github.com/jhoicas/pos-tracker/internal/application/usecase"
	"github.com/jhoicas/pos-tracker/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/pos-tracker/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-tracker/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/pos-tracker/internal/interfaces/http"
	"github.com/jhoicas/pos-tracker/pkg/config"
	"github.com/jhoicas/pos-tracker/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché del catálogo: opcional, sin Redis las lecturas van directo a la base
	var catalogCache ports.CatalogCache = ports.NoopCache{}
	if cfg.Redis.Enabled() {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, caché deshabilitada")
		} else {
			defer client.Close()
			catalogCache = cache.NewRedisCatalogCache(client, cache.DefaultPrefix, cfg.Redis.TTL)
			log.Info().Dur("ttl", cfg.Redis.TTL).Msg("caché de catálogo en redis")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	adjRepo := postgres.NewInventoryAdjustmentRepository(pool)
	reportRepo := postgres.NewStockReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.Inventory.LockTimeout)

	adjustmentUC := inventory.NewAdjustmentUseCase(txRunner, catalogCache, inventory.Options{
		LockTimeout: cfg.Inventory.LockTimeout,
		MaxRetries:  cfg.Inventory.MaxRetries,
	})
	ledgerUC := inventory.NewLedgerUseCase(adjRepo, itemRepo)
	reportUC := inventory.NewStockReportUseCase(reportRepo, infrapdf.NewMarotoPDFGenerator(cfg.App.Name))
	brandUC := usecase.NewBrandUseCase(brandRepo, catalogCache)
	itemUC := usecase.NewItemUseCase(itemRepo, brandRepo, adjustmentUC, catalogCache)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	sched, err := scheduler.New(cfg.Scheduler.ReorderCron, reportUC, 30*time.Second)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}
	sched.Start()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	httpRouter.UseCommonMiddleware(app, httpRouter.SecurityConfig{
		AllowedOrigins: cfg.Security.AllowedOrigins,
		HSTSMaxAge:     cfg.Security.HSTSMaxAge,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		BrandUC:     brandUC,
		ItemUC:      itemUC,
		Adjustments: adjustmentUC,
		Ledger:      ledgerUC,
		Reports:     reportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
		AppName:     cfg.App.Name,
		Ping:        pool.Ping,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		return app.Listen(cfg.HTTP.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		sched.Stop(shutdownCtx)
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
	}
	log.Info().Msg("aplicación detenida")
}
