package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-tracker/internal/application/auth"
	"github.com/jhoicas/pos-tracker/internal/application/inventory"
	"github.com/jhoicas/pos-tracker/internal/application/usecase"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BrandUC     *usecase.BrandUseCase
	ItemUC      *usecase.ItemUseCase
	Adjustments *inventory.AdjustmentUseCase
	Ledger      *inventory.LedgerUseCase
	Reports     *inventory.StockReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
	AppName     string
	// Ping verifica la base de datos para /health; nil omite el chequeo.
	Ping func(ctx context.Context) error
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps))

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/users", adminOnly, authHandler.CreateUser)

	// Brands: lectura para todo usuario autenticado, escritura solo admin
	brands := protected.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Get("/", brandHandler.List)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Post("/", adminOnly, brandHandler.Create)
	brands.Put("/:id", adminOnly, brandHandler.Update)

	// Items
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	adjustmentHandler := NewAdjustmentHandler(deps.Adjustments, deps.Ledger)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Post("/", adminOnly, itemHandler.Create)
	items.Put("/:id", adminOnly, itemHandler.Update)
	items.Post("/:id/activate", adminOnly, itemHandler.Activate)
	items.Post("/:id/deactivate", adminOnly, itemHandler.Deactivate)

	// Ajustes: cualquier usuario autenticado (el actor queda en el libro)
	items.Post("/:id/adjustments", adjustmentHandler.Apply)
	items.Get("/:id/adjustments", adjustmentHandler.ListByItem)
	protected.Get("/adjustments", adjustmentHandler.List)
	protected.Get("/adjustments/:id", adjustmentHandler.GetByID)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/valuation", reportHandler.Valuation)
	reports.Get("/stock.pdf", reportHandler.StockPDF)
}

func healthHandler(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.Ping != nil {
			if err := deps.Ping(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": deps.AppName, "database": "down"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	}
}
