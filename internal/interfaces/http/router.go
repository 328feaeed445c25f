package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/bodega-api/internal/application/auth"
	"github.com/puntoventa/bodega-api/internal/application/inventory"
	"github.com/puntoventa/bodega-api/internal/application/usecase"
	"github.com/puntoventa/bodega-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC     *inventory.StockUseCase
	TransferUC  *inventory.TransferUseCase
	QueryUC     *inventory.QueryUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	OpeningUC   *usecase.OpeningUseCase
	ReportUC    *usecase.ReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	// Mutaciones de catálogo y bodegas: solo admin. Lecturas: cualquier rol.
	adminOnly := RequireRole(entity.RoleAdmin)
	// Movimientos de stock: admin y bodeguero.
	stockRoles := RequireRole(entity.RoleAdmin, entity.RoleWarehouse)
	// Caja y clientes: admin y ventas.
	salesRoles := RequireRole(entity.RoleAdmin, entity.RoleSales)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.QueryUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	warehouses.Post("/", adminOnly, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", adminOnly, warehouseHandler.Update)
	warehouses.Delete("/:id", adminOnly, warehouseHandler.Delete)
	warehouses.Get("/:id/stock", warehouseHandler.GetStock)
	warehouses.Get("/:id/stock/export", stockRoles, reportHandler.ExportStock)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Inventory (entradas, salidas, traslados y libro)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.QueryUC)
	transferHandler := NewTransferHandler(deps.TransferUC, deps.QueryUC)
	invGroup.Post("/in", stockRoles, inventoryHandler.AddStock)
	invGroup.Post("/out", stockRoles, inventoryHandler.RemoveStock)
	invGroup.Post("/transfer", stockRoles, transferHandler.Create)
	invGroup.Get("/movements", inventoryHandler.GetMovements)

	// Transfers (lado de lectura)
	transfers := protected.Group("/transfers")
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)

	// Customers
	customers := protected.Group("/customers", salesRoles)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Openings (caja)
	openings := protected.Group("/openings", salesRoles)
	openingHandler := NewOpeningHandler(deps.OpeningUC)
	openings.Post("/", openingHandler.Create)
	openings.Get("/", openingHandler.List)
	openings.Get("/current", openingHandler.GetCurrent)
	openings.Get("/:id", openingHandler.GetByID)
	openings.Put("/:id/close", openingHandler.Close)
	openings.Post("/:id/cash-movements", openingHandler.CreateCashMovement)
	openings.Get("/:id/cash-movements", openingHandler.ListCashMovements)
	openings.Get("/:id/summary", openingHandler.GetSummary)

	// Reports
	reports := protected.Group("/reports", stockRoles)
	reports.Get("/movements-summary", reportHandler.MovementsSummary)
}
