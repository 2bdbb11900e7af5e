package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/almacen"
	"github.com/tu-usuario/taller-api/internal/application/auth"
	"github.com/tu-usuario/taller-api/internal/application/ingest"
	"github.com/tu-usuario/taller-api/internal/application/reports"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	VehicleUC       *usecase.VehicleUseCase
	PartUC          *usecase.PartUseCase
	ServiceOrderUC  *usecase.ServiceOrderUseCase
	PartRequestUC   *usecase.PartRequestUseCase
	PurchaseOrderUC *usecase.PurchaseOrderUseCase
	SupplierUC      *usecase.SupplierUseCase
	ReceiveUC       *almacen.ReceiveUseCase
	IssueUC         *almacen.IssueUseCase
	KardexUC        *almacen.KardexUseCase
	ReportsUC       *reports.UseCase
	PDFGenerator    reports.InventoryPDFGenerator
	Importer        *ingest.Importer
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Padrón vehicular (cualquier usuario autenticado)
	vehicles := protected.Group("/vehiculos")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)

	// Catálogo de refacciones (cualquier usuario autenticado)
	parts := protected.Group("/refacciones")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Post("/", partHandler.Create)
	parts.Get("/", partHandler.List)
	parts.Get("/:id", partHandler.GetByID)

	// Órdenes de servicio (cualquier usuario autenticado)
	serviceOrders := protected.Group("/ordenes_servicio")
	serviceOrderHandler := NewServiceOrderHandler(deps.ServiceOrderUC)
	serviceOrders.Post("/", serviceOrderHandler.Create)
	serviceOrders.Get("/", serviceOrderHandler.List)
	serviceOrders.Get("/:id", serviceOrderHandler.GetByID)

	// Solicitudes de refacciones (mecánicos)
	requests := protected.Group("/solicitudes", RequireRole(entity.RoleMecanico, entity.RoleAdmin))
	partRequestHandler := NewPartRequestHandler(deps.PartRequestUC)
	requests.Post("/", partRequestHandler.Create)
	requests.Get("/", partRequestHandler.List)

	// Órdenes de compra y proveedores (compras)
	purchases := protected.Group("/ordenes_compra", RequireRole(entity.RoleCompras, entity.RoleAdmin))
	purchaseOrderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC, deps.Importer)
	purchases.Post("/", purchaseOrderHandler.Create)
	purchases.Get("/", purchaseOrderHandler.List)
	purchases.Post("/importar", purchaseOrderHandler.Import)
	purchases.Get("/:id", purchaseOrderHandler.GetByID)

	suppliers := protected.Group("/proveedores", RequireRole(entity.RoleCompras, entity.RoleAdmin))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Almacén: recepciones, salidas, kardex y existencias
	receipts := protected.Group("/recepciones", RequireRole(entity.RoleAlmacen, entity.RoleAdmin))
	receiptHandler := NewReceiptHandler(deps.ReceiveUC)
	receipts.Post("/", receiptHandler.Create)

	issues := protected.Group("/salidas", RequireRole(entity.RoleAlmacen, entity.RoleAdmin))
	issueHandler := NewIssueHandler(deps.IssueUC)
	issues.Post("/", issueHandler.Create)

	inventoryHandler := NewInventoryHandler(deps.KardexUC)
	kardex := protected.Group("/kardex", RequireRole(entity.RoleAlmacen, entity.RoleAdmin))
	kardex.Get("/:id", inventoryHandler.Kardex)
	inventory := protected.Group("/inventario", RequireRole(entity.RoleAlmacen, entity.RoleAdmin))
	inventory.Get("/:id", inventoryHandler.Stock)

	// Reportes y dashboard (auditoría)
	reportHandler := NewReportHandler(deps.ReportsUC, deps.PDFGenerator)
	reportGroup := protected.Group("/reportes", RequireRole(entity.RoleAuditor, entity.RoleAdmin))
	reportGroup.Get("/inventario", reportHandler.Inventory)
	reportGroup.Get("/inventario/pdf", reportHandler.InventoryPDF)
	reportGroup.Get("/diferencial/:id", reportHandler.Differential)
	reportGroup.Get("/anomalias_precio", reportHandler.PriceAnomalies)
	reportGroup.Get("/costo_por_vehiculo", reportHandler.CostByVehicle)
	reportGroup.Get("/mas_usadas", reportHandler.UsageRanking)
	reportGroup.Get("/bajo_inventario", reportHandler.LowStock)
	reportGroup.Get("/consumo/:id", reportHandler.Consumption)
	reportGroup.Get("/compras_proveedor", reportHandler.PurchasesBySupplier)

	dashboard := protected.Group("/dashboard", RequireRole(entity.RoleAuditor, entity.RoleAdmin))
	dashboard.Get("/", reportHandler.Dashboard)
}
