package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-pro/internal/application/catalog"
	"github.com/jhoicas/ventas-pro/internal/application/reports"
	"github.com/jhoicas/ventas-pro/internal/application/sales"
	"github.com/jhoicas/ventas-pro/internal/application/stock"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC     *stock.UseCase
	SalesUC     *sales.UseCase
	StatementUC *sales.StatementUseCase
	CatalogUC   *catalog.UseCase
	ReportsUC   *reports.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todo el back office viaja detrás del
// Bearer Token; el rol del token decide qué grupos son accesibles.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	superadmin := RequireRole(entity.RoleSuperadmin)
	anyRole := RequireRole(entity.RoleSuperadmin, entity.RoleAdmin)

	// Inventario (escrituras solo superadmin; lecturas para ambos roles)
	stockHandler := NewStockHandler(deps.StockUC)
	inventory := api.Group("/inventory")
	inventory.Post("/lots", superadmin, stockHandler.AddLot)
	inventory.Post("/assignments", superadmin, stockHandler.Assign)
	inventory.Post("/adjustments", superadmin, stockHandler.Adjust)
	inventory.Put("/items/:id/pricing", superadmin, stockHandler.UpdatePricing)
	inventory.Delete("/items/:id", superadmin, stockHandler.DeleteItem)
	inventory.Get("/items/:id/stock", anyRole, stockHandler.ItemStock)
	inventory.Get("/items/:id/my-stock", anyRole, stockHandler.MyStock)

	// Ventas de contado (los admins venden; el superadmin ve todo)
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup := api.Group("/sales")
	salesGroup.Post("/", anyRole, salesHandler.Record)
	salesGroup.Get("/", anyRole, salesHandler.List)

	// Ventas a crédito
	creditHandler := NewCreditHandler(deps.SalesUC, deps.StatementUC)
	credit := api.Group("/credit-sales")
	credit.Post("/", anyRole, creditHandler.Record)
	credit.Get("/", anyRole, creditHandler.List)
	credit.Get("/:id", anyRole, creditHandler.GetByID)
	credit.Get("/:id/statement", anyRole, creditHandler.Statement)
	credit.Put("/:id/complete", superadmin, creditHandler.MarkCompleted)

	// Catálogo (solo superadmin administra; lecturas para ambos)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	categories := api.Group("/categories")
	categories.Post("/", superadmin, catalogHandler.CreateCategory)
	categories.Get("/", anyRole, catalogHandler.ListCategories)
	categories.Put("/:id", superadmin, catalogHandler.UpdateCategory)
	categories.Delete("/:id", superadmin, catalogHandler.DeleteCategory)

	items := api.Group("/items")
	items.Post("/", superadmin, catalogHandler.CreateItem)
	items.Get("/", anyRole, catalogHandler.ListItems)
	items.Get("/:id", anyRole, catalogHandler.GetItem)
	items.Put("/:id", superadmin, catalogHandler.UpdateItem)

	// Leads (ambos roles gestionan el pipeline)
	leadHandler := NewLeadHandler(deps.CatalogUC)
	leads := api.Group("/leads", anyRole)
	leads.Post("/", leadHandler.Create)
	leads.Get("/", leadHandler.List)
	leads.Get("/follow-ups", leadHandler.FollowUps)
	leads.Put("/:id", leadHandler.Update)
	leads.Delete("/:id", leadHandler.Delete)

	// Dashboard y bitácora (solo superadmin)
	reportsHandler := NewReportsHandler(deps.ReportsUC, deps.StockUC)
	reportsGroup := api.Group("/reports", superadmin)
	reportsGroup.Get("/category-revenue", reportsHandler.CategoryRevenue)
	reportsGroup.Get("/admin-stock", reportsHandler.AdminStock)
	reportsGroup.Get("/credit-summary", reportsHandler.CreditSummary)
	reportsGroup.Get("/overdue-installments", reportsHandler.OverdueInstallments)
	reportsGroup.Get("/audit-trail", reportsHandler.AuditTrail)

	api.Get("/users/admins", superadmin, reportsHandler.Admins)
}
