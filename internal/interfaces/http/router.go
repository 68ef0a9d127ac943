package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/despachosys-api/internal/application/analytics"
	"github.com/jhoicas/despachosys-api/internal/application/auth"
	"github.com/jhoicas/despachosys-api/internal/application/inventory"
	"github.com/jhoicas/despachosys-api/internal/application/reports"
	"github.com/jhoicas/despachosys-api/internal/application/sales"
	"github.com/jhoicas/despachosys-api/internal/application/usecase"
	"github.com/jhoicas/despachosys-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	CarrierUC     *usecase.CarrierUseCase
	CustomerUC    *usecase.CustomerUseCase
	OpportunityUC *usecase.OpportunityUseCase
	AccountUC     *usecase.AccountUseCase
	PayableUC     *usecase.PayableUseCase
	ReceivableUC  *usecase.ReceivableUseCase
	UserUC        *usecase.UserUseCase
	MovementUC    *inventory.MovementUseCase
	DispatchUC    *inventory.DispatchUseCase
	OrderUC       *sales.OrderUseCase
	ExportUC      *reports.ExportUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	AuthUC        *auth.AuthUseCase // nil = POST /api/auth/token no se registra
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dispatchHandler := NewDispatchHandler(deps.DispatchUC, deps.ExportUC)

	// Públicas
	api.Get("/dashboard/stats", dashboardHandler.GetStats)
	api.Get("/dispatches/track/:code", dispatchHandler.Track)
	if deps.AuthUC != nil {
		api.Post("/auth/token", authHandler.IssueToken)
	}

	// Rutas protegidas (requieren Bearer Token). viewer solo lee.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), dashboardHandler.InvalidateStats)
	write := RequireRole(entity.RoleAdmin, entity.RoleUser, entity.RoleDispatcher)
	adminOnly := RequireRole(entity.RoleAdmin)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", write, categoryHandler.Create)
	categories.Put("/:id", write, categoryHandler.Update)
	categories.Delete("/:id", write, categoryHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", write, productHandler.Create)
	products.Put("/:id", write, productHandler.Update)
	products.Delete("/:id", write, productHandler.Delete)

	carriers := protected.Group("/carriers")
	carrierHandler := NewCarrierHandler(deps.CarrierUC)
	carriers.Get("/", carrierHandler.List)
	carriers.Get("/:id", carrierHandler.GetByID)
	carriers.Post("/", write, carrierHandler.Create)
	carriers.Put("/:id", write, carrierHandler.Update)
	carriers.Delete("/:id", write, carrierHandler.Delete)

	// export antes de /:id para que no lo capture el parámetro
	dispatches := protected.Group("/dispatches")
	dispatches.Get("/", dispatchHandler.List)
	dispatches.Get("/export", dispatchHandler.Export)
	dispatches.Get("/:id", dispatchHandler.GetByID)
	dispatches.Post("/", write, dispatchHandler.Create)
	dispatches.Put("/:id", write, dispatchHandler.Update)
	dispatches.Delete("/:id", write, dispatchHandler.Delete)

	stock := protected.Group("/stock")
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.ExportUC)
	stock.Get("/movements", inventoryHandler.ListMovements)
	stock.Get("/movements/export", inventoryHandler.ExportMovements)
	stock.Post("/movements", write, inventoryHandler.RegisterMovement)
	stock.Delete("/movements/:id", write, inventoryHandler.DeleteMovement)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/", write, customerHandler.Create)
	customers.Put("/:id", write, customerHandler.Update)
	customers.Delete("/:id", write, customerHandler.Delete)

	opportunities := protected.Group("/opportunities")
	opportunityHandler := NewOpportunityHandler(deps.OpportunityUC)
	opportunities.Get("/", opportunityHandler.List)
	opportunities.Get("/:id", opportunityHandler.GetByID)
	opportunities.Post("/", write, opportunityHandler.Create)
	opportunities.Put("/:id", write, opportunityHandler.Update)
	opportunities.Delete("/:id", write, opportunityHandler.Delete)

	orders := protected.Group("/sales-orders")
	orderHandler := NewSalesOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/pdf", orderHandler.PDF)
	orders.Post("/", write, orderHandler.Create)
	orders.Put("/:id", write, orderHandler.Update)
	orders.Delete("/:id", write, orderHandler.Delete)

	financeHandler := NewFinanceHandler(deps.AccountUC, deps.PayableUC, deps.ReceivableUC)
	accounts := protected.Group("/accounts")
	accounts.Get("/", financeHandler.ListAccounts)
	accounts.Get("/:id", financeHandler.GetAccount)
	accounts.Post("/", write, financeHandler.CreateAccount)
	accounts.Put("/:id", write, financeHandler.UpdateAccount)
	accounts.Delete("/:id", write, financeHandler.DeleteAccount)

	payables := protected.Group("/payables")
	payables.Get("/", financeHandler.ListPayables)
	payables.Get("/:id", financeHandler.GetPayable)
	payables.Post("/", write, financeHandler.CreatePayable)
	payables.Put("/:id", write, financeHandler.UpdatePayable)
	payables.Delete("/:id", write, financeHandler.DeletePayable)

	receivables := protected.Group("/receivables")
	receivables.Get("/", financeHandler.ListReceivables)
	receivables.Get("/:id", financeHandler.GetReceivable)
	receivables.Post("/", write, financeHandler.CreateReceivable)
	receivables.Put("/:id", write, financeHandler.UpdateReceivable)
	receivables.Delete("/:id", write, financeHandler.DeleteReceivable)

	users := protected.Group("/users")
	users.Get("/me", authHandler.Me)
	users.Get("/", adminOnly, authHandler.ListUsers)
	users.Put("/:id/role", adminOnly, authHandler.UpdateRole)
}
