package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faithbit/ssms-api/internal/application/auth"
	"github.com/faithbit/ssms-api/internal/application/usecase"
	"github.com/faithbit/ssms-api/pkg/token"
)

// RouterDeps are the wired dependencies the router needs.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CustomerUC  *usecase.CustomerUseCase
	ProductUC   *usecase.ProductUseCase
	DashboardUC *usecase.DashboardUseCase
	BranchUC    *usecase.BranchUseCase
	Issuer      *token.Issuer
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (login and refresh public, the rest behind the access token)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", Authenticate(deps.Issuer), authHandler.Logout)
	authGroup.Get("/me", Authenticate(deps.Issuer), authHandler.Me)

	protected := api.Group("/", Authenticate(deps.Issuer))

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", RequirePermission("customer.create"), customerHandler.Create)
	customers.Get("/", RequirePermission("customer.view"), customerHandler.List)
	customers.Get("/:id", RequirePermission("customer.view"), customerHandler.GetByID)
	customers.Put("/:id", RequirePermission("customer.edit"), customerHandler.Update)
	customers.Delete("/:id", RequirePermission("customer.delete"), customerHandler.Deactivate)

	// Products. The fixed paths are registered before /:id so "search" and
	// "by-barcode" never match as an id.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/search", RequirePermission("product.view"), productHandler.Search)
	products.Get("/by-barcode", RequirePermission("product.view"), productHandler.GetByBarcode)
	products.Post("/", RequirePermission("product.create"), productHandler.Create)
	products.Get("/", RequirePermission("product.view"), productHandler.List)
	products.Get("/:id", RequirePermission("product.view"), productHandler.GetByID)
	products.Put("/:id", RequirePermission("product.edit"), productHandler.Update)
	products.Delete("/:id", RequirePermission("product.delete"), productHandler.Deactivate)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", RequirePermission("dashboard.view"), dashboardHandler.Stats)

	// Branches
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", RequirePermission("branch.view"), branchHandler.List)
	branches.Get("/:id", RequirePermission("branch.view"), branchHandler.GetByID)
}
