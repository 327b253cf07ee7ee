package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecoshop/ecoshop-api/internal/application/analytics"
	"github.com/ecoshop/ecoshop-api/internal/application/auth"
	"github.com/ecoshop/ecoshop-api/internal/application/usecase"
	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/domain/repository"
	"github.com/ecoshop/ecoshop-api/internal/domain/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *usecase.ProductUseCase
	OrderUC     *usecase.OrderUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *analytics.DashboardUseCase
	Store       storage.RecordStore
	Products    repository.ProductRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (lectura pública)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sesión y perfil
	protected.Get("/auth/session", authHandler.GetSession)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/profile", authHandler.GetProfile)
	protected.Put("/profile", authHandler.UpdateProfile)

	// Carrito (por identidad del token)
	cartGroup := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.Store, deps.Products)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:productId", cartHandler.SetQuantity)
	cartGroup.Delete("/items/:productId", cartHandler.RemoveItem)

	// Órdenes del comprador
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Checkout)
	orders.Get("/", orderHandler.ListMine)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Back-office (solo admin)
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/products", adminOnly, productHandler.Create)
	protected.Put("/products/:id", adminOnly, productHandler.Update)
	protected.Delete("/products/:id", adminOnly, productHandler.Delete)

	admin := protected.Group("/admin", adminOnly)

	users := admin.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id/role", userHandler.ToggleRole)
	users.Put("/:id/status", userHandler.ToggleStatus)

	adminOrders := admin.Group("/orders")
	adminOrders.Get("/", orderHandler.ListAll)
	adminOrders.Put("/:id/status", orderHandler.UpdateStatus)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	admin.Get("/dashboard/summary", dashboardHandler.Summary)
}
