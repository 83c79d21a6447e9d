package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/rizkypra/storefront/internal/server/http/handlers"
	"github.com/rizkypra/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	api.GET("/products", catalogHandler.ListProducts)
	api.GET("/categories", catalogHandler.ListCategories)

	// payment gateway callback carries the order code, no session
	engine.POST("/payments/update-status", orderHandler.UpdatePayment)

	userAuth := api.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/orders", orderHandler.List)

	checkout := engine.Group("/checkout")
	checkout.Use(middleware.AuthRequired(facade))
	checkout.POST("/process", checkoutHandler.Process)

	admin := engine.Group("")
	admin.Use(middleware.AuthRequired(facade), middleware.RequireAdmin())
	admin.GET("/orders", orderHandler.Manage)
	admin.GET("/history-order", orderHandler.History)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	adminAPI := api.Group("")
	adminAPI.Use(middleware.AuthRequired(facade), middleware.RequireAdmin())
	adminAPI.POST("/products", catalogHandler.CreateProduct)
	adminAPI.PUT("/products/:id", catalogHandler.UpdateProduct)
	adminAPI.DELETE("/products/:id", catalogHandler.DeleteProduct)
	adminAPI.POST("/categories", catalogHandler.CreateCategory)
	adminAPI.PUT("/categories/:id", catalogHandler.UpdateCategory)
	adminAPI.DELETE("/categories/:id", catalogHandler.DeleteCategory)
	adminAPI.GET("/users", authHandler.Users)
	adminAPI.DELETE("/users/:id", authHandler.DeleteUser)

	return engine
}
