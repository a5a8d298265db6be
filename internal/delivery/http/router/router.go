// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"costbook/internal/delivery/http/middleware"
	"costbook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	SupplierHandler   *handler.SupplierHandler
	IngredientHandler *handler.IngredientHandler
	RecipeHandler     *handler.RecipeHandler
	ProductHandler    *handler.ProductHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	supplierHandler   *handler.SupplierHandler
	ingredientHandler *handler.IngredientHandler
	recipeHandler     *handler.RecipeHandler
	productHandler    *handler.ProductHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		supplierHandler:   params.SupplierHandler,
		ingredientHandler: params.IngredientHandler,
		recipeHandler:     params.RecipeHandler,
		productHandler:    params.ProductHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Supplier routes
	supplierGroup := e.Group("/suppliers")
	supplierGroup.Use(r.authMiddleware.Authenticate)
	{
		supplierGroup.POST("", r.supplierHandler.Create)
		supplierGroup.GET("", r.supplierHandler.List)
		supplierGroup.GET("/:id", r.supplierHandler.Get)
		supplierGroup.PUT("/:id", r.supplierHandler.Update)
		supplierGroup.DELETE("/:id", r.supplierHandler.Delete)
	}

	// Ingredient routes
	ingredientGroup := e.Group("/ingredients")
	ingredientGroup.Use(r.authMiddleware.Authenticate)
	{
		ingredientGroup.POST("", r.ingredientHandler.Create)
		ingredientGroup.GET("", r.ingredientHandler.List)
		ingredientGroup.GET("/:id", r.ingredientHandler.Get)
		ingredientGroup.PUT("/:id", r.ingredientHandler.Update)
		ingredientGroup.DELETE("/:id", r.ingredientHandler.Delete)
		ingredientGroup.POST("/:id/image", r.ingredientHandler.UploadImage)
	}

	// Recipe routes, version history included
	recipeGroup := e.Group("/recipes")
	recipeGroup.Use(r.authMiddleware.Authenticate)
	{
		recipeGroup.POST("", r.recipeHandler.Create)
		recipeGroup.GET("", r.recipeHandler.List)
		recipeGroup.GET("/:id", r.recipeHandler.Get)
		recipeGroup.PUT("/:id", r.recipeHandler.Update)
		recipeGroup.DELETE("/:id", r.recipeHandler.Delete)
		recipeGroup.POST("/:id/refresh-prices", r.recipeHandler.RefreshPrices)
		recipeGroup.GET("/:id/versions", r.recipeHandler.ListVersions)
		recipeGroup.GET("/:id/versions/:versionId", r.recipeHandler.GetVersion)
		recipeGroup.POST("/:id/versions/:versionId/restore", r.recipeHandler.RestoreVersion)
	}

	// Product routes
	productGroup := e.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("/:id/qrcode", r.productHandler.QRCode)
	}
}
