// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/verify", r.authHandler.Verify, r.authMiddleware.Authenticate)
		authGroup.PUT("/address", r.authHandler.UpdateAddress, r.authMiddleware.Authenticate)
	}

	// Public catalog routes. Anonymous browsing is fine; a valid token still
	// attaches the caller's identity for request logging.
	productGroup := api.Group("/products")
	productGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:product_id", r.productHandler.Get)
	}

	// Admin catalog routes. These are gated on authentication only; there is
	// no role separation.
	adminGroup := api.Group("/admin/products")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.POST("", r.productHandler.Create)
		adminGroup.PUT("/:product_id", r.productHandler.Update)
		adminGroup.DELETE("/:product_id", r.productHandler.Delete)
	}

	// Cart routes
	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("", r.cartHandler.Save)
		cartGroup.DELETE("", r.cartHandler.Clear)
	}

	// Order routes
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Place)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:order_id", r.orderHandler.Get)
	}
}
