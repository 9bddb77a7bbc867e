// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dealerlot/internal/delivery/http/middleware"
	"dealerlot/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CarHandler     *handler.CarHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	carHandler     *handler.CarHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		carHandler:     params.CarHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Inventory routes; every one requires a verified dealer identity.
	carGroup := api.Group("/cars")
	carGroup.Use(r.authMiddleware.Authenticate)
	{
		carGroup.GET("", r.carHandler.ListCars)
		carGroup.POST("", r.carHandler.AddCar)
		carGroup.GET("/search", r.carHandler.SearchCars)
		carGroup.GET("/:id", r.carHandler.GetCar)
		carGroup.PUT("/:id/stock", r.carHandler.UpdateStock)
		carGroup.DELETE("/:id", r.carHandler.RemoveCar)
	}
}
