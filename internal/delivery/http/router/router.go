// Package router wires URL paths to handlers and guards them with middleware.
package router

import (
	"garage/internal/delivery/http/middleware"
	"garage/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middlewares, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	VehicleHandler    *handler.VehicleHandler
	OilChangeHandler  *handler.OilChangeHandler
	FuelRecordHandler *handler.FuelRecordHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	vehicleHandler    *handler.VehicleHandler
	oilChangeHandler  *handler.OilChangeHandler
	fuelRecordHandler *handler.FuelRecordHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		vehicleHandler:    params.VehicleHandler,
		oilChangeHandler:  params.OilChangeHandler,
		fuelRecordHandler: params.FuelRecordHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	vehicleGroup := e.Group("/vehicles")
	vehicleGroup.Use(r.authMiddleware.Authenticate)
	{
		vehicleGroup.POST("", r.vehicleHandler.Create)
		vehicleGroup.GET("", r.vehicleHandler.List)
		vehicleGroup.GET("/:id", r.vehicleHandler.Get)
		vehicleGroup.DELETE("/:id", r.vehicleHandler.Delete)

		vehicleGroup.POST("/:vehicleId/oil-changes", r.oilChangeHandler.Create)
		vehicleGroup.GET("/:vehicleId/oil-changes", r.oilChangeHandler.List)
		vehicleGroup.POST("/:vehicleId/fuel-records", r.fuelRecordHandler.Create)
		vehicleGroup.GET("/:vehicleId/fuel-records", r.fuelRecordHandler.List)
	}

	oilChangeGroup := e.Group("/oil-changes")
	oilChangeGroup.Use(r.authMiddleware.Authenticate)
	{
		oilChangeGroup.GET("/:id", r.oilChangeHandler.Get)
		oilChangeGroup.PATCH("/:id", r.oilChangeHandler.Update)
		oilChangeGroup.DELETE("/:id", r.oilChangeHandler.Delete)
	}

	fuelRecordGroup := e.Group("/fuel-records")
	fuelRecordGroup.Use(r.authMiddleware.Authenticate)
	{
		fuelRecordGroup.GET("/:id", r.fuelRecordHandler.Get)
		fuelRecordGroup.PATCH("/:id", r.fuelRecordHandler.Update)
		fuelRecordGroup.DELETE("/:id", r.fuelRecordHandler.Delete)
	}
}
