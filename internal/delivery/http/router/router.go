// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"weavewhisper/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ManufacturerHandler *handler.ManufacturerHandler
	OrderHistoryHandler *handler.OrderHistoryHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	manufacturerHandler *handler.ManufacturerHandler
	orderHistoryHandler *handler.OrderHistoryHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		manufacturerHandler: params.ManufacturerHandler,
		orderHistoryHandler: params.OrderHistoryHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	manufacturerGroup := e.Group("/manufacturers")
	{
		manufacturerGroup.POST("/register", r.manufacturerHandler.Register)
		manufacturerGroup.GET("/brands", r.manufacturerHandler.ListBrandNames)
		manufacturerGroup.GET("/:id/products", r.manufacturerHandler.ListProducts)
		manufacturerGroup.GET("/:id/orders/sold", r.manufacturerHandler.ListSoldProducts)
		manufacturerGroup.GET("/:id/orders/returns", r.manufacturerHandler.ListReturnRequests)
		manufacturerGroup.PATCH("/orders/status", r.manufacturerHandler.ChangeOrderStatus)
		manufacturerGroup.PATCH("/orders/return-status", r.manufacturerHandler.ChangeReturnStatus)
		manufacturerGroup.DELETE("/:id", r.manufacturerHandler.Delete)
		manufacturerGroup.DELETE("/:id/listings", r.manufacturerHandler.DeleteListings)
	}

	customerGroup := e.Group("/customers")
	{
		customerGroup.GET("/:id/orders", r.orderHistoryHandler.GetCustomerOrderHistory)
	}
}
