// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roster/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler *handler.UserHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler: params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes. No protected endpoints exist: issued tokens are not
	// consumed by this service.
	usersGroup := e.Group("/api/users")
	{
		usersGroup.POST("/signup", r.userHandler.Signup)
		usersGroup.POST("/login", r.userHandler.Login)
	}
}
