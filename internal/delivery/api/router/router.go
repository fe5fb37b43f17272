// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"schoolhub/config"
	"schoolhub/internal/delivery/api/middleware"
	"schoolhub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	StatsHandler   *handler.StatsHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	statsHandler   *handler.StatsHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		statsHandler:   params.StatsHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/create_user", r.accountHandler.CreateAccount)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.GET("/stats", r.statsHandler.GetStats)

		// Routes acting on the caller's own record
		authGroup.PUT("/update", r.accountHandler.UpdateProfile, r.authMiddleware.Authenticate)
		authGroup.POST("/upload", r.accountHandler.UploadPhoto, r.authMiddleware.Authenticate)
		authGroup.GET("/getuser", r.accountHandler.GetProfile, r.authMiddleware.Authenticate)
	}
}

// RegisterTestRoutes mounts GET /auth/test when test routes are enabled.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	e.GET("/auth/test", r.testHandler.Welcome, r.authMiddleware.Authenticate)
}
