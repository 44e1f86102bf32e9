// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"arches/internal/delivery/http/middleware"
	"arches/internal/delivery/http/response"
	"arches/internal/delivery/http/router/handler"
	"arches/internal/infra/metrics"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	LegacyHandler      *handler.LegacyHandler
	LocationHandler    *handler.LocationHandler
	VisitHandler       *handler.VisitHandler
	IdentityMiddleware *middleware.IdentityMiddleware
	Metrics            *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	legacyHandler      *handler.LegacyHandler
	locationHandler    *handler.LocationHandler
	visitHandler       *handler.VisitHandler
	identityMiddleware *middleware.IdentityMiddleware
	metrics            *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		legacyHandler:      params.LegacyHandler,
		locationHandler:    params.LocationHandler,
		visitHandler:       params.VisitHandler,
		identityMiddleware: params.IdentityMiddleware,
		metrics:            params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	r.registerLegacyRoutes(e)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.identityMiddleware.Identify)

	locationsGroup := apiV1.Group("/locations")
	{
		locationsGroup.GET("", r.locationHandler.ListAll)
		locationsGroup.GET("/nearby", r.locationHandler.FindNearby)
	}

	visitsGroup := apiV1.Group("/visits")
	visitsGroup.Use(r.identityMiddleware.RequireIdentity)
	{
		visitsGroup.GET("", r.visitHandler.ListVisited)
		visitsGroup.POST("/toggle", r.visitHandler.ToggleVisit)
		visitsGroup.GET("/:locationId", r.visitHandler.GetVisitStatus)
	}
}

// registerLegacyRoutes keeps the paths and bare payloads the legacy map client uses.
// Middleware is attached per route since a root-level group would also claim unmatched paths.
func (r *router) registerLegacyRoutes(e *echo.Echo) {
	legacy := []echo.MiddlewareFunc{response.UseLegacyFormat, r.identityMiddleware.Identify}

	e.GET("/getMcDonalds", r.legacyHandler.GetVisited, legacy...)
	e.GET("/addMcDonaldsScroll", r.legacyHandler.NearbyScroll, legacy...)
	e.GET("/addAllLocations", r.legacyHandler.AllLocations, legacy...)
	e.POST("/AddorDeleteMcDonaldsLocal", r.legacyHandler.ToggleLocal, legacy...)

	e.POST("/login", r.authHandler.Login, legacy...)
	e.POST("/register", r.authHandler.Register, legacy...)
	e.GET("/logout", r.authHandler.Logout, legacy...)
}
