// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crewdir/internal/delivery/http/middleware"
	"crewdir/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DirectoryHandler   *handler.DirectoryHandler
	AgencyAdminHandler *handler.AgencyAdminHandler
	ComplianceHandler  *handler.ComplianceHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	directoryHandler   *handler.DirectoryHandler
	agencyAdminHandler *handler.AgencyAdminHandler
	complianceHandler  *handler.ComplianceHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		directoryHandler:   params.DirectoryHandler,
		agencyAdminHandler: params.AgencyAdminHandler,
		complianceHandler:  params.ComplianceHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public directory routes
	e.GET("/agencies", r.directoryHandler.ListAgencies)
	e.GET("/agencies/:id", r.directoryHandler.GetAgency)
	e.GET("/trades", r.directoryHandler.ListTrades)
	e.GET("/regions", r.directoryHandler.ListRegions)

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(middleware.RoleAdmin))
	{
		adminGroup.PATCH("/agencies/:id", r.agencyAdminHandler.UpdateAgency)
		adminGroup.GET("/agencies/:id/edits", r.agencyAdminHandler.GetEditHistory)

		adminGroup.GET("/agencies/:id/compliance", r.complianceHandler.ListCompliance)
		adminGroup.POST("/agencies/:id/compliance", r.complianceHandler.UploadDocument)
		adminGroup.POST("/agencies/:id/compliance/review", r.complianceHandler.ReviewDocument)
		adminGroup.DELETE("/agencies/:id/compliance", r.complianceHandler.DeleteDocument)
	}
}
