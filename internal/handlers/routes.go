package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/alimgiray/gfolio/web"
)

// SetupRoutes registers every portfolio route on router
func SetupRoutes(router *gin.Engine, portfolioHandler *PortfolioHandler, healthHandler *HealthHandler, notFoundHandler *NotFoundHandler) {
	router.StaticFS("/static", web.StaticFS())

	router.GET("/", portfolioHandler.Index)
	router.GET("/projects", portfolioHandler.Projects)
	router.GET("/export.xlsx", portfolioHandler.ExportXLSX)

	api := router.Group("/api")
	{
		api.GET("/repos", portfolioHandler.APIRepos)
	}

	router.GET("/health", healthHandler.Health)

	router.NoRoute(notFoundHandler.NotFound)
}
