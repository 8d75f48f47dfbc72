package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shoe-design-api/internal/api/handlers"
	"shoe-design-api/internal/api/middleware"
	"shoe-design-api/internal/app"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// Create handlers
	accountHandler := handlers.NewAccountHandler(app.Accounts, app.Validator, app.Logger)
	designHandler := handlers.NewDesignHandler(app.Designs, app.Validator, app.Logger)
	designerHandler := handlers.NewDesignerHandler(app.Designers, app.Logger)
	imageHandler := handlers.NewImageHandler(app.Images, app.Validator, app.Logger)

	// --- Middleware ---
	requireCaller := middleware.RequireCaller()

	// --- Register Resource Routes ---
	RegisterAccountRoutes(apiV1, accountHandler, requireCaller)
	RegisterDesignRoutes(apiV1, designHandler, requireCaller)
	RegisterDesignerRoutes(apiV1, designerHandler)
	RegisterImageRoutes(apiV1, imageHandler)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.Readiness(&app.ShuttingDown))

	if app.Config.Metrics.Enabled {
		router.GET(app.Config.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if app.Config.Swagger.Enabled {
		app.Logger.Debug("Configuring Swagger UI handler")
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
