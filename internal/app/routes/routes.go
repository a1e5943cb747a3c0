package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/seda/schoolpulse/internal/app/controllers"
	"github.com/seda/schoolpulse/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	datasetController *controllers.DatasetController,
	aggregateController *controllers.AggregateController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Public dataset routes: pseudonymous tier only ---
	v1.GET("/catalogs", datasetController.GetCatalogs)
	v1.GET("/dataset", datasetController.GetDatasetSummary)
	v1.GET("/responses", datasetController.GetResponses)
	v1.GET("/aggregates", aggregateController.GetAggregates)

	// --- Reviewer routes: identifiable tier behind JWT ---
	reviewer := v1.Group("")
	reviewer.Use(authMiddleware.JWTAuth())
	{
		reviewer.GET("/students", datasetController.GetStudents)
		reviewer.GET("/credentials", datasetController.GetCredentials)
		reviewer.GET("/rewrite-map", datasetController.GetRewriteMap)
		reviewer.POST("/dataset/regenerate", datasetController.Regenerate)
	}
}
