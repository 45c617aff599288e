package routes

import (
	"github.com/gin-gonic/gin"

	"devmeup/controllers"
)

// Register wires all API endpoints
func Register(router *gin.Engine, health *controllers.HealthController, history *controllers.HistoryController) {
	api := router.Group("/api")
	{
		api.GET("/ping", health.Ping)

		// Query-string form first so /api/history without a path segment
		// resolves to the identifier lookup
		api.GET("/history", history.GetByIdentifier)
		api.GET("/history/:identifier", history.GetByEmail)
		api.POST("/history", history.Create)
	}
}
