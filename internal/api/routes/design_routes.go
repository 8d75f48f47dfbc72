package routes

import (
	"github.com/gin-gonic/gin"

	"shoe-design-api/internal/api/handlers"
)

// RegisterDesignRoutes registers all routes related to shoe designs.
// Reads are public; writes need a caller.
func RegisterDesignRoutes(rg *gin.RouterGroup, designHandler handlers.DesignHandlerInterface, requireCaller gin.HandlerFunc) {
	designs := rg.Group("/designs")
	{
		designs.GET("/:shoeId", designHandler.GetDesign)
		designs.POST("", requireCaller, designHandler.CreateDesign)
		designs.PUT("/:shoeId", requireCaller, designHandler.EditDesign)
	}
}
