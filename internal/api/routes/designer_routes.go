package routes

import (
	"github.com/gin-gonic/gin"

	"shoe-design-api/internal/api/handlers"
)

// RegisterDesignerRoutes registers the public designer routes
func RegisterDesignerRoutes(rg *gin.RouterGroup, designerHandler handlers.DesignerHandlerInterface) {
	designers := rg.Group("/designers")
	{
		designers.GET("", designerHandler.ListDesigners)
		designers.GET("/:designerId", designerHandler.GetDesigner)
	}
}
