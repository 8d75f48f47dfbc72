package routes

import (
	"github.com/gin-gonic/gin"

	"shoe-design-api/internal/api/handlers"
)

// RegisterImageRoutes registers the image generation route
func RegisterImageRoutes(rg *gin.RouterGroup, imageHandler handlers.ImageHandlerInterface) {
	images := rg.Group("/images")
	{
		images.POST("/generations", imageHandler.GenerateImages)
	}
}
