package handlers

import "github.com/gin-gonic/gin"

// AccountHandlerInterface defines the methods needed by the account routes.
type AccountHandlerInterface interface {
	ChangePassword(c *gin.Context)
	UpdateProfile(c *gin.Context)
}

// DesignHandlerInterface defines the methods needed by the design routes.
type DesignHandlerInterface interface {
	CreateDesign(c *gin.Context)
	GetDesign(c *gin.Context)
	EditDesign(c *gin.Context)
}

// DesignerHandlerInterface defines the methods needed by the designer routes.
type DesignerHandlerInterface interface {
	ListDesigners(c *gin.Context)
	GetDesigner(c *gin.Context)
}

// ImageHandlerInterface defines the methods needed by the image routes.
type ImageHandlerInterface interface {
	GenerateImages(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ AccountHandlerInterface = (*AccountHandler)(nil)
var _ DesignHandlerInterface = (*DesignHandler)(nil)
var _ DesignerHandlerInterface = (*DesignerHandler)(nil)
var _ ImageHandlerInterface = (*ImageHandler)(nil)
