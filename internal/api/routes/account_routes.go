package routes

import (
	"github.com/gin-gonic/gin"

	"shoe-design-api/internal/api/handlers"
)

// RegisterAccountRoutes registers the caller's account routes
func RegisterAccountRoutes(rg *gin.RouterGroup, accountHandler handlers.AccountHandlerInterface, requireCaller gin.HandlerFunc) {
	account := rg.Group("/account")
	account.Use(requireCaller)
	{
		account.PUT("/password", accountHandler.ChangePassword)
		account.PUT("/profile", accountHandler.UpdateProfile)
	}
}
