package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shoe-design-api/internal/transport/dto"
)

const callerCtx = "callerID"

// ErrNoCaller is returned when no caller id reached the handler.
var ErrNoCaller = errors.New("caller ID not found in context")

// Caller copies the caller id that the upstream gateway forwards in header into the context.
// The gateway is trusted to have authenticated the caller; nothing is verified here.
func Caller(header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(header)); id != "" {
			c.Set(callerCtx, id)
		}
		c.Next()
	}
}

// RequireCaller rejects requests that carry no caller id.
func RequireCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := GetCallerID(c); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Caller identity required"})
			return
		}
		c.Next()
	}
}

// GetCallerID returns the caller id stored by Caller.
func GetCallerID(c *gin.Context) (string, error) {
	id := c.GetString(callerCtx)
	if id == "" {
		return "", ErrNoCaller
	}
	return id, nil
}
