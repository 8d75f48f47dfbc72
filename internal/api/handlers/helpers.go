package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-design-api/internal/api/middleware"
	"shoe-design-api/internal/services"
	"shoe-design-api/internal/transport/dto"
	"shoe-design-api/internal/validation"
)

// bindJSON decodes the JSON body into req and validates it.
// On failure the 400 response is already written and false is returned.
func bindJSON(c *gin.Context, v *validation.Validator, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return false
	}
	return validate(c, v, req)
}

// bindForm is bindJSON for form bodies (multipart or urlencoded). A JSON body is accepted too.
func bindForm(c *gin.Context, v *validation.Validator, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return false
	}
	return validate(c, v, req)
}

func validate(c *gin.Context, v *validation.Validator, req any) bool {
	if err := v.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Details: validation.FormatErrors(err, middleware.GetTranslator(c)),
		})
		return false
	}
	return true
}

// callerID returns the id forwarded by the gateway, answering 401 when there is none.
func callerID(c *gin.Context) (string, bool) {
	id, err := middleware.GetCallerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Caller identity required"})
		return "", false
	}
	return id, true
}

// statusFor maps collaborator errors onto HTTP statuses.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict, "Conflict"
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest, "Validation failed"
	case errors.Is(err, services.ErrNotImplemented):
		return http.StatusNotImplemented, "Not implemented"
	default:
		return http.StatusInternalServerError, ""
	}
}

// writeServiceError answers a failed collaborator call. action completes
// "Failed to ..." for unexpected errors, whose details stay in the log.
func writeServiceError(c *gin.Context, base *zap.Logger, err error, action string) {
	status, msg := statusFor(err)
	log := middleware.GetLogger(c, base)

	switch {
	case status == http.StatusInternalServerError:
		middleware.RecordError(c.Request.Context(), err)
		log.Error("Failed to "+action, zap.Error(err))
		msg = "Failed to " + action
	case status == http.StatusNotImplemented:
		log.Warn("No collaborator for "+action, zap.Error(err))
	default:
		log.Debug("Request rejected by collaborator", zap.String("action", action), zap.Error(err))
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

// normalize fills list defaults on collaborator results so empty lists serialise as [].
func normalize(v any) {
	if err := dto.ApplyDefaults(v); err != nil {
		// Only reachable with a malformed default tag in the dto package.
		panic(err)
	}
}
