package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-design-api/internal/services"
	"shoe-design-api/internal/transport/dto"
	"shoe-design-api/internal/validation"
)

// AccountHandler serves the caller's own account.
type AccountHandler struct {
	svc       services.AccountService
	validator *validation.Validator
	logger    *zap.Logger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(svc services.AccountService, v *validation.Validator, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, validator: v, logger: logger}
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Changes the caller's password. Both the current and the new password are required.
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        X-User-Id  header    string                     true  "Caller ID"
// @Param        request    body      dto.ChangePasswordRequest  true  "Current and new password"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse "Invalid input"
// @Failure      401  {object}  dto.ErrorResponse "Missing caller or wrong current password"
// @Failure      501  {object}  dto.ErrorResponse "No account collaborator"
// @Failure      500  {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /account/password [put]
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		writeServiceError(c, h.logger, err, "change password")
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Updates the caller's profile from form fields. Field order does not matter.
// @Tags         account
// @Accept       multipart/form-data
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        X-User-Id  header    string  true   "Caller ID"
// @Param        avatar     formData  string  false  "Avatar image reference"
// @Param        name       formData  string  false  "Display name"
// @Param        email      formData  string  false  "Email"
// @Param        phoneNo    formData  string  false  "Phone number"
// @Success      200  {object}  dto.DesignerResponseDTO "Updated profile"
// @Failure      400  {object}  dto.ErrorResponse "Invalid input"
// @Failure      401  {object}  dto.ErrorResponse "Missing caller"
// @Failure      501  {object}  dto.ErrorResponse "No account collaborator"
// @Failure      500  {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /account/profile [put]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileDTO
	if !bindForm(c, h.validator, &req) {
		return
	}

	profile, err := h.svc.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, h.logger, err, "update profile")
		return
	}
	if profile == nil {
		resp := dto.NewDesignerResponseDTO()
		profile = &resp
	}
	normalize(profile)
	c.JSON(http.StatusOK, profile)
}
