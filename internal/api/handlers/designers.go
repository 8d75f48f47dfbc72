package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-design-api/internal/services"
	"shoe-design-api/internal/transport/dto"
)

// DesignerHandler serves designer profiles.
type DesignerHandler struct {
	svc    services.DesignerService
	logger *zap.Logger
}

// NewDesignerHandler creates a new DesignerHandler
func NewDesignerHandler(svc services.DesignerService, logger *zap.Logger) *DesignerHandler {
	return &DesignerHandler{svc: svc, logger: logger}
}

// ListDesigners godoc
// @Summary      List designers
// @Description  Retrieves the public profile of every designer.
// @Tags         designers
// @Produce      json
// @Success      200  {array}   dto.DesignerPublicDTO "Designers"
// @Failure      501  {object}  dto.ErrorResponse "No designer collaborator"
// @Failure      500  {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /designers [get]
func (h *DesignerHandler) ListDesigners(c *gin.Context) {
	designers, err := h.svc.ListDesigners(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err, "retrieve designers")
		return
	}
	if designers == nil {
		designers = []dto.DesignerPublicDTO{}
	}
	c.JSON(http.StatusOK, designers)
}

// GetDesigner godoc
// @Summary      Get a designer
// @Description  Retrieves a designer's profile with feedback and designs.
// @Tags         designers
// @Produce      json
// @Param        designerId  path      string  true  "Designer ID"
// @Success      200  {object}  dto.DesignerResponseDTO "Designer profile"
// @Failure      404  {object}  dto.ErrorResponse "Designer not found"
// @Failure      501  {object}  dto.ErrorResponse "No designer collaborator"
// @Failure      500  {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /designers/{designerId} [get]
func (h *DesignerHandler) GetDesigner(c *gin.Context) {
	designerID := c.Param("designerId")

	designer, err := h.svc.GetDesigner(c.Request.Context(), designerID)
	if err != nil {
		writeServiceError(c, h.logger, err, "retrieve designer")
		return
	}
	if designer == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Resource not found"})
		return
	}
	normalize(designer)
	c.JSON(http.StatusOK, designer)
}
