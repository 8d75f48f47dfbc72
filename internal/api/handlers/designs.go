package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-design-api/internal/services"
	"shoe-design-api/internal/transport/dto"
	"shoe-design-api/internal/validation"
)

// DesignHandler serves custom shoe designs.
type DesignHandler struct {
	svc       services.DesignService
	validator *validation.Validator
	logger    *zap.Logger
}

// NewDesignHandler creates a new DesignHandler
func NewDesignHandler(svc services.DesignService, v *validation.Validator, logger *zap.Logger) *DesignHandler {
	return &DesignHandler{svc: svc, validator: v, logger: logger}
}

// CreateDesign godoc
// @Summary      Create a shoe design
// @Description  Submits a new custom shoe design. An omitted images list is treated as empty.
// @Tags         designs
// @Accept       json
// @Produce      json
// @Param        X-User-Id  header    string                      true  "Caller ID"
// @Param        design     body      dto.CreateDesignRequestDTO  true  "Design to create"
// @Success      201  {object}  dto.ShoeCustomDTO "Design created"
// @Failure      400  {object}  dto.ErrorResponse "Invalid input"
// @Failure      401  {object}  dto.ErrorResponse "Missing caller"
// @Failure      409  {object}  dto.ErrorResponse "Conflict"
// @Failure      501  {object}  dto.ErrorResponse "No design collaborator"
// @Failure      500  {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /designs [post]
func (h *DesignHandler) CreateDesign(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateDesignRequestDTO
	if !bindJSON(c, h.validator, &req) {
		return
	}

	design, err := h.svc.CreateDesign(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, h.logger, err, "create design")
		return
	}
	if design == nil {
		resp := dto.NewShoeCustomDTO()
		design = &resp
	}
	normalize(design)
	c.JSON(http.StatusCreated, design)
}

// GetDesign godoc
// @Summary      Get a shoe design
// @Description  Retrieves a custom shoe with its category, designer and images.
// @Tags         designs
// @Produce      json
// @Param        shoeId  path      string  true  "Shoe ID"
// @Success      200  {object}  dto.ShoeCustomDTO "Design"
// @Failure      404  {object}  dto.ErrorResponse "Design not found"
// @Failure      501  {object}  dto.ErrorResponse "No design collaborator"
// @Failure      500  {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /designs/{shoeId} [get]
func (h *DesignHandler) GetDesign(c *gin.Context) {
	shoeID := c.Param("shoeId")

	design, err := h.svc.GetDesign(c.Request.Context(), shoeID)
	if err != nil {
		writeServiceError(c, h.logger, err, "retrieve design")
		return
	}
	if design == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Resource not found"})
		return
	}
	normalize(design)
	c.JSON(http.StatusOK, design)
}

// EditDesign godoc
// @Summary      Edit a shoe design
// @Description  Updates an existing design. The path ID is used when the body carries no shoeId.
// @Tags         designs
// @Accept       json
// @Produce      json
// @Param        X-User-Id  header    string                    true  "Caller ID"
// @Param        shoeId     path      string                    true  "Shoe ID"
// @Param        design     body      dto.EditDesignRequestDTO  true  "Fields to change"
// @Success      200  {object}  dto.ShoeCustomDTO "Updated design"
// @Failure      400  {object}  dto.ErrorResponse "Invalid input or mismatched shoeId"
// @Failure      401  {object}  dto.ErrorResponse "Missing caller"
// @Failure      403  {object}  dto.ErrorResponse "Not the owner"
// @Failure      404  {object}  dto.ErrorResponse "Design not found"
// @Failure      501  {object}  dto.ErrorResponse "No design collaborator"
// @Failure      500  {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /designs/{shoeId} [put]
func (h *DesignHandler) EditDesign(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	shoeID := c.Param("shoeId")

	var req dto.EditDesignRequestDTO
	if !bindJSON(c, h.validator, &req) {
		return
	}

	switch {
	case req.ShoeID == nil:
		req.ShoeID = &shoeID
	case *req.ShoeID != shoeID:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "shoeId in body does not match path"})
		return
	}

	design, err := h.svc.EditDesign(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, h.logger, err, "edit design")
		return
	}
	if design == nil {
		resp := dto.NewShoeCustomDTO()
		design = &resp
	}
	normalize(design)
	c.JSON(http.StatusOK, design)
}
