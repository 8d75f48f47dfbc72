package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-design-api/internal/services"
	"shoe-design-api/internal/transport/dto"
	"shoe-design-api/internal/validation"
)

// ImageHandler forwards image generation requests.
type ImageHandler struct {
	svc       services.ImageService
	validator *validation.Validator
	logger    *zap.Logger
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(svc services.ImageService, v *validation.Validator, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{svc: svc, validator: v, logger: logger}
}

// GenerateImages godoc
// @Summary      Generate shoe images
// @Description  Generates images from a prompt. Omitted fields default to numImages=1 and size=1024x1024; an empty body is allowed.
// @Tags         images
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ImageGenerationRequest  false  "Generation parameters"
// @Success      200  {object}  dto.ImageGenerationResponse "Generated images"
// @Failure      400  {object}  dto.ErrorResponse "Invalid input"
// @Failure      501  {object}  dto.ErrorResponse "No image collaborator"
// @Failure      500  {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /images/generations [post]
func (h *ImageHandler) GenerateImages(c *gin.Context) {
	req := dto.NewImageGenerationRequest()
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !validate(c, h.validator, &req) {
		return
	}

	resp, err := h.svc.GenerateImages(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err, "generate images")
		return
	}
	if resp == nil {
		resp = &dto.ImageGenerationResponse{}
	}
	normalize(resp)
	c.JSON(http.StatusOK, resp)
}
