package services

import (
	"context"

	"shoe-design-api/internal/transport/dto"
)

// AccountService handles the caller's own account.
type AccountService interface {
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileDTO) (*dto.DesignerResponseDTO, error)
}

// DesignService handles custom shoe designs.
type DesignService interface {
	CreateDesign(ctx context.Context, userID string, req *dto.CreateDesignRequestDTO) (*dto.ShoeCustomDTO, error)
	EditDesign(ctx context.Context, userID string, req *dto.EditDesignRequestDTO) (*dto.ShoeCustomDTO, error)
	GetDesign(ctx context.Context, shoeID string) (*dto.ShoeCustomDTO, error)
}

// DesignerService serves designer profiles.
type DesignerService interface {
	ListDesigners(ctx context.Context) ([]dto.DesignerPublicDTO, error)
	GetDesigner(ctx context.Context, designerID string) (*dto.DesignerResponseDTO, error)
}

// ImageService generates shoe images from a text prompt.
type ImageService interface {
	GenerateImages(ctx context.Context, req *dto.ImageGenerationRequest) (*dto.ImageGenerationResponse, error)
}
