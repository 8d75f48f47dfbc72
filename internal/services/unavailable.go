package services

import (
	"context"
	"fmt"

	"shoe-design-api/internal/transport/dto"
)

// Unavailable answers every operation with ErrNotImplemented.
// It stands in for collaborators that have not been registered.
type Unavailable struct{}

var (
	_ AccountService  = Unavailable{}
	_ DesignService   = Unavailable{}
	_ DesignerService = Unavailable{}
	_ ImageService    = Unavailable{}
)

func notImplemented(op string) error {
	return fmt.Errorf("%s: %w", op, ErrNotImplemented)
}

func (Unavailable) ChangePassword(context.Context, string, *dto.ChangePasswordRequest) error {
	return notImplemented("change password")
}

func (Unavailable) UpdateProfile(context.Context, string, *dto.UpdateProfileDTO) (*dto.DesignerResponseDTO, error) {
	return nil, notImplemented("update profile")
}

func (Unavailable) CreateDesign(context.Context, string, *dto.CreateDesignRequestDTO) (*dto.ShoeCustomDTO, error) {
	return nil, notImplemented("create design")
}

func (Unavailable) EditDesign(context.Context, string, *dto.EditDesignRequestDTO) (*dto.ShoeCustomDTO, error) {
	return nil, notImplemented("edit design")
}

func (Unavailable) GetDesign(context.Context, string) (*dto.ShoeCustomDTO, error) {
	return nil, notImplemented("get design")
}

func (Unavailable) ListDesigners(context.Context) ([]dto.DesignerPublicDTO, error) {
	return nil, notImplemented("list designers")
}

func (Unavailable) GetDesigner(context.Context, string) (*dto.DesignerResponseDTO, error) {
	return nil, notImplemented("get designer")
}

func (Unavailable) GenerateImages(context.Context, *dto.ImageGenerationRequest) (*dto.ImageGenerationResponse, error) {
	return nil, notImplemented("generate images")
}
