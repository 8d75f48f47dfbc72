package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shoe-design-api/internal/services"
	"shoe-design-api/internal/transport/dto"
)

// MockAccountService is a mock type for the services.AccountService interface
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileDTO) (*dto.DesignerResponseDTO, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DesignerResponseDTO), args.Error(1)
}

// MockDesignService is a mock type for the services.DesignService interface
type MockDesignService struct {
	mock.Mock
}

func (m *MockDesignService) CreateDesign(ctx context.Context, userID string, req *dto.CreateDesignRequestDTO) (*dto.ShoeCustomDTO, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ShoeCustomDTO), args.Error(1)
}

func (m *MockDesignService) EditDesign(ctx context.Context, userID string, req *dto.EditDesignRequestDTO) (*dto.ShoeCustomDTO, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ShoeCustomDTO), args.Error(1)
}

func (m *MockDesignService) GetDesign(ctx context.Context, shoeID string) (*dto.ShoeCustomDTO, error) {
	args := m.Called(ctx, shoeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ShoeCustomDTO), args.Error(1)
}

// MockDesignerService is a mock type for the services.DesignerService interface
type MockDesignerService struct {
	mock.Mock
}

func (m *MockDesignerService) ListDesigners(ctx context.Context) ([]dto.DesignerPublicDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DesignerPublicDTO), args.Error(1)
}

func (m *MockDesignerService) GetDesigner(ctx context.Context, designerID string) (*dto.DesignerResponseDTO, error) {
	args := m.Called(ctx, designerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DesignerResponseDTO), args.Error(1)
}

// MockImageService is a mock type for the services.ImageService interface
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) GenerateImages(ctx context.Context, req *dto.ImageGenerationRequest) (*dto.ImageGenerationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImageGenerationResponse), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ services.AccountService  = (*MockAccountService)(nil)
	_ services.DesignService   = (*MockDesignService)(nil)
	_ services.DesignerService = (*MockDesignerService)(nil)
	_ services.ImageService    = (*MockImageService)(nil)
)
