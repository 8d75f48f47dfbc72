package app

import (
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"shoe-design-api/config"
	"shoe-design-api/internal/services"
	"shoe-design-api/internal/validation"
)

// Application holds core application dependencies.
type Application struct {
	Config    *config.Config
	Logger    *zap.Logger
	Validator *validation.Validator

	Accounts  services.AccountService
	Designs   services.DesignService
	Designers services.DesignerService
	Images    services.ImageService

	// ShuttingDown is set once shutdown begins; /ready answers 503 from then on.
	ShuttingDown atomic.Bool
}

// Option registers a collaborator on the Application.
type Option func(*Application)

func WithAccountService(s services.AccountService) Option {
	return func(a *Application) { a.Accounts = s }
}

func WithDesignService(s services.DesignService) Option {
	return func(a *Application) { a.Designs = s }
}

func WithDesignerService(s services.DesignerService) Option {
	return func(a *Application) { a.Designers = s }
}

func WithImageService(s services.ImageService) Option {
	return func(a *Application) { a.Images = s }
}

// New builds the container. Collaborators that are not registered
// through opts answer every call with services.ErrNotImplemented.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) (*Application, error) {
	if cfg == nil {
		return nil, errors.New("app: config is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	v, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("app: init validator: %w", err)
	}

	a := &Application{
		Config:    cfg,
		Logger:    logger,
		Validator: v,
		Accounts:  services.Unavailable{},
		Designs:   services.Unavailable{},
		Designers: services.Unavailable{},
		Images:    services.Unavailable{},
	}
	for _, opt := range opts {
		opt(a)
	}

	if _, ok := a.Accounts.(services.Unavailable); ok {
		logger.Warn("No account collaborator registered; account routes answer 501")
	}
	if _, ok := a.Designs.(services.Unavailable); ok {
		logger.Warn("No design collaborator registered; design routes answer 501")
	}
	if _, ok := a.Designers.(services.Unavailable); ok {
		logger.Warn("No designer collaborator registered; designer routes answer 501")
	}
	if _, ok := a.Images.(services.Unavailable); ok {
		logger.Warn("No image collaborator registered; image routes answer 501")
	}

	return a, nil
}
