package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-design-api/internal/api/middleware"
	"shoe-design-api/internal/api/routes"
	"shoe-design-api/internal/app"
	"shoe-design-api/internal/transport/dto"
)

type Server struct {
	router     *gin.Engine
	app        *app.Application // Store the application container
	httpServer *http.Server
}

func NewServer(app *app.Application) *Server {
	cfg := app.Config
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		middleware.GetLogger(c, app.Logger).Error("Panic recovered", zap.Any("panic", recovered), zap.Stack("stack"))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
	}))

	// --- Configure and Apply CORS Middleware ---
	app.Logger.Info("Configuring CORS", zap.Strings("origins", cfg.CORS.AllowedOrigins))
	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range cfg.CORS.AllowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization",
			"lang", cfg.Caller.Header, middleware.TraceIDHeader, middleware.TraceParentHeader,
		},
		ExposeHeaders:    []string{"Content-Length", middleware.TraceIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))
	// --- End CORS Configuration ---

	router.SetTrustedProxies(nil) // Remove the gin warning about untrusted proxies
	router.MaxMultipartMemory = cfg.Server.MaxMultipartMemory

	// Tracing first so the logger sees the span's trace id.
	if cfg.Tracing.Enabled {
		router.Use(middleware.Tracing(cfg.Tracing.ServiceName))
	}
	router.Use(middleware.Logger(app.Logger))
	if cfg.Metrics.Enabled {
		router.Use(middleware.Metrics())
	}
	router.Use(middleware.Lang(app.Validator))
	router.Use(middleware.Caller(cfg.Caller.Header))

	routes.RegisterRoutes(router, app)

	return &Server{
		router: router,
		app:    app,
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.app.Logger.Info("Server starting", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
