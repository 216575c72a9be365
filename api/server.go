package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studentperf/studentperf/api/handlers"
	"github.com/studentperf/studentperf/api/middleware"
	"github.com/studentperf/studentperf/internal/metrics"
	"github.com/studentperf/studentperf/internal/model"
	"github.com/studentperf/studentperf/pkg/config"
)

// Classifier is the loaded model artifact as the server sees it: one
// inference operation plus identification for the health checks.
type Classifier interface {
	Predict(rec model.StudentRecord) (model.PerformanceClass, error)
	Version() string
}

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     config.APIConfig
	classifier Classifier
}

func NewServer(cfg config.APIConfig, assets config.AssetsConfig, mode string, clf Classifier) *Server {
	switch mode {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.LoadHTMLGlob(assets.TemplateGlob)
	router.Static("/static", assets.StaticDir)

	s := &Server{
		router:     router,
		config:     cfg,
		classifier: clf,
	}

	s.setupMiddleware()
	s.setupRoutes(assets)

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.CORS(s.corsConfig()))
	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.TraceID())
	s.router.Use(middleware.RequestSizeLimit(s.config.MaxBodyBytes))

	rateLimiter := middleware.NewRateLimiter(s.config.RateLimit, time.Minute)
	s.router.Use(middleware.RateLimit(rateLimiter))
}

// corsConfig overlays configured CORS settings onto the defaults.
func (s *Server) corsConfig() middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	if len(s.config.CORS.AllowedOrigins) > 0 {
		cors.AllowOrigins = s.config.CORS.AllowedOrigins
	}
	if len(s.config.CORS.AllowedMethods) > 0 {
		cors.AllowMethods = s.config.CORS.AllowedMethods
	}
	if len(s.config.CORS.AllowedHeaders) > 0 {
		cors.AllowHeaders = s.config.CORS.AllowedHeaders
	}
	if len(s.config.CORS.ExposedHeaders) > 0 {
		cors.ExposeHeaders = s.config.CORS.ExposedHeaders
	}
	cors.AllowCredentials = s.config.CORS.AllowCredentials
	return cors
}

func (s *Server) setupRoutes(assets config.AssetsConfig) {
	// Handlers
	pageHandler := handlers.NewPageHandler(assets.StaticDir, assets.OverviewImage)
	predictHandler := handlers.NewPredictHandler(s.classifier)
	healthHandler := handlers.NewHealthHandler(s.classifier)

	// Views: exactly one renders per request, selected by route
	s.router.GET("/", pageHandler.Overview)
	s.router.GET("/features", pageHandler.Glossary)
	s.router.GET("/predict", predictHandler.Form)
	s.router.POST("/predict", predictHandler.Submit)

	// JSON API
	s.router.POST("/api/v1/predict", predictHandler.PredictJSON)

	// Health
	s.router.GET("/health", healthHandler.Health)
	s.router.GET("/health/ready", healthHandler.Ready)
	s.router.GET("/health/live", healthHandler.Live)

	// Prometheus text metrics
	s.router.GET("/metrics", gin.WrapH(metrics.Get().Handler()))
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}
