package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sui-balance-api/internal/config"
	"sui-balance-api/internal/handlers"
	"sui-balance-api/internal/middleware"
	"sui-balance-api/internal/services"
	"sui-balance-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	serviceName     = "sui-balance-api"
	serviceVersion  = "1.0.0"
	shutdownTimeout = 30 * time.Second
)

// Server represents the main application server
type Server struct {
	httpServer    *http.Server
	config        *config.Config
	suiClient     *services.SuiClient
	queryService  *services.QueryService
	healthChecker *services.UpstreamHealthChecker
	router        *handlers.Router
	startTime     time.Time
}

func main() {
	cfg := config.Load()

	if err := logger.Initialize(&logger.Config{
		Level:       cfg.Logging.Level,
		Environment: cfg.Logging.Environment,
		OutputPaths: cfg.Logging.OutputPaths,
	}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.GetLogger()

	// The upstream node URL is mandatory; refuse to bind a port without it
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	log.Info("Starting Sui balance API server",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("environment", cfg.Logging.Environment),
	)

	server, err := NewServer(cfg)
	if err != nil {
		log.Fatal("Failed to create server", zap.Error(err))
	}

	if err := server.Start(); err != nil {
		log.Fatal("Server failed", zap.Error(err))
	}
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.GetLogger()
	log.Debug("Initializing server components")

	suiClient, err := services.NewSuiClient(context.Background(), &cfg.RPC)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Sui client: %w", err)
	}

	queryService := services.NewQueryService(suiClient, nil)
	healthChecker := services.NewUpstreamHealthChecker(suiClient, 5*time.Second)
	router := handlers.NewRouter(queryService, handlers.NewHealthHandler(healthChecker))

	log.Info("Server components initialized")

	return &Server{
		config:        cfg,
		suiClient:     suiClient,
		queryService:  queryService,
		healthChecker: healthChecker,
		router:        router,
		startTime:     time.Now(),
	}, nil
}

// Engine builds the gin engine with the middleware stack and all routes
func (s *Server) Engine() *gin.Engine {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Recovery first so panics in later middleware are caught too
	engine.Use(logger.RecoveryMiddleware())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(s.queryService.GetMetricsCollector()))
	engine.Use(middleware.CORSMiddleware())

	s.router.SetupHealthRoutes(engine)
	s.router.SetupRoutes(engine)

	engine.GET("/metrics", s.metricsHandler)
	engine.GET("/status", s.statusHandler)

	return engine
}

// Start runs the HTTP server until SIGINT or SIGTERM
func (s *Server) Start() error {
	log := logger.GetLogger()

	s.httpServer = &http.Server{
		Addr:              s.config.Address(),
		Handler:           s.Engine(),
		ReadTimeout:       s.config.Server.ReadTimeout,
		WriteTimeout:      s.config.Server.WriteTimeout,
		IdleTimeout:       s.config.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server is running", zap.String("address", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		s.cleanup()
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	case sig := <-quit:
		log.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests, waits for in-flight ones and releases
// the upstream client
func (s *Server) Shutdown() error {
	log := logger.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		log.Info("Shutting down HTTP server", zap.Duration("timeout", shutdownTimeout))
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error("Server forced to shutdown", zap.Error(err))
			s.cleanup()
			return err
		}
	}

	s.cleanup()
	log.Info("Server gracefully stopped")
	return nil
}

func (s *Server) metricsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     serviceName,
		"version":     serviceVersion,
		"performance": s.queryService.GetPerformanceStats(),
	})
}

func (s *Server) statusHandler(c *gin.Context) {
	check := s.healthChecker.CheckHealth(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"service":     serviceName,
		"status":      "running",
		"rpc_healthy": check.Status == services.HealthStatusHealthy,
		"uptime":      time.Since(s.startTime).String(),
		"version":     serviceVersion,
	})
}

func (s *Server) cleanup() {
	log := logger.GetLogger()

	if s.suiClient != nil {
		log.Debug("Closing Sui RPC client")
		s.suiClient.Close()
	}

	if err := log.Sync(); err != nil {
		fmt.Fprintf(os.Stderr, "Error syncing logger: %v\n", err)
	}
}
