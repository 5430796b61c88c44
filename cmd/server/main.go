package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/urbanfleet/ops-console-backend/internal/config"
	"github.com/urbanfleet/ops-console-backend/internal/derive"
	"github.com/urbanfleet/ops-console-backend/internal/handlers"
	"github.com/urbanfleet/ops-console-backend/internal/middleware"
	"github.com/urbanfleet/ops-console-backend/internal/period"
	"github.com/urbanfleet/ops-console-backend/internal/records"
	"github.com/urbanfleet/ops-console-backend/internal/services"
	"github.com/urbanfleet/ops-console-backend/internal/storage"
	"github.com/urbanfleet/ops-console-backend/internal/workflow"
	"github.com/urbanfleet/ops-console-backend/pkg/clock"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting UrbanFleet Ops Console Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize storage backend
	logger.Infof("Initializing %s storage backend...", cfg.Storage.Driver)
	backend, cleanup, err := newBackend(cfg.Storage)
	if err != nil {
		logger.Fatalf("Failed to initialize storage backend: %v", err)
	}
	defer cleanup()
	logger.Info("Storage backend ready")

	// Initialize stores and services
	logger.Info("Initializing services...")
	sysClock := clock.System{}

	riderStore := records.NewRiderStore(backend, logger)
	driverStore := records.NewDriverStore(backend, logger)
	companyStore := records.NewCompanyStore(backend, logger)

	generator := derive.NewGenerator(sysClock)
	resolver := period.NewResolver(sysClock)

	auditService := services.NewAuditService(backend, sysClock, logger, cfg.Audit.Enabled)
	dashboardService := services.NewDashboardService(riderStore, driverStore, generator, resolver)
	approvalWorkflow := workflow.New(backend, sysClock, logger, workflow.CaseSeeds)

	logger.Info("Services initialized")

	// Initialize handlers
	riderHandler := handlers.NewPersonHandler(riderStore, auditService, records.KeyRiders)
	driverHandler := handlers.NewPersonHandler(driverStore, auditService, records.KeyDrivers)
	companyHandler := handlers.NewCompanyHandler(companyStore, auditService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	approvalHandler := handlers.NewApprovalHandler(approvalWorkflow, auditService)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(middleware.Actor(cfg.Audit.DefaultActor))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		riders := v1.Group("/riders")
		{
			riders.GET("", riderHandler.List)
			riders.GET("/:id", riderHandler.GetByID)
			riders.POST("", riderHandler.Create)
			riders.PUT("", riderHandler.Upsert)
		}

		drivers := v1.Group("/drivers")
		{
			drivers.GET("", driverHandler.List)
			drivers.GET("/:id", driverHandler.GetByID)
			drivers.POST("", driverHandler.Create)
			drivers.PUT("", driverHandler.Upsert)
		}

		companies := v1.Group("/companies")
		{
			companies.GET("", companyHandler.List)
			companies.GET("/:id", companyHandler.GetByID)
			companies.POST("", companyHandler.Create)
			companies.PUT("", companyHandler.Upsert)
		}

		// Derived views (recomputed from the record collections on each read)
		v1.GET("/trips", dashboardHandler.Trips)
		v1.GET("/incidents", dashboardHandler.Incidents)

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/summary", dashboardHandler.Summary)
			analytics.GET("/export", dashboardHandler.Export)
		}

		approvals := v1.Group("/approvals")
		{
			approvals.GET("", approvalHandler.Queue)
			approvals.GET("/history", approvalHandler.History)
			approvals.POST("/:id/approve", approvalHandler.Approve)
			approvals.POST("/:id/reject", approvalHandler.Reject)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// newBackend selects the storage backend from configuration. The cleanup
// function closes the Postgres connection; for the other drivers it is a
// no-op.
func newBackend(cfg config.StorageConfig) (storage.Backend, func(), error) {
	switch cfg.Driver {
	case "memory":
		return storage.NewMemoryBackend(), func() {}, nil
	case "file":
		backend, err := storage.NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() {}, nil
	case "postgres":
		backend, err := storage.NewPostgresBackend(cfg)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() { backend.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
		}

		if actor, exists := c.Get(middleware.ActorKey); exists {
			fields["actor"] = actor
		}

		entry := logger.WithFields(fields)

		if len(c.Errors) > 0 {
			for i, err := range c.Errors {
				entry = entry.WithField(fmt.Sprintf("error_%d", i), err.Error())
			}
			entry.Error("Request failed with errors")
		} else {
			status := c.Writer.Status()
			if status >= 500 {
				entry.Error("Request completed with server error")
			} else if status >= 400 {
				entry.Warn("Request completed with client error")
			} else {
				entry.Info("Request completed successfully")
			}
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
