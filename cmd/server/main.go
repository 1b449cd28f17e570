package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/zencool/invoicer/internal/api"
	"github.com/zencool/invoicer/internal/application/port"
	"github.com/zencool/invoicer/internal/config"
	"github.com/zencool/invoicer/internal/domain/entity"
	"github.com/zencool/invoicer/internal/export"
	"github.com/zencool/invoicer/internal/infrastructure/persistence/kvstore"
	"github.com/zencool/invoicer/internal/infrastructure/persistence/repository"
	"github.com/zencool/invoicer/internal/invoice"
	"github.com/zencool/invoicer/internal/render"
	"github.com/zencool/invoicer/pkg/database"
	"github.com/zencool/invoicer/pkg/utils"
)

func main() {
	// Optional .env for local overrides
	_ = gotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting invoice service",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Fatal("Failed to create data directory", zap.Error(err))
		}
	}

	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	store := kvstore.NewSQLiteStore(db, logger)
	clock := port.SystemClock{}

	repo := repository.NewInvoiceRepository(store, clock, logger)

	factory := invoice.NewFactory(clock, invoice.UUIDGenerator{}, invoice.Defaults{
		From: entity.CompanyInfo{
			Name:    cfg.Company.Name,
			Address: cfg.Company.Address,
			Email:   cfg.Company.Email,
			Phone:   cfg.Company.Phone,
			Website: cfg.Company.Website,
		},
		Bank: entity.BankDetails{
			Bank:          cfg.Bank.Name,
			AccountNumber: cfg.Bank.AccountNumber,
		},
		LateFee: cfg.Invoice.DefaultLateFee,
	})

	renderer, err := render.NewRenderer(cfg.Company.LogoURL)
	if err != nil {
		logger.Fatal("Failed to initialize document renderer", zap.Error(err))
	}

	exporter := export.NewExcelExporter(logger)

	if cfg.Logger.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "invoicer",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	handler := api.NewHandler(repo, factory, renderer, exporter, logger)
	handler.Register(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}

// corsMiddleware adds CORS headers so the editor UI can run on another port.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
