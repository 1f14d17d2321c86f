package main

import (
	"context"
	"errors"
	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/content"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/telemetry"
	"go-portfolio-backend/pkg/validation"
	"go-portfolio-backend/web"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title           Portfolio Site API
// @version         1.0
// @description     Portfolio site with a contact form delivered by email.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logCloser := logger.Init(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer logCloser.Close()
	logger.Log.Info("Starting portfolio site", "port", cfg.Port, "env", cfg.AppEnv)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Tracing
	shutdownTracing, err := telemetry.Setup(context.Background(), telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		logger.Log.Error("Failed to set up tracing", "error", err)
		os.Exit(1)
	}

	// 4. Load Site Content
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 15*time.Second)
	portfolio, err := loadPortfolio(loadCtx, cfg)
	cancelLoad()
	if err != nil {
		logger.Log.Error("Failed to load site content", "error", err)
		os.Exit(1)
	}

	// 5. Setup Email Service
	sender := email.NewResendSender(cfg.ResendAPIKey)
	if !sender.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will report a configuration error")
	}

	// 6. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, validation.NewContact(), domain.ContactSettings{
		From:    cfg.ContactSender(),
		To:      cfg.ContactEmailTo,
		Subject: cfg.ContactSubject,
	})
	healthUC := usecase.NewHealthUsecase(contactUC)

	// 7. Setup Router
	router, err := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Portfolio: portfolio,
		Config:    cfg,
	})
	if err != nil {
		logger.Log.Error("Failed to build router", "error", err)
		os.Exit(1)
	}

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Log.Error("Failed to flush traces", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// loadPortfolio prefers a bucket, then an on-disk file, so the page can be edited without a rebuild.
func loadPortfolio(ctx context.Context, cfg *config.Config) (*content.Portfolio, error) {
	if s3cfg := cfg.ContentS3; s3cfg.Bucket != "" {
		client, err := content.NewS3Client(ctx, content.S3Config{
			Bucket:          s3cfg.Bucket,
			Key:             s3cfg.Key,
			Region:          s3cfg.Region,
			Endpoint:        s3cfg.Endpoint,
			AccessKeyID:     s3cfg.AccessKeyID,
			SecretAccessKey: s3cfg.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return content.LoadS3(ctx, client, s3cfg.Bucket, s3cfg.Key)
	}
	if cfg.SiteContentFile != "" {
		return content.LoadFile(cfg.SiteContentFile)
	}
	return content.LoadFS(web.FS, web.ContentFile)
}
