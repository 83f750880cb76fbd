package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"resume-collector-backend/config"
	_ "resume-collector-backend/docs" // Important for Swagger
	v1 "resume-collector-backend/internal/delivery/http/v1"
	"resume-collector-backend/internal/repository/memory"
	"resume-collector-backend/internal/usecase"
	"resume-collector-backend/pkg/logger"
	"resume-collector-backend/pkg/redis"
	"resume-collector-backend/pkg/security"
	"resume-collector-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort != "" {
		cfg.Port = servePort
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting resume collector",
		"port", cfg.Port,
		"max_resume_bytes", cfg.MaxResumeBytes,
		"allowed_extensions", security.GetAllowedExtensions(),
	)

	environment := "development"
	if cfg.GinMode == gin.ReleaseMode {
		environment = "production"
	}
	eventLogger := security.NewEventLogger("resume-collector", environment)
	security.SetDefault(eventLogger)
	defer func() { _ = eventLogger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Redis (optional, rate limiting falls back to memory)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
		defer redis.Close()
	}

	// 4. Setup Repositories
	candidateRepo := memory.NewCandidateRepository()

	// 5. Setup UseCases
	validate := validation.New()
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate, cfg.MaxResumeBytes)
	healthUC := usecase.NewHealthUsecase()

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		HealthUC:    healthUC,
		CandidateUC: candidateUC,
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen failed: %w", err)
		}
		return nil
	})

	// Graceful Shutdown
	g.Go(func() error {
		<-gCtx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("Server stopped with error", "error", err)
		return err
	}

	logger.Log.Info("Server exiting")
	return nil
}
