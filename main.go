package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "chat-backend/cmd/api"
	authdomain "chat-backend/internal/auth/domain"
	authRepo "chat-backend/internal/auth/repository"
	authUsecase "chat-backend/internal/auth/usecase"
	messagedomain "chat-backend/internal/message/domain"
	messageRepo "chat-backend/internal/message/repository"
	messageUsecase "chat-backend/internal/message/usecase"
	"chat-backend/internal/notification"
	notificationdomain "chat-backend/internal/notification/domain"
	notificationRepo "chat-backend/internal/notification/repository"
	userUsecase "chat-backend/internal/user/usecase"
	"chat-backend/pkg/config"
	"chat-backend/pkg/database"
	"chat-backend/pkg/fcm"
	"chat-backend/pkg/imagestore"
	"chat-backend/pkg/logger"
	"chat-backend/pkg/telemetry"
	"chat-backend/pkg/upload"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.New(config.EnvDevelopment, "info").Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	shutdownTracing := telemetry.Setup(ctx, "chat-backend", log)

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &messagedomain.Message{}, &notificationdomain.DeviceToken{}); err != nil {
		log.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	messageRepository := messageRepo.NewMessageRepository(db)
	deviceTokenRepo := notificationRepo.NewDeviceTokenRepository(db)

	tokens, err := authUsecase.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Error("failed to initialize token issuer", "error", err)
		os.Exit(1)
	}

	images, err := imagestore.NewS3Store(ctx, imagestore.Config{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3Endpoint,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		log.Error("failed to initialize image store", "error", err)
		os.Exit(1)
	}

	// Push notifications are optional
	var sender fcm.Sender
	if cfg.FirebaseCredentials != "" {
		fcmClient, err := fcm.NewClient(ctx, cfg.FirebaseCredentials, log)
		if err != nil {
			log.Warn("push notifications disabled", "error", err)
		} else {
			sender = fcmClient
		}
	}
	notifications := notification.NewService(deviceTokenRepo, sender, log)

	// Initialize usecases
	authUc := authUsecase.NewAuthUsecase(userRepo, tokens)
	profileUc := userUsecase.NewProfileUsecase(userRepo, images, log)
	messageUc := messageUsecase.NewMessageUsecase(userRepo, messageRepository, images, notifications, log)

	// Abandoned uploads are swept in the background
	sweeper := upload.NewSweeper(cfg.UploadDir, cfg.UploadSweepInterval, cfg.UploadMaxAge, log)
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Error("failed to create upload dir", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}
	sweeper.Start()

	handler := api.NewHandler(authUc, profileUc, messageUc, notifications, cfg, log)
	srv := handler.Server()

	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	sweeper.Stop()
	notifications.Wait()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracing shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server exited")
}
