package api

import (
	"log/slog"
	"net/http"
	"time"

	authDelivery "chat-backend/internal/auth/delivery"
	authUsecase "chat-backend/internal/auth/usecase"
	messageDelivery "chat-backend/internal/message/delivery"
	messageUsecase "chat-backend/internal/message/usecase"
	"chat-backend/internal/notification"
	notificationDelivery "chat-backend/internal/notification/delivery"
	userDelivery "chat-backend/internal/user/delivery"
	userUsecase "chat-backend/internal/user/usecase"
	"chat-backend/pkg/config"
	"chat-backend/pkg/logger"
	"chat-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const serviceName = "chat-backend"

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	authHandler    *authDelivery.AuthHandler
	profileHandler *userDelivery.ProfileHandler
	messageHandler *messageDelivery.MessageHandler
	deviceHandler  *notificationDelivery.DeviceHandler
	authLimiter    *ratelimit.Limiter
	config         *config.Config
	log            *slog.Logger
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	profileUc userUsecase.ProfileUsecase,
	messageUc messageUsecase.MessageUsecase,
	notifications *notification.Service,
	cfg *config.Config,
	log *slog.Logger,
) *Handler {
	verbose := cfg.Verbose()

	return &Handler{
		authUsecase: authUc,
		authHandler: authDelivery.NewAuthHandler(authUc, cfg.IsProduction(), verbose),
		profileHandler: userDelivery.NewProfileHandler(profileUc, userDelivery.UploadConfig{
			Dir:      cfg.UploadDir,
			MaxBytes: cfg.UploadMaxBytes,
		}, verbose, log),
		messageHandler: messageDelivery.NewMessageHandler(messageUc, messageDelivery.UploadConfig{
			Dir:      cfg.UploadDir,
			MaxBytes: cfg.UploadMaxBytes,
		}, verbose, log),
		deviceHandler: notificationDelivery.NewDeviceHandler(notifications, verbose),
		authLimiter: ratelimit.New(ratelimit.Config{
			PerMinute: cfg.AuthRateLimitPerMinute,
			Burst:     cfg.AuthRateLimitBurst,
		}),
		config: cfg,
		log:    log,
	}
}

// Engine builds the gin engine with middleware and every route.
func (h *Handler) Engine() *gin.Engine {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Validate has already checked the entries.
	if err := r.SetTrustedProxies(h.config.TrustedProxies); err != nil {
		h.log.Error("trusted proxies", "error", err)
	}
	r.MaxMultipartMemory = h.config.UploadMaxBytes + 1<<20
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(h.log))
	r.Use(corsMiddleware(h.config.ClientOrigin))

	SetupRoutes(r, h)
	return r
}

// Server wraps the engine with tracing and timeouts.
func (h *Handler) Server() *http.Server {
	return &http.Server{
		Addr:              ":" + h.config.Port,
		Handler:           otelhttp.NewHandler(h.Engine(), serviceName),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// corsMiddleware admits credentialed requests from the configured frontend only.
func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && origin == allowedOrigin {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
			c.Writer.Header().Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
