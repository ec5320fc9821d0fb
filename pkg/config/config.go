package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	minSecretLength = 16
)

var ErrWeakSecret = errors.New("JWT_SECRET must be at least 16 characters")

type Config struct {
	Port          string        `envconfig:"PORT" default:"5001"`
	Env           string        `envconfig:"NODE_ENV" default:"development"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
	ClientOrigin  string        `envconfig:"CLIENT_ORIGIN" default:"http://localhost:5173"`
	DatabaseURL   string        `envconfig:"DATABASE_URL" required:"true"`
	DBConnTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"20s"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiry time.Duration `envconfig:"JWT_EXPIRY" default:"168h"` // 7 days

	UploadDir           string        `envconfig:"UPLOAD_DIR" default:"uploads"`
	UploadMaxBytes      int64         `envconfig:"UPLOAD_MAX_BYTES" default:"5242880"`
	UploadSweepInterval time.Duration `envconfig:"UPLOAD_SWEEP_INTERVAL" default:"10m"`
	UploadMaxAge        time.Duration `envconfig:"UPLOAD_MAX_AGE" default:"1h"`

	S3Bucket        string `envconfig:"S3_BUCKET" default:"chat-images"`
	S3Region        string `envconfig:"S3_REGION" default:"us-east-1"`
	S3Endpoint      string `envconfig:"S3_ENDPOINT" default:"http://127.0.0.1:9000"`
	S3AccessKey     string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey     string `envconfig:"S3_SECRET_KEY"`
	S3PublicBaseURL string `envconfig:"S3_PUBLIC_BASE_URL" default:"http://127.0.0.1:9000/chat-images"`

	FirebaseCredentials string `envconfig:"FIREBASE_CREDENTIALS"`

	AuthRateLimitPerMinute int `envconfig:"AUTH_RATE_LIMIT_PER_MIN" default:"30"`
	AuthRateLimitBurst     int `envconfig:"AUTH_RATE_LIMIT_BURST" default:"10"`

	// TrustedProxies lists IPs or CIDRs allowed to set X-Forwarded-For.
	// Empty means the peer address is the client IP.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

// Load reads an optional .env file and binds the environment onto Config.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	if len(c.JWTSecret) < minSecretLength {
		return ErrWeakSecret
	}
	if c.JWTExpiry <= 0 {
		return fmt.Errorf("config: JWT_EXPIRY must be positive, got %s", c.JWTExpiry)
	}
	switch c.Env {
	case EnvDevelopment, EnvProduction, "test":
	default:
		return fmt.Errorf("config: unknown NODE_ENV %q", c.Env)
	}
	for _, proxy := range c.TrustedProxies {
		if !validProxy(proxy) {
			return fmt.Errorf("config: invalid TRUSTED_PROXIES entry %q", proxy)
		}
	}
	return nil
}

func validProxy(proxy string) bool {
	if _, _, err := net.ParseCIDR(proxy); err == nil {
		return true
	}
	return net.ParseIP(proxy) != nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Verbose reports whether internal error details may be sent to clients.
func (c *Config) Verbose() bool {
	return c.Env == EnvDevelopment
}
