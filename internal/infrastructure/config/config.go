package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	// TokenTTL bounds access-token lifetime; tokens are never renewed.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`
	// EncryptionKey seals stored email credentials. Losing it orphans
	// every credential on file.
	EncryptionKey string `env:"ENCRYPTION_KEY"`
	LogLevel      string `env:"LOG_LEVEL, default=info"`

	SMTP    SMTPConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Storage StorageConfig
}

type SMTPConfig struct {
	Host        string        `env:"SMTP_HOST,          default=smtp.gmail.com"`
	Port        int           `env:"SMTP_PORT,          default=587"`
	DialTimeout time.Duration `env:"SMTP_DIAL_TIMEOUT,  default=30s"`
	// Workers bounds concurrent SMTP sessions per bulk-send request.
	Workers      int           `env:"SMTP_WORKERS,       default=4"`
	PreflightTTL time.Duration `env:"SMTP_PREFLIGHT_TTL, default=10m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=outreach_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type StorageConfig struct {
	// Backend selects where resumes live: "local" or "minio".
	Backend  string `env:"STORAGE_BACKEND,  default=local"`
	LocalDir string `env:"STORAGE_LOCAL_DIR, default=./uploads"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET, default=resumes"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	if cfg.EncryptionKey == "" {
		return nil, fmt.Errorf("config: ENCRYPTION_KEY is required")
	}
	return &cfg, nil
}
