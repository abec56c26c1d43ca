package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Storage    StorageConfig
	Media      MediaConfig
	HTTPClient HTTPClientConfig
}

type AppConfig struct {
	Name        string `env:"APP_NAME" env-default:"Song Blog"`
	Environment string `env:"APP_ENV" env-default:"development"` // development, production
	Port        string `env:"APP_PORT" env-default:"8080"`
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL" env-required:"true"`

	MaxConns        int32         `env:"DB_MAX_CONNS" env-default:"10"`
	MinConns        int32         `env:"DB_MIN_CONNS" env-default:"1"`
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" env-default:"30m"`
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" env-default:"5m"`
	ConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"10s"`
	MaxRetries      int           `env:"DB_MAX_RETRIES" env-default:"5"`
	RetryDelay      time.Duration `env:"DB_RETRY_DELAY" env-default:"1s"`

	// Migrate chạy goose migrations lúc startup
	Migrate bool `env:"DB_MIGRATE" env-default:"true"`
}

type RedisConfig struct {
	Host     string        `env:"REDIS_HOST" env-default:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD" env-default:""`
	DB       int           `env:"REDIS_DB" env-default:"0"`
	UserTTL  time.Duration `env:"USER_CACHE_TTL" env-default:"15m"`
}

// StorageConfig giữ credential blob của object storage.
// STORAGE_CREDENTIALS là JSON, được parse vào MinIO trong Validate.
type StorageConfig struct {
	Credentials string `env:"STORAGE_CREDENTIALS" env-required:"true"`

	MinIO MinIOConfig
}

type MinIOConfig struct {
	Endpoint      string `json:"endpoint"`        // localhost:9000
	AccessKey     string `json:"access_key"`      // minioadmin
	SecretKey     string `json:"secret_key"`      // minioadmin
	Bucket        string `json:"bucket"`          // songblog
	UseSSL        bool   `json:"use_ssl"`         // false for local
	PublicBaseURL string `json:"public_base_url"` // optional CDN / public bucket URL
}

type MediaConfig struct {
	// SongCoverKey là fixed media slot: mọi cover đều ghi đè object này
	SongCoverKey string `env:"MEDIA_SONG_COVER_KEY" env-default:"songs/cover"`
	MaxBytes     int64  `env:"MEDIA_MAX_BYTES" env-default:"5242880"` // 5MB
}

type HTTPClientConfig struct {
	Timeout         time.Duration `env:"HTTP_CLIENT_TIMEOUT" env-default:"10s"`
	SpotifyOEmbed   string        `env:"SPOTIFY_OEMBED_URL" env-default:"https://open.spotify.com/oembed"`
	ScrapeUserAgent string        `env:"SCRAPE_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"`
}

// WorkerConfig chỉ dùng cho cmd/worker (không cần DB hay storage)
type WorkerConfig struct {
	Redis         RedisConfig
	HTTPClient    HTTPClientConfig
	KeepaliveCron string `env:"KEEPALIVE_CRON" env-default:"*/10 * * * *"`
	KeepaliveURL  string `env:"KEEPALIVE_URL" env-default:"http://localhost:8080"`
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadWorker đọc config cho background worker
func LoadWorker() (*WorkerConfig, error) {
	cfg := &WorkerConfig{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if strings.TrimSpace(cfg.KeepaliveURL) == "" {
		return nil, fmt.Errorf("KEEPALIVE_URL must not be empty")
	}
	return cfg, nil
}

// LoadDatabaseConfig chỉ đọc database section (dùng cho cmd/useradd)
func LoadDatabaseConfig() (DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read database env: %w", err)
	}
	if strings.TrimSpace(cfg.URL) == "" {
		return cfg, fmt.Errorf("DATABASE_URL must be set")
	}
	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không và parse storage credential blob
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if strings.TrimSpace(c.Storage.Credentials) == "" {
		return fmt.Errorf("STORAGE_CREDENTIALS must be set")
	}

	var minioCfg MinIOConfig
	if err := json.Unmarshal([]byte(c.Storage.Credentials), &minioCfg); err != nil {
		return fmt.Errorf("STORAGE_CREDENTIALS is not valid JSON: %w", err)
	}
	switch {
	case minioCfg.Endpoint == "":
		return fmt.Errorf("STORAGE_CREDENTIALS: endpoint is required")
	case minioCfg.AccessKey == "" || minioCfg.SecretKey == "":
		return fmt.Errorf("STORAGE_CREDENTIALS: access_key and secret_key are required")
	case minioCfg.Bucket == "":
		return fmt.Errorf("STORAGE_CREDENTIALS: bucket is required")
	}
	c.Storage.MinIO = minioCfg

	if strings.TrimSpace(c.Media.SongCoverKey) == "" {
		return fmt.Errorf("MEDIA_SONG_COVER_KEY must not be empty")
	}
	if c.Media.MaxBytes <= 0 {
		return fmt.Errorf("MEDIA_MAX_BYTES must be positive")
	}
	if c.HTTPClient.Timeout <= 0 {
		return fmt.Errorf("HTTP_CLIENT_TIMEOUT must be positive")
	}

	return nil
}

// IsProduction trả về true khi APP_ENV=production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
