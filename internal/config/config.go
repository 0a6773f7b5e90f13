package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr     string
	DBPath         string
	LogLevel       string
	LogFile        string
	MaxUploadBytes int64
	CORSOrigin     string
	AuthEnabled    bool
	TokenTTL       time.Duration
	RabbitMQURL    string
	RabbitMQQueue  string
}

// Load reads configuration from the environment. When CONFIG_FILE names a
// file, its values are used for keys the environment does not set.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("DB_PATH", "/data/citygrid.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	v.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "utility_imports")
	v.AutomaticEnv()

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		ListenAddr:     v.GetString("LISTEN_ADDR"),
		DBPath:         v.GetString("DB_PATH"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFile:        v.GetString("LOG_FILE"),
		MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
		CORSOrigin:     v.GetString("CORS_ORIGIN"),
		AuthEnabled:    v.GetBool("AUTH_ENABLED"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:  v.GetString("RABBITMQ_QUEUE"),
	}

	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", cfg.MaxUploadBytes)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}

	return cfg, nil
}
