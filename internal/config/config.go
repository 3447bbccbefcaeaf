package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// Config is resolved once at process start and passed by reference into every
// component that needs it. The backend selection flag is never re-evaluated
// per request.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Outbox   OutboxConfig
}

type ServerConfig struct {
	Port      int     `mapstructure:"port" envconfig:"SERVER_PORT"`
	RateLimit float64 `mapstructure:"rate_limit" envconfig:"SERVER_RATE_LIMIT"`
	RateBurst int     `mapstructure:"rate_burst" envconfig:"SERVER_RATE_BURST"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host" envconfig:"DB_HOST"`
	Port     int    `mapstructure:"port" envconfig:"DB_PORT"`
	User     string `mapstructure:"user" envconfig:"DB_USER"`
	Password string `mapstructure:"password" envconfig:"DB_PASSWORD"`
	Name     string `mapstructure:"name" envconfig:"DB_NAME"`
	SSLMode  string `mapstructure:"sslmode" envconfig:"DB_SSLMODE"`

	// LegacySchema selects the externally managed legacy layout instead of
	// the native one. Schema creation and seeding are skipped when set.
	LegacySchema bool `mapstructure:"legacy_schema" envconfig:"LEGACY_SCHEMA"`
	SeedDemoData bool `mapstructure:"seed_demo_data" envconfig:"SEED_DEMO_DATA"`
}

type RedisConfig struct {
	// URL enables the outbox event publisher when non-empty.
	URL string `mapstructure:"url" envconfig:"REDIS_URL"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host" envconfig:"SMTP_HOST"`
	Port     int    `mapstructure:"port" envconfig:"SMTP_PORT"`
	User     string `mapstructure:"user" envconfig:"SMTP_USER"`
	Password string `mapstructure:"password" envconfig:"SMTP_PASSWORD"`
	From     string `mapstructure:"from" envconfig:"SMTP_FROM"`
	NotifyTo string `mapstructure:"notify_to" envconfig:"SMTP_NOTIFY_TO"`
}

type OutboxConfig struct {
	BatchSize     int `mapstructure:"batch_size" envconfig:"OUTBOX_BATCH_SIZE"`
	PollSeconds   int `mapstructure:"poll_seconds" envconfig:"OUTBOX_POLL_SECONDS"`
	RetryAttempts int `mapstructure:"retry_attempts" envconfig:"OUTBOX_RETRY_ATTEMPTS"`
}

// LoadConfig reads the optional config file and then overlays environment
// variables (prefix BLOODBANK_), which take precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("bloodbank", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 4000)
	viper.SetDefault("server.rate_limit", 50.0)
	viper.SetDefault("server.rate_burst", 100)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.name", "bloodbank")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.legacy_schema", false)
	viper.SetDefault("database.seed_demo_data", true)
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("outbox.batch_size", 50)
	viper.SetDefault("outbox.poll_seconds", 5)
	viper.SetDefault("outbox.retry_attempts", 3)
}
