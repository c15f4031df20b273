package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	HyperionBaseURL        string        `mapstructure:"hyperion_base_url"`
	HyperionTimeoutSeconds int64         `mapstructure:"hyperion_timeout_seconds"`
	HyperionUserAgent      string        `mapstructure:"hyperion_user_agent"`
	HyperionTimeout        time.Duration `mapstructure:"-"`

	QueriesFile         string        `mapstructure:"queries_file"`
	PublishersFile      string        `mapstructure:"publishers_file"`
	PollIntervalSeconds int64         `mapstructure:"poll_interval"`
	PollInterval        time.Duration `mapstructure:"-"`
	RateLimitRPS        float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst      int           `mapstructure:"rate_limit_burst"`

	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	StorageTTLSeconds      int64         `mapstructure:"storage_ttl_seconds"`
	StorageCleanupSeconds  int64         `mapstructure:"storage_cleanup_interval_seconds"`
	StorageTTL             time.Duration `mapstructure:"-"`
	StorageCleanupInterval time.Duration `mapstructure:"-"`

	// MetricsAddr enables the /metrics listener when non-empty.
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "hyperion-watch")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("hyperion_base_url", "https://api.wax.liquidstudios.io")
	v.SetDefault("hyperion_timeout_seconds", 30)
	v.SetDefault("hyperion_user_agent", "hyperion-client/1.0")
	v.SetDefault("queries_file", "./configs/queries.yaml")
	v.SetDefault("publishers_file", "./configs/publishers.yaml")
	v.SetDefault("poll_interval", 60) // seconds
	v.SetDefault("rate_limit_rps", 5.0)
	v.SetDefault("rate_limit_burst", 1)
	v.SetDefault("storage_type", "bbolt")
	v.SetDefault("bbolt_path", "./data/snapshots.db")
	v.SetDefault("storage_ttl_seconds", int64((7*24*time.Hour)/time.Second))
	v.SetDefault("storage_cleanup_interval_seconds", int64((12*time.Hour)/time.Second))
	v.SetDefault("metrics_addr", "")
}

func (cfg *Config) finalize() error {
	if cfg.HyperionBaseURL == "" {
		return fmt.Errorf("hyperion_base_url must not be empty")
	}
	if cfg.HyperionTimeoutSeconds <= 0 {
		return fmt.Errorf("invalid hyperion_timeout_seconds (must be positive seconds)")
	}
	cfg.HyperionTimeout = time.Duration(cfg.HyperionTimeoutSeconds) * time.Second

	if cfg.PollIntervalSeconds <= 0 {
		return fmt.Errorf("invalid poll_interval (must be positive seconds)")
	}
	cfg.PollInterval = time.Duration(cfg.PollIntervalSeconds) * time.Second

	if cfg.RateLimitRPS <= 0 {
		return fmt.Errorf("invalid rate_limit_rps (must be positive)")
	}
	if cfg.RateLimitBurst <= 0 {
		return fmt.Errorf("invalid rate_limit_burst (must be positive)")
	}

	if cfg.StorageTTLSeconds <= 0 {
		return fmt.Errorf("invalid storage_ttl_seconds (must be positive seconds)")
	}
	if cfg.StorageCleanupSeconds <= 0 {
		return fmt.Errorf("invalid storage_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.StorageTTL = time.Duration(cfg.StorageTTLSeconds) * time.Second
	cfg.StorageCleanupInterval = time.Duration(cfg.StorageCleanupSeconds) * time.Second
	return nil
}
