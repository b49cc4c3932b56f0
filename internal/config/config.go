package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`      // current application environment (local, dev, prod etc)
	TelegramAPIToken string   `mapstructure:"-"`        // Telegram API token loaded from environment
	JService         JService `mapstructure:"jservice"` // remote trivia service section
	Game             Game     `mapstructure:"game"`     // board dimensions and sampling section
}

// JService contains settings for the remote trivia API.
type JService struct {
	BaseURL string        `mapstructure:"base_url"` // root URL of the trivia service
	Timeout time.Duration `mapstructure:"timeout"`  // per-request HTTP timeout
}

// Game contains board dimensions and category sampling parameters.
type Game struct {
	CategoryCount    int `mapstructure:"category_count"`     // categories per board
	PoolSize         int `mapstructure:"pool_size"`          // candidate categories requested from the service
	CluesPerCategory int `mapstructure:"clues_per_category"` // clues kept per category
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("jservice.base_url", "https://jservice.io")
	v.SetDefault("jservice.timeout", "15s")
	v.SetDefault("game.category_count", 6)
	v.SetDefault("game.pool_size", 100)
	v.SetDefault("game.clues_per_category", 5)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Game.PoolSize < cfg.Game.CategoryCount {
		return nil, fmt.Errorf("game.pool_size (%d) must be at least game.category_count (%d)",
			cfg.Game.PoolSize, cfg.Game.CategoryCount)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}
