package config

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/golobby/config/v3"
	"github.com/golobby/config/v3/pkg/feeder"
	"github.com/joho/godotenv"

	"github.com/marcus-crane/steamr/utils"
)

type Config struct {
	Pushover PushoverConfig
	Steam    SteamConfig
	Steamr   SteamrConfig
}

type PushoverConfig struct {
	Recipient string `env:"PUSHOVER_RECIPIENT"`
	Token     string `env:"PUSHOVER_TOKEN"`
}

type SteamConfig struct {
	Token       string `env:"STEAM_TOKEN"`
	SteamID     string `env:"STEAM_ID"`
	WatchedApps string `env:"STEAM_WATCHED_APPS"`
	NewsCount   int    `env:"STEAM_NEWS_COUNT"`
}

type SteamrConfig struct {
	BackgroundJobsEnabled bool   `env:"STEAMR_BACKGROUND_JOBS_ENABLED"`
	DbPath                string `env:"STEAMR_DB_PATH"`
	ListenAddr            string `env:"STEAMR_LISTEN_ADDR"`
	LogLevel              string `env:"STEAMR_LOG_LEVEL"`
	WebhookSecret         string `env:"STEAMR_WEBHOOK_SECRET"`
}

func defaults() Config {
	return Config{
		Steam: SteamConfig{
			NewsCount: 5,
		},
		Steamr: SteamrConfig{
			BackgroundJobsEnabled: true,
			DbPath:                "steamr.db",
			ListenAddr:            ":8080",
			LogLevel:              "info",
		},
	}
}

// Load reads a .env file if one is present and then fills a Config from
// the environment. Unset variables keep their defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", slog.String("error", err.Error()))
	}

	cfg := defaults()
	c := config.New().AddFeeder(feeder.Env{}).AddStruct(&cfg)
	if err := c.Feed(); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Steamr.DbPath == "" {
		return Config{}, fmt.Errorf("STEAMR_DB_PATH must not be empty")
	}
	if cfg.Steam.NewsCount < 1 || cfg.Steam.NewsCount > math.MaxUint16 {
		return Config{}, fmt.Errorf("STEAM_NEWS_COUNT must be between 1 and %d, got %d", math.MaxUint16, cfg.Steam.NewsCount)
	}
	if _, err := cfg.WatchedApps(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WatchedApps returns the app IDs listed in STEAM_WATCHED_APPS.
func (c *Config) WatchedApps() ([]string, error) {
	apps := utils.SplitList(c.Steam.WatchedApps)
	for _, app := range apps {
		if _, err := strconv.ParseUint(app, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid app ID %q in STEAM_WATCHED_APPS", app)
		}
	}
	return apps, nil
}

func (c *Config) GetLogLevel() slog.Leveler {
	logLevel := strings.ToLower(c.Steamr.LogLevel)
	if logLevel == "error" {
		return slog.LevelError
	}
	if logLevel == "warning" || logLevel == "warn" {
		return slog.LevelWarn
	}
	if logLevel == "info" {
		return slog.LevelInfo
	}
	if logLevel == "debug" {
		return slog.LevelDebug
	}
	// default to info if unknown
	slog.With(slog.String("log_level", logLevel)).Info("Received invalid log level. Defaulting to INFO.")
	return slog.LevelInfo
}
