package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingToken = errors.New("TELEGRAM_BOT_TOKEN is required")

type Config struct {
	TelegramToken string

	LogLevel string
	Debug    bool

	PreferIPv4 bool
	WebAddr    string

	TextGroupDebounce time.Duration
	MaxConcurrent     int
	RequestTimeout    time.Duration
	HTTPTimeout       time.Duration
	MaxPhotoBytes     int64

	SessionTTL time.Duration

	RateLimitPerMinute int
	RateLimitBurst     int

	BatchMaxItems    int
	BatchConcurrency int
}

// Load reads the shared settings. It does not require the bot token, so the
// web server can start without one.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:           strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", "info"))),
		Debug:              getEnvBool("DEBUG", false),
		PreferIPv4:         getEnvBool("PREFER_IPV4", true),
		WebAddr:            getEnv("WEB_ADDR", ":8080"),
		TextGroupDebounce:  time.Duration(getEnvInt("TEXT_GROUP_DEBOUNCE_MS", 800)) * time.Millisecond,
		MaxConcurrent:      getEnvInt("MAX_CONCURRENT", 4),
		RequestTimeout:     time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 60)) * time.Second,
		HTTPTimeout:        time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 60)) * time.Second,
		MaxPhotoBytes:      int64(getEnvInt("MAX_PHOTO_BYTES", 10<<20)),
		SessionTTL:         time.Duration(getEnvInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 5),
		BatchMaxItems:      getEnvInt("BATCH_MAX_ITEMS", 20),
		BatchConcurrency:   getEnvInt("BATCH_CONCURRENCY", 4),
	}
	cfg.TelegramToken = strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))

	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return Config{}, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", cfg.LogLevel)
	}

	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 60 * time.Second
	}
	if cfg.TextGroupDebounce < 0 {
		cfg.TextGroupDebounce = 0
	}
	if cfg.MaxPhotoBytes <= 0 {
		cfg.MaxPhotoBytes = 10 << 20
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 120 * time.Minute
	}
	if cfg.RateLimitPerMinute < 1 {
		cfg.RateLimitPerMinute = 1
	}
	if cfg.RateLimitBurst < 1 {
		cfg.RateLimitBurst = 1
	}
	if cfg.BatchMaxItems < 1 {
		cfg.BatchMaxItems = 1
	}
	if cfg.BatchConcurrency < 1 {
		cfg.BatchConcurrency = 1
	}

	return cfg, nil
}

// LoadBot is Load plus the settings only the Telegram bot needs.
func LoadBot() (Config, error) {
	cfg, err := Load()
	if err != nil {
		return Config{}, err
	}
	if cfg.TelegramToken == "" {
		return Config{}, ErrMissingToken
	}
	return cfg, nil
}

// Level maps LOG_LEVEL to a slog level.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
