// Package config reads process configuration from the environment. A .env
// file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8080"
	defaultDriver      = "postgres"
	defaultRefreshCron = "@every 15m"
	defaultRPS         = 5
	defaultBurst       = 10
	defaultAdvisorWait = 30 * time.Second
	defaultRetries     = 2
)

type Config struct {
	Port     string
	DBDriver string
	DBURL    string

	PriceFile   string
	RefreshCron string

	RateLimitRPS   float64
	RateLimitBurst int

	AdvisorEndpoint string
	AdvisorAPIKey   string
	AdvisorModel    string
	AdvisorTimeout  time.Duration
	AdvisorRetries  int

	LogLevel string
	BotToken string
}

// Load reads the environment. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:            or(getenv("PORT"), defaultPort),
		DBDriver:        or(getenv("DB_DRIVER"), defaultDriver),
		DBURL:           getenv("DATABASE_URL"),
		PriceFile:       getenv("PRICE_FILE"),
		RefreshCron:     or(getenv("PRICE_REFRESH_CRON"), defaultRefreshCron),
		AdvisorEndpoint: getenv("ADVISOR_ENDPOINT"),
		AdvisorAPIKey:   getenv("ADVISOR_API_KEY"),
		AdvisorModel:    getenv("ADVISOR_MODEL"),
		LogLevel:        getenv("LOG_LEVEL"),
		BotToken:        getenv("TOKEN_BOT"),
	}

	var err error
	if cfg.RateLimitRPS, err = floatVar(getenv, "RATE_LIMIT_RPS", defaultRPS); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = intVar(getenv, "RATE_LIMIT_BURST", defaultBurst); err != nil {
		return Config{}, err
	}
	if cfg.AdvisorRetries, err = intVar(getenv, "ADVISOR_RETRIES", defaultRetries); err != nil {
		return Config{}, err
	}
	cfg.AdvisorTimeout = defaultAdvisorWait
	if v := getenv("ADVISOR_TIMEOUT"); v != "" {
		if cfg.AdvisorTimeout, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("ADVISOR_TIMEOUT: %w", err)
		}
	}
	return cfg, nil
}

// UseDatabase reports whether prices come from the database.
func (c Config) UseDatabase() bool {
	return c.DBURL != "" || c.DBDriver == "sqlite"
}

// UseAdvisor reports whether the time and manpower estimator is configured.
func (c Config) UseAdvisor() bool {
	return c.AdvisorEndpoint != ""
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func floatVar(getenv func(string) string, key string, def float64) (float64, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%s: want a positive number, got %q", key, v)
	}
	return f, nil
}

func intVar(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: want a non-negative integer, got %q", key, v)
	}
	return n, nil
}
