package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AdsAPIURL      string
	DevToken       string
	Port           string
	HTTPTimeout    time.Duration
	LogLevel       slog.Level
	MemoryDBPath   string
	RateLimitQPS   float64
	AllowedOrigins []string
}

func FromEnv() Config {
	// .env es opcional; las variables reales tienen prioridad
	_ = godotenv.Load()

	to := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	qps := 5.0
	if v := os.Getenv("RATE_LIMIT_QPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			qps = f
		}
	}
	var origins []string
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return Config{
		AdsAPIURL:      os.Getenv("ADS_API_URL"),
		DevToken:       os.Getenv("ADS_DEV_TOKEN"),
		Port:           envOr("PORT", "8080"),
		HTTPTimeout:    to,
		LogLevel:       lvl,
		MemoryDBPath:   os.Getenv("MEMORY_DB_PATH"),
		RateLimitQPS:   qps,
		AllowedOrigins: origins,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
