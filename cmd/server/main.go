package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/angelcm/ads-insights-go/internal/config"
	"github.com/angelcm/ads-insights-go/internal/gads"
	"github.com/angelcm/ads-insights-go/internal/httpx"
	"github.com/angelcm/ads-insights-go/internal/memory"
	"github.com/angelcm/ads-insights-go/internal/service"
)

func main() {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	var mem memory.Log
	if cfg.MemoryDBPath != "" {
		bl, err := memory.OpenBolt(cfg.MemoryDBPath)
		if err != nil {
			logger.Error("opening memory db", slog.String("err", err.Error()))
			os.Exit(1)
		}
		defer bl.Close()
		mem = bl
	} else {
		logger.Warn("MEMORY_DB_PATH not set, recommendation log is in-memory only")
		mem = memory.NewMemLog()
	}

	cl := gads.NewClient(cfg.AdsAPIURL, cfg.DevToken, cfg.HTTPTimeout, cfg.RateLimitQPS, logger)
	svc := service.New(cl, mem, logger)

	r := httpx.NewRouter(logger, svc, mem, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
