package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sihle-Thwa/PortfolioV2/internal/config"
	"github.com/Sihle-Thwa/PortfolioV2/internal/logging"
	"github.com/Sihle-Thwa/PortfolioV2/internal/ratelimit"
	"github.com/Sihle-Thwa/PortfolioV2/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Configure and get logger
	if err := logging.InitLogger(&logging.Config{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	if missing := cfg.MissingSMTPVars(); len(missing) > 0 {
		// Start anyway: the pipeline reports the configuration error per
		// request, and the health endpoint makes it visible to monitoring.
		logger.Error("SMTP configuration incomplete, contact pipeline disabled: %v", missing)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Rate-limit state is process-local; the janitor bounds its memory
	limiter := ratelimit.NewStore()
	limiter.StartJanitor(ctx, 10*time.Minute, cfg.RateLimitEmailWindow)
	logger.Info("Started rate limit janitor")

	srv := server.NewServer(cfg, limiter)
	srv.Init()

	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
