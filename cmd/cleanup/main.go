// Command cleanup purges time-cost entries whose request was deleted more
// than the configured retention period ago. It is intended to be invoked
// by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/worktrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/worktrack-backend/internal/adapter/postgres/timecost"
	"github.com/heartmarshall/worktrack-backend/internal/app"
	"github.com/heartmarshall/worktrack-backend/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	cutoff := time.Now().UTC().AddDate(0, 0, -cfg.Cleanup.OrphanRetentionDays)

	deleted, err := timecost.New(pool).DeleteOrphansOlderThan(ctx, cutoff)
	if err != nil {
		logger.Error("orphan cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("orphan cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)
}
