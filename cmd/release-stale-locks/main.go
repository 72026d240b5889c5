// Command release-stale-locks clears change-set locks whose holder has been
// idle longer than the review lock timeout. Acquire already treats such
// locks as free; this job only tidies the lock view for reviewers. It is
// intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres/changeset"
	"github.com/heartmarshall/minutes-backend/internal/app"
	"github.com/heartmarshall/minutes-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := changeset.New(pool)

	now := time.Now().UTC()
	staleBefore := now.Add(-cfg.Review.LockTimeout)

	released, err := repo.ReleaseStale(ctx, staleBefore, now)
	if err != nil {
		logger.Error("release stale locks failed",
			slog.String("error", err.Error()),
			slog.Time("stale_before", staleBefore),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("stale locks released",
		slog.Int64("released", released),
		slog.Time("stale_before", staleBefore),
	)
}
