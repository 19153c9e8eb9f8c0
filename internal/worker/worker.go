// Package worker runs the background retry queue. Verifications that failed
// on a transient error are queued by the consumer and re-run here until they
// decide, or until attempts run out and the internal-error response is
// published.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"verifier/internal/verifier"
	"verifier/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Start registers the verification worker and launches the River client on
// the given pool.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	v verifier.Verifier,
	maxWorkers int) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewVerificationWorker(v))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
