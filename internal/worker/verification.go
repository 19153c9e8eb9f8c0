package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"verifier/internal/verifier"
	"verifier/pkg/domain"
	"verifier/pkg/logger"
	"verifier/pkg/serrors"
)

// rateLimitSnooze is how long a job sleeps after an upstream rate limit.
// None of the collaborators report a reset time, so a flat backoff is used.
const rateLimitSnooze = time.Minute

// VerificationWorker re-runs document verifications that previously failed
// on a transient error. A run that decides the request publishes its own
// response; on the final failed attempt the worker publishes the
// internal-error response before letting River discard the job.
type VerificationWorker struct {
	river.WorkerDefaults[verifier.JobArgs]

	verifier verifier.Verifier
}

// NewVerificationWorker constructs a VerificationWorker around v.
func NewVerificationWorker(v verifier.Verifier) *VerificationWorker {
	return &VerificationWorker{verifier: v}
}

// Work executes one retry attempt, dispatching by the topic the original
// message arrived on.
func (w *VerificationWorker) Work(ctx context.Context, job *river.Job[verifier.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("topic", job.Args.Topic),
		zap.String("userId", job.Args.ID))

	req := job.Args.Request()

	var err error
	switch job.Args.Topic {
	case domain.TopicCertificateRequest:
		err = w.verifier.ProcessCertificate(ctx, req)
	default:
		err = w.verifier.ProcessLicense(ctx, req)
	}
	if err == nil {
		logger.Info(ctx, "verification retry succeeded")

		return nil
	}

	logger.Error(ctx, "verification retry failed", zap.Error(err))

	if errors.Is(err, serrors.ErrRateLimited) && job.Attempt < job.MaxAttempts {
		return river.JobSnooze(rateLimitSnooze) //nolint: wrapcheck
	}

	if job.Attempt >= job.MaxAttempts {
		// last attempt: the request still deserves an answer before the job
		// is discarded
		if pubErr := w.verifier.PublishFailure(ctx, job.Args.Topic, req); pubErr != nil {
			logger.Error(ctx, "could not publish failure response", zap.Error(pubErr))
		}
	}

	return fmt.Errorf("could not verify document: %w", err)
}
