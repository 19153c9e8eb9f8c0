package verifier

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"verifier/pkg/domain"
)

// JobArgs describes a verification retry submitted to River after a
// transient pipeline failure. Topic, ID and Path together form the unique
// key so one stuck document never piles up duplicate jobs.
type JobArgs struct {
	// Topic is the request topic the message arrived on; it selects the
	// pipeline the worker re-runs.
	Topic string `json:"topic" river:"unique"`
	// ID is the requesting member's id, as received.
	ID string `json:"id" river:"unique"`
	// Path is the document image URL.
	Path string `json:"path" river:"unique"`

	// maxAttempts configures how many times River retries the job before the
	// worker answers with the internal-error response.
	maxAttempts int
	// uniqueJobPeriod is the lookback window during which an identical
	// request is considered a duplicate.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the
// verification worker.
func (args JobArgs) Kind() string { return "VerifyDocumentJob" }

// Request rebuilds the inbound request the job was queued for.
func (args JobArgs) Request() domain.VerificationRequest {
	return domain.VerificationRequest{ID: args.ID, Path: args.Path}
}

// InsertOpts returns the River options controlling retries and uniqueness.
// Completed jobs are excluded from the uniqueness window so a re-uploaded
// document is verified again.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
