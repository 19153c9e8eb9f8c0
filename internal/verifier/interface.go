// Package verifier implements the per-document verification pipelines. A
// pipeline takes one inbound request, runs fetch, rectification, text
// recognition, field normalization and registry validation, then publishes
// exactly one response for every decided outcome. Transient failures are
// handed to a retry queue instead of being answered immediately.
package verifier

import (
	"context"

	"verifier/pkg/domain"
)

// Verifier runs the verification pipeline for inbound requests.
//
//go:generate mockgen -package mockverifier -source=interface.go -destination=mock/mockverifier.go *
type Verifier interface {
	// HandleLicense runs the business license pipeline and decides the
	// request's fate: a published response, or a queued retry job when the
	// failure is transient.
	HandleLicense(ctx context.Context, req domain.VerificationRequest) error
	// HandleCertificate does the same for trainer certificates.
	HandleCertificate(ctx context.Context, req domain.VerificationRequest) error

	// ProcessLicense runs the license pipeline exactly once. Decided
	// outcomes, including terminal failures, publish their response and
	// return nil; transient failures are returned to the caller undecided so
	// it can schedule a retry.
	ProcessLicense(ctx context.Context, req domain.VerificationRequest) error
	// ProcessCertificate is the single-attempt certificate pipeline.
	ProcessCertificate(ctx context.Context, req domain.VerificationRequest) error

	// PublishFailure emits the internal-error response for a request whose
	// retries are exhausted.
	PublishFailure(ctx context.Context, topic string, req domain.VerificationRequest) error
}
