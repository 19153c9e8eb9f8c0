package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strconv"
	"time"

	_ "image/gif"
	_ "image/jpeg"

	"go.uber.org/zap"

	"verifier/internal/config"
	"verifier/internal/docscan"
	"verifier/internal/fields"
	"verifier/internal/match"
	"verifier/pkg/bizregistry"
	"verifier/pkg/broker"
	"verifier/pkg/certregistry"
	"verifier/pkg/domain"
	"verifier/pkg/imagefetch"
	"verifier/pkg/logger"
	"verifier/pkg/ocr"
	"verifier/pkg/serrors"
	"verifier/pkg/storage"
)

// Options configure retry behavior for transient failures.
type Options struct {
	// MaxAttempts is how many times the background worker re-runs a failed
	// verification before answering with the internal-error response.
	MaxAttempts int
	// RetryUniquePeriod is the window during which an identical request is
	// deduplicated in the retry queue.
	RetryUniquePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:       cfg.Verifier.MaxAttempts,
		RetryUniquePeriod: cfg.Verifier.RetryUniquePeriod,
	}
}

// Dependencies are the collaborators one pipeline run touches.
type Dependencies struct {
	Fetcher           imagefetch.Fetcher
	OCR               ocr.Client
	BizRegistry       bizregistry.Client
	CertRegistry      certregistry.Client
	Publisher         broker.Publisher
	Storage           storage.Storage
	Resolver          *match.Resolver
	LicenseFields     *fields.Normalizer
	CertificateFields *fields.Normalizer
}

// verifier is the concrete Verifier. It owns no state of its own; every
// request is processed independently.
type verifier struct {
	options Options
	deps    Dependencies
}

// New creates a Verifier from its collaborators.
func New(deps Dependencies, options Options) Verifier {
	return &verifier{options: options, deps: deps}
}

// HandleLicense runs the license pipeline and queues a retry job when the
// failure is transient. Errors escaping here mean the request itself was
// unusable; the caller logs and drops it.
func (v *verifier) HandleLicense(ctx context.Context, req domain.VerificationRequest) error {
	return v.handle(ctx, domain.TopicLicenseRequest, req, v.ProcessLicense)
}

// HandleCertificate is HandleLicense for trainer certificates.
func (v *verifier) HandleCertificate(ctx context.Context, req domain.VerificationRequest) error {
	return v.handle(ctx, domain.TopicCertificateRequest, req, v.ProcessCertificate)
}

func (v *verifier) handle(ctx context.Context,
	topic string,
	req domain.VerificationRequest,
	process func(context.Context, domain.VerificationRequest) error) error {
	err := process(ctx, req)
	if err == nil {
		return nil
	}
	if !Retryable(err) {
		return fmt.Errorf("could not process request: %w", err)
	}

	logger.Warn(ctx, "transient verification failure, queueing retry", zap.Error(err))

	// the message context may already be expired; the retry decision and the
	// fallback response must still go out
	ctx = context.WithoutCancel(ctx)
	if _, qErr := v.deps.Storage.AddJob(ctx, JobArgs{
		Topic:           topic,
		ID:              req.ID,
		Path:            req.Path,
		maxAttempts:     v.options.MaxAttempts,
		uniqueJobPeriod: v.options.RetryUniquePeriod,
	}, nil); qErr != nil {
		logger.Error(ctx, "could not queue retry job", zap.Error(qErr))

		return v.PublishFailure(ctx, topic, req)
	}

	return nil
}

// ProcessLicense runs the license pipeline once. See Verifier for the
// outcome contract.
func (v *verifier) ProcessLicense(ctx context.Context, req domain.VerificationRequest) error {
	userID, err := strconv.Atoi(req.ID)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid correlation id %q", req.ID)
	}

	fieldMap, err := v.recognize(ctx, req.Path, v.deps.LicenseFields)
	if err != nil {
		return v.settleLicense(ctx, userID, err)
	}

	status, err := v.deps.BizRegistry.Validate(ctx, fieldMap)
	if err != nil {
		return v.settleLicense(ctx, userID, err)
	}

	switch status {
	case bizregistry.StatusActive:
		gym, err := v.deps.Resolver.Resolve(ctx,
			fieldMap.Get(domain.FieldBusinessName), fieldMap.Get(domain.FieldAddress))
		if err != nil {
			return v.settleLicense(ctx, userID, err)
		}

		var gymID *int
		if gym != nil {
			id := int(gym.ID)
			gymID = &id
		}

		return v.publishLicense(ctx, userID, gymID, domain.StatusRegistered)
	case bizregistry.StatusDeregistered:
		return v.publishLicense(ctx, userID, nil, domain.StatusDeregistered)
	default:
		return v.publishLicense(ctx, userID, nil, domain.StatusInvalid)
	}
}

// ProcessCertificate runs the certificate pipeline once. A credential the
// authority does not recognize is a decided failure, not an error.
func (v *verifier) ProcessCertificate(ctx context.Context, req domain.VerificationRequest) error {
	userID, err := strconv.Atoi(req.ID)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid correlation id %q", req.ID)
	}

	fieldMap, err := v.recognize(ctx, req.Path, v.deps.CertificateFields)
	if err != nil {
		return v.settleCertificate(ctx, userID, req, err)
	}

	certNumber := fieldMap.Get(domain.FieldCertNumber)
	holder := fieldMap.Get(domain.FieldCertHolder)
	if certNumber == "" || holder == "" {
		logger.Info(ctx, "certificate fields unresolved",
			zap.Bool("certNumber", certNumber != ""), zap.Bool("holder", holder != ""))

		return v.publishCertificate(ctx, domain.CertificateResponse{
			Status: domain.CertStatusFail,
			ID:     userID,
			Path:   req.Path,
		})
	}

	cert, err := v.deps.CertRegistry.Lookup(ctx, certNumber, holder)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return v.publishCertificate(ctx, domain.CertificateResponse{
				Status: domain.CertStatusFail,
				ID:     userID,
				Path:   req.Path,
			})
		}

		return v.settleCertificate(ctx, userID, req, err)
	}

	return v.publishCertificate(ctx, domain.CertificateResponse{
		Status:     domain.CertStatusSuccess,
		CertNumber: cert.CertNumber,
		Name:       cert.Name,
		Level:      cert.Level,
		ID:         userID,
		Path:       req.Path,
	})
}

// PublishFailure emits the internal-error response for req on the response
// topic paired with the given request topic.
func (v *verifier) PublishFailure(ctx context.Context, topic string, req domain.VerificationRequest) error {
	userID, err := strconv.Atoi(req.ID)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid correlation id %q", req.ID)
	}

	if topic == domain.TopicCertificateRequest {
		return v.publishCertificate(ctx, domain.CertificateResponse{
			Status: domain.CertStatusFail,
			ID:     userID,
			Path:   req.Path,
		})
	}

	return v.publishLicense(ctx, userID, nil, domain.StatusInternal)
}

// recognize runs the shared front half of both pipelines: download the
// image, rectify it, recognize text and normalize the fields.
func (v *verifier) recognize(ctx context.Context,
	path string,
	normalizer *fields.Normalizer) (domain.FieldMap, error) {
	raw, err := v.deps.Fetcher.Fetch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not fetch document image: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not decode document image")
	}

	rectified, err := docscan.Rectify(img)
	if err != nil {
		return nil, fmt.Errorf("could not rectify document: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rectified); err != nil {
		return nil, fmt.Errorf("could not encode rectified image: %w", err)
	}

	text, err := v.deps.OCR.Recognize(ctx, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("could not recognize text: %w", err)
	}

	fieldMap, err := normalizer.Normalize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("could not normalize fields: %w", err)
	}

	return fieldMap, nil
}

// settleLicense decides a failed license pipeline run: transient errors go
// back to the caller, anything else is answered with the internal-error
// status.
func (v *verifier) settleLicense(ctx context.Context, userID int, err error) error {
	if Retryable(err) {
		return err
	}

	logger.Warn(ctx, "license verification failed", zap.Error(err))

	return v.publishLicense(context.WithoutCancel(ctx), userID, nil, domain.StatusInternal)
}

func (v *verifier) settleCertificate(ctx context.Context,
	userID int,
	req domain.VerificationRequest,
	err error) error {
	if Retryable(err) {
		return err
	}

	logger.Warn(ctx, "certificate verification failed", zap.Error(err))

	return v.publishCertificate(context.WithoutCancel(ctx), domain.CertificateResponse{
		Status: domain.CertStatusFail,
		ID:     userID,
		Path:   req.Path,
	})
}

func (v *verifier) publishLicense(ctx context.Context, userID int, gymID *int, message string) error {
	body, err := json.Marshal(domain.LicenseResponse{
		UserID:  userID,
		GymID:   gymID,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("could not marshal license response: %w", err)
	}

	if err := v.deps.Publisher.Publish(ctx, domain.TopicLicenseResponse, body); err != nil {
		return fmt.Errorf("could not publish license response: %w", err)
	}

	logger.Info(ctx, "license response published",
		zap.Int("userId", userID), zap.String("status", message))

	return nil
}

func (v *verifier) publishCertificate(ctx context.Context, resp domain.CertificateResponse) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("could not marshal certificate response: %w", err)
	}

	if err := v.deps.Publisher.Publish(ctx, domain.TopicCertificateResponse, body); err != nil {
		return fmt.Errorf("could not publish certificate response: %w", err)
	}

	logger.Info(ctx, "certificate response published",
		zap.Int("userId", resp.ID), zap.String("status", resp.Status))

	return nil
}
