package worker_test

import (
	"context"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"verifier/internal/verifier"
	mockverifier "verifier/internal/verifier/mock"
	"verifier/internal/worker"
	"verifier/pkg/domain"
	"verifier/pkg/logger"
	"verifier/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(topic string, attempt, maxAttempts int) *river.Job[verifier.JobArgs] {
	return &river.Job[verifier.JobArgs]{
		JobRow: &rivertype.JobRow{ID: 1, Attempt: attempt, MaxAttempts: maxAttempts},
		Args:   verifier.JobArgs{Topic: topic, ID: "7", Path: "https://cdn.example.com/doc.png"},
	}
}

func TestVerificationWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockverifier.NewMockVerifier(ctrl)
	w := worker.NewVerificationWorker(mock)

	mock.EXPECT().ProcessLicense(gomock.Any(), domain.VerificationRequest{
		ID:   "7",
		Path: "https://cdn.example.com/doc.png",
	}).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(domain.TopicLicenseRequest, 1, 3)))
}

func TestVerificationWorker_Work_DispatchesCertificates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockverifier.NewMockVerifier(ctrl)
	w := worker.NewVerificationWorker(mock)

	mock.EXPECT().ProcessCertificate(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(domain.TopicCertificateRequest, 1, 3)))
}

func TestVerificationWorker_Work_FailureKeepsRetrying(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockverifier.NewMockVerifier(ctrl)
	w := worker.NewVerificationWorker(mock)

	mock.EXPECT().ProcessLicense(gomock.Any(), gomock.Any()).Return(
		serrors.With(serrors.ErrUnavailable, "registry down"))
	// attempts remain, so no failure response yet

	err := w.Work(context.Background(), makeJob(domain.TopicLicenseRequest, 1, 3))
	require.Error(t, err)
}

func TestVerificationWorker_Work_LastAttemptPublishesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockverifier.NewMockVerifier(ctrl)
	w := worker.NewVerificationWorker(mock)

	mock.EXPECT().ProcessLicense(gomock.Any(), gomock.Any()).Return(
		serrors.With(serrors.ErrUnavailable, "registry down"))
	mock.EXPECT().PublishFailure(gomock.Any(), domain.TopicLicenseRequest, gomock.Any()).Return(nil)

	err := w.Work(context.Background(), makeJob(domain.TopicLicenseRequest, 3, 3))
	require.Error(t, err)
}

func TestVerificationWorker_Work_RateLimitSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockverifier.NewMockVerifier(ctrl)
	w := worker.NewVerificationWorker(mock)

	mock.EXPECT().ProcessLicense(gomock.Any(), gomock.Any()).Return(
		serrors.With(serrors.ErrRateLimited, "too many requests"))

	err := w.Work(context.Background(), makeJob(domain.TopicLicenseRequest, 1, 3))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
}
