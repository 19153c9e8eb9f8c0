package verifier_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"verifier/internal/fields"
	"verifier/internal/match"
	"verifier/internal/verifier"
	"verifier/pkg/bizregistry"
	mockbizregistry "verifier/pkg/bizregistry/mock"
	mockbroker "verifier/pkg/broker/mock"
	"verifier/pkg/certregistry"
	mockcertregistry "verifier/pkg/certregistry/mock"
	"verifier/pkg/domain"
	mockimagefetch "verifier/pkg/imagefetch/mock"
	mockocr "verifier/pkg/ocr/mock"
	"verifier/pkg/serrors"
	mockstorage "verifier/pkg/storage/mock"
)

// documentPNG encodes a synthetic photo with a clear document rectangle so
// the rectifier finds a boundary.
func documentPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 300, 250))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(50, 50, 250, 200), image.NewUniform(color.White), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("could not encode test image: %v", err)
	}

	return buf.Bytes()
}

const licenseText = "등록번호: 123-45-67890\n상호: 바디 짐\n성명: 홍길동\n" +
	"사업장소재지: 서울특별시 강남구 테헤란로 1\n생년월일: 1990년 01월 02일\n개업연월일: 2020년 03월 04일"

const certificateText = "자격번호: 2020-123456\n성명: 홍길동\n자격종목: 생활스포츠지도사 2급\n취득일자: 2020년 05월 06일"

type testDeps struct {
	fetcher   *mockimagefetch.MockFetcher
	ocr       *mockocr.MockClient
	biz       *mockbizregistry.MockClient
	certs     *mockcertregistry.MockClient
	publisher *mockbroker.MockPublisher
	storage   *mockstorage.MockStorage
}

func newTestVerifier(t *testing.T) (testDeps, verifier.Verifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		fetcher:   mockimagefetch.NewMockFetcher(ctrl),
		ocr:       mockocr.NewMockClient(ctrl),
		biz:       mockbizregistry.NewMockClient(ctrl),
		certs:     mockcertregistry.NewMockClient(ctrl),
		publisher: mockbroker.NewMockPublisher(ctrl),
		storage:   mockstorage.NewMockStorage(ctrl),
	}

	matcher := fields.NewEmbeddingMatcher(fields.NewNGramEmbedder())
	v := verifier.New(verifier.Dependencies{
		Fetcher:           deps.fetcher,
		OCR:               deps.ocr,
		BizRegistry:       deps.biz,
		CertRegistry:      deps.certs,
		Publisher:         deps.publisher,
		Storage:           deps.storage,
		Resolver:          match.NewResolver(deps.storage),
		LicenseFields:     fields.NewLicenseNormalizer(matcher),
		CertificateFields: fields.NewCertificateNormalizer(matcher),
	}, verifier.Options{MaxAttempts: 3, RetryUniquePeriod: time.Hour})

	return deps, v
}

func expectLicenseResponse(t *testing.T, deps testDeps, want domain.LicenseResponse) {
	t.Helper()

	deps.publisher.EXPECT().Publish(gomock.Any(), domain.TopicLicenseResponse, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, value []byte) error {
			var got domain.LicenseResponse
			require.NoError(t, json.Unmarshal(value, &got))
			require.Equal(t, want, got)

			return nil
		})
}

func TestProcessLicenseRegistered(t *testing.T) {
	deps, v := newTestVerifier(t)
	req := domain.VerificationRequest{ID: "7", Path: "https://cdn.example.com/doc.png"}

	deps.fetcher.EXPECT().Fetch(gomock.Any(), req.Path).Return(documentPNG(t), nil)
	deps.ocr.EXPECT().Recognize(gomock.Any(), gomock.Any()).Return(licenseText, nil)
	deps.biz.EXPECT().Validate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fieldMap domain.FieldMap) (bizregistry.Status, error) {
			require.Equal(t, "1234567890", fieldMap.Get(domain.FieldRegistrationNumber))
			require.Equal(t, "20200304", fieldMap.Get(domain.FieldStartDate))

			return bizregistry.StatusActive, nil
		})
	deps.storage.EXPECT().SearchGyms(gomock.Any(), "바디 짐", "서울특별시 강남구 테헤란로 1").Return(
		[]domain.Gym{{ID: 42, Name: "바디 짐", RoadAddress: "서울특별시 강남구 테헤란로 1"}}, nil)

	gymID := 42
	expectLicenseResponse(t, deps, domain.LicenseResponse{
		UserID:  7,
		GymID:   &gymID,
		Message: domain.StatusRegistered,
	})

	if err := v.ProcessLicense(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessLicenseNoMatchStillRegistered(t *testing.T) {
	deps, v := newTestVerifier(t)
	req := domain.VerificationRequest{ID: "7", Path: "https://cdn.example.com/doc.png"}

	deps.fetcher.EXPECT().Fetch(gomock.Any(), req.Path).Return(documentPNG(t), nil)
	deps.ocr.EXPECT().Recognize(gomock.Any(), gomock.Any()).Return(licenseText, nil)
	deps.biz.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(bizregistry.StatusActive, nil)
	deps.storage.EXPECT().SearchGyms(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	expectLicenseResponse(t, deps, domain.LicenseResponse{
		UserID:  7,
		GymID:   nil,
		Message: domain.StatusRegistered,
	})

	if err := v.ProcessLicense(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessLicenseDeregisteredSkipsResolution(t *testing.T) {
	deps, v := newTestVerifier(t)
	req := domain.VerificationRequest{ID: "7", Path: "https://cdn.example.com/doc.png"}

	deps.fetcher.EXPECT().Fetch(gomock.Any(), req.Path).Return(documentPNG(t), nil)
	deps.ocr.EXPECT().Recognize(gomock.Any(), gomock.Any()).Return(licenseText, nil)
	deps.biz.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(bizregistry.StatusDeregistered, nil)
	// no SearchGyms expectation: resolution must not run

	expectLicenseResponse(t, deps, domain.LicenseResponse{
		UserID:  7,
		Message: domain.StatusDeregistered,
	})

	if err := v.ProcessLicense(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessLicenseInvalidVerdict(t *testing.T) {
	deps, v := newTestVerifier(t)
	req := domain.VerificationRequest{ID: "7", Path: "https://cdn.example.com/doc.png"}

	deps.fetcher.EXPECT().Fetch(gomock.Any(), req.Path).Return(documentPNG(t), nil)
	deps.ocr.EXPECT().Recognize(gomock.Any(), gomock.Any()).Return(licenseText, nil)
	deps.biz.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(bizregistry.StatusInvalid, nil)

	expectLicenseResponse(t, deps, domain.LicenseResponse{
		UserID:  7,
		Message: domain.StatusInvalid,
	})

	if err := v.ProcessLicense(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessLicenseRetryableEscapes(t *testing.T) {
	deps, v := newTestVerifier(t)
	req := domain.VerificationRequest{ID: "7", Path: "https://cdn.example.com/doc.png"}

	deps.fetcher.EXPECT().Fetch(gomock.Any(), req.Path).Return(nil,
		serrors.With(serrors.ErrUnavailable, "image download failed"))

	err := v.ProcessLicense(context.Background(), req)
	if !verifier.Retryable(err) {
		t.Fatalf("expected retryable error, got %v", err)
	}
}

func TestProcessLicenseUndecodableImageIsTerminal(t *testing.T) {
	deps, v := newTestVerifier(t)
	req := domain.VerificationRequest{ID: "7", Path: "https://cdn.example.com/doc.png"}

	deps.fetcher.EXPECT().Fetch(gomock.Any(), req.Path).Return([]byte("not an image"), nil)

	expectLicenseResponse(t, deps, domain.LicenseResponse{
		UserID:  7,
		Message: domain.StatusInternal,
	})

	if err := v.ProcessLicense(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandleLicenseQueuesRetry(t *testing.T) {
	deps, v := newTestVerifier(t)
	req := domain.VerificationRequest{ID: "7", Path: "https://cdn.example.com/doc.png"}

	deps.fetcher.EXPECT().Fetch(gomock.Any(), req.Path).Return(nil,
		serrors.With(serrors.ErrUnavailable, "image download failed"))
	deps.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			jobArgs, ok := args.(verifier.JobArgs)
			require.True(t, ok)
			require.Equal(t, domain.TopicLicenseRequest, jobArgs.Topic)
			require.Equal(t, "7", jobArgs.ID)

			return true, nil
		})

	if err := v.HandleLicense(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessCertificateSuccess(t *testing.T) {
	deps, v := newTestVerifier(t)
	req := domain.VerificationRequest{ID: "9", Path: "https://cdn.example.com/cert.png"}

	deps.fetcher.EXPECT().Fetch(gomock.Any(), req.Path).Return(documentPNG(t), nil)
	deps.ocr.EXPECT().Recognize(gomock.Any(), gomock.Any()).Return(certificateText, nil)
	deps.certs.EXPECT().Lookup(gomock.Any(), "2020-123456", "홍길동").Return(
		&certregistry.Certification{
			CertNumber: "2020-123456",
			Name:       "홍길동",
			Level:      "생활스포츠지도사 2급",
		}, nil)

	deps.publisher.EXPECT().Publish(gomock.Any(), domain.TopicCertificateResponse, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, value []byte) error {
			var got domain.CertificateResponse
			require.NoError(t, json.Unmarshal(value, &got))
			require.Equal(t, domain.CertStatusSuccess, got.Status)
			require.Equal(t, "2020-123456", got.CertNumber)
			require.Equal(t, 9, got.ID)

			return nil
		})

	if err := v.ProcessCertificate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessCertificateNotRegistered(t *testing.T) {
	deps, v := newTestVerifier(t)
	req := domain.VerificationRequest{ID: "9", Path: "https://cdn.example.com/cert.png"}

	deps.fetcher.EXPECT().Fetch(gomock.Any(), req.Path).Return(documentPNG(t), nil)
	deps.ocr.EXPECT().Recognize(gomock.Any(), gomock.Any()).Return(certificateText, nil)
	deps.certs.EXPECT().Lookup(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil,
		serrors.With(serrors.ErrNotFound, "credential not registered"))

	deps.publisher.EXPECT().Publish(gomock.Any(), domain.TopicCertificateResponse, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, value []byte) error {
			var got domain.CertificateResponse
			require.NoError(t, json.Unmarshal(value, &got))
			require.Equal(t, domain.CertStatusFail, got.Status)

			return nil
		})

	if err := v.ProcessCertificate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPublishFailure(t *testing.T) {
	deps, v := newTestVerifier(t)
	req := domain.VerificationRequest{ID: "7", Path: "https://cdn.example.com/doc.png"}

	expectLicenseResponse(t, deps, domain.LicenseResponse{
		UserID:  7,
		Message: domain.StatusInternal,
	})

	if err := v.PublishFailure(context.Background(), domain.TopicLicenseRequest, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRetryable(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "unavailable", err: serrors.With(serrors.ErrUnavailable, "down"), want: true},
		{name: "rate limited", err: serrors.With(serrors.ErrRateLimited, "slow down"), want: true},
		{name: "bad request", err: serrors.With(serrors.ErrBadRequest, "bad"), want: false},
		{name: "not found", err: serrors.With(serrors.ErrNotFound, "missing"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := verifier.Retryable(tc.err); got != tc.want {
				t.Fatalf("Retryable() = %v, want %v", got, tc.want)
			}
		})
	}
}
