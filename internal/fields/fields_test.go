package fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"verifier/pkg/domain"
)

func TestExtractColonFields(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want map[string]string
	}{
		{
			name: "plain pairs",
			text: "등록번호: 123-45-67890\n상호: 헬스장",
			want: map[string]string{"등록번호": "123-45-67890", "상호": "헬스장"},
		},
		{
			name: "last duplicate wins",
			text: "A: 1\nB\nA: 2",
			want: map[string]string{"A": "2"},
		},
		{
			name: "first colon splits",
			text: "주소: 서울: 강남",
			want: map[string]string{"주소": "서울: 강남"},
		},
		{
			name: "lines without colon dropped",
			text: "사업자등록증\n\n확인서",
			want: map[string]string{},
		},
		{
			name: "sides trimmed",
			text: "  상호  :  헬스장  ",
			want: map[string]string{"상호": "헬스장"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ExtractColonFields(tc.text))
		})
	}
}

// stubMatcher always reports the given index and score.
type stubMatcher struct {
	idx   int
	score float64
	calls int
}

func (s *stubMatcher) Best(_ context.Context, _ string, candidates []string) (int, float64, error) {
	s.calls++
	if len(candidates) == 0 {
		return -1, 0, nil
	}

	return s.idx, s.score, nil
}

func TestNormalizeExactMatch(t *testing.T) {
	matcher := &stubMatcher{idx: 0, score: 0}
	n := NewLicenseNormalizer(matcher)

	text := "등록번호: 123-45-67890\n상호: 헬스장\n성명: 홍길동\n" +
		"사업장소재지: 서울특별시 강남구 테헤란로 1\n생년월일: 1990년 01월 02일\n개업연월일: 2020년 03월 04일"

	got, err := n.Normalize(context.Background(), text)
	require.NoError(t, err)

	require.Equal(t, "1234567890", got.Get(domain.FieldRegistrationNumber))
	require.Equal(t, "헬스장", got.Get(domain.FieldBusinessName))
	require.Equal(t, "홍길동", got.Get(domain.FieldOwnerName))
	require.Equal(t, "서울특별시 강남구 테헤란로 1", got.Get(domain.FieldAddress))
	require.Equal(t, "19900102", got.Get(domain.FieldBirthDate))
	require.Equal(t, "20200304", got.Get(domain.FieldStartDate))

	// every label matched verbatim, so the matcher never runs
	require.Zero(t, matcher.calls)
}

func TestNormalizeSemanticFallback(t *testing.T) {
	n := NewLicenseNormalizer(NewEmbeddingMatcher(NewNGramEmbedder()))

	// label garbled by a stray trailing character
	got, err := n.Normalize(context.Background(), "등록번호1: 123-45-67890")
	require.NoError(t, err)

	require.Equal(t, "1234567890", got.Get(domain.FieldRegistrationNumber))
	require.False(t, got.Has(domain.FieldBusinessName))
}

func TestNormalizeKeyClaimedOnce(t *testing.T) {
	// matcher that always claims the first candidate with full confidence
	n := NewLicenseNormalizer(&stubMatcher{idx: 0, score: 1})

	got, err := n.Normalize(context.Background(), "garbled: value")
	require.NoError(t, err)

	resolved := 0
	for _, field := range domain.LicenseSchema() {
		if got.Has(field) {
			resolved++
		}
	}
	require.Equal(t, 1, resolved, "a single extracted key must satisfy at most one field")
	require.Equal(t, "value", got.Get(domain.FieldRegistrationNumber))
}

func TestNormalizeSubThreshold(t *testing.T) {
	n := NewLicenseNormalizer(&stubMatcher{idx: 0, score: 0.5})

	got, err := n.Normalize(context.Background(), "garbled: value")
	require.NoError(t, err)

	require.Len(t, got, len(domain.LicenseSchema()))
	for _, field := range domain.LicenseSchema() {
		require.False(t, got.Has(field))
	}
}

func TestNormalizeKeepsRawValueWhenNoDigits(t *testing.T) {
	n := NewLicenseNormalizer(&stubMatcher{})

	got, err := n.Normalize(context.Background(), "등록번호: 미상")
	require.NoError(t, err)
	require.Equal(t, "미상", got.Get(domain.FieldRegistrationNumber))
}

func TestNGramEmbedder(t *testing.T) {
	e := NewNGramEmbedder()

	vecs, err := e.Embed(context.Background(), []string{"등록번호", "등록번호", "상호"})
	require.NoError(t, err)
	require.Len(t, vecs, 3)

	require.InDelta(t, 1.0, cosine(vecs[0], vecs[1]), 1e-9)
	require.Less(t, cosine(vecs[0], vecs[2]), 1.0)
}
