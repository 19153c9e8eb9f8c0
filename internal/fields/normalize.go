package fields

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"verifier/pkg/domain"
)

// MatchThreshold is the minimum similarity for a semantic label match. Below
// it the target field stays unresolved.
const MatchThreshold = 0.85

// Matcher selects the extracted key most similar to a target label.
// Normalize calls it once per still-unresolved target with the keys no
// earlier target has claimed.
type Matcher interface {
	// Best returns the index of the candidate most similar to target and its
	// similarity score in [0,1]. Returns index -1 when candidates is empty.
	Best(ctx context.Context, target string, candidates []string) (int, float64, error)
}

// EmbeddingMatcher scores candidates by embedding cosine similarity.
type EmbeddingMatcher struct {
	embedder Embedder
}

// NewEmbeddingMatcher wraps an embedder as a Matcher.
func NewEmbeddingMatcher(embedder Embedder) *EmbeddingMatcher {
	return &EmbeddingMatcher{embedder: embedder}
}

// Best embeds the target together with all candidates in one call and
// returns the arg-max by cosine similarity.
func (m *EmbeddingMatcher) Best(ctx context.Context, target string, candidates []string) (int, float64, error) {
	if len(candidates) == 0 {
		return -1, 0, nil
	}

	vecs, err := m.embedder.Embed(ctx, append([]string{target}, candidates...))
	if err != nil {
		return -1, 0, fmt.Errorf("could not embed labels: %w", err)
	}

	best, bestScore := -1, -1.0
	for i, v := range vecs[1:] {
		if s := cosine(vecs[0], v); s > bestScore {
			best, bestScore = i, s
		}
	}

	return best, bestScore, nil
}

// licenseLabels are the printed labels of a business license, keyed by the
// canonical field they carry.
var licenseLabels = map[domain.Field]string{
	domain.FieldRegistrationNumber: "등록번호",
	domain.FieldBusinessName:       "상호",
	domain.FieldOwnerName:          "성명",
	domain.FieldAddress:            "사업장소재지",
	domain.FieldBirthDate:          "생년월일",
	domain.FieldStartDate:          "개업연월일",
}

// certificateLabels are the printed labels of a professional certificate.
var certificateLabels = map[domain.Field]string{
	domain.FieldCertNumber:    "자격번호",
	domain.FieldCertHolder:    "성명",
	domain.FieldCertLevel:     "자격종목",
	domain.FieldCertIssueDate: "취득일자",
}

// digitOnlyFields are cleaned down to their digits.
var digitOnlyFields = map[domain.Field]bool{
	domain.FieldRegistrationNumber: true,
	domain.FieldBirthDate:          true,
	domain.FieldStartDate:          true,
	domain.FieldCertIssueDate:      true,
}

// Normalizer reconciles extracted key/value pairs against one document
// schema. Safe for concurrent use.
type Normalizer struct {
	schema  []domain.Field
	labels  map[domain.Field]string
	matcher Matcher
}

// NewLicenseNormalizer returns a Normalizer for the business license schema.
func NewLicenseNormalizer(matcher Matcher) *Normalizer {
	return &Normalizer{schema: domain.LicenseSchema(), labels: licenseLabels, matcher: matcher}
}

// NewCertificateNormalizer returns a Normalizer for the certificate schema.
func NewCertificateNormalizer(matcher Matcher) *Normalizer {
	return &Normalizer{schema: domain.CertificateSchema(), labels: certificateLabels, matcher: matcher}
}

// Normalize extracts colon-delimited pairs from rawText and resolves every
// schema field. Resolution is two-pass: targets whose printed label appears
// verbatim among the extracted keys take that value directly; each remaining
// target then claims the unclaimed extracted key with the highest similarity
// to its label, provided the score clears MatchThreshold. Claims are greedy
// in schema order, one key satisfies at most one target, and unresolved
// targets map to nil. The returned map always holds exactly the schema keys.
func (n *Normalizer) Normalize(ctx context.Context, rawText string) (domain.FieldMap, error) {
	extracted := ExtractColonFields(rawText)

	out := make(domain.FieldMap, len(n.schema))
	claimed := make(map[string]bool, len(extracted))

	// hard matches first
	for _, field := range n.schema {
		out[field] = nil
		label := n.labels[field]
		if value, ok := extracted[label]; ok {
			out[field] = n.clean(field, value)
			claimed[label] = true
		}
	}

	for _, field := range n.schema {
		if out[field] != nil {
			continue
		}

		candidates := make([]string, 0, len(extracted))
		for key := range extracted {
			if !claimed[key] {
				candidates = append(candidates, key)
			}
		}

		idx, score, err := n.matcher.Best(ctx, n.labels[field], candidates)
		if err != nil {
			return nil, fmt.Errorf("could not match label %q: %w", n.labels[field], err)
		}
		if idx < 0 || score < MatchThreshold {
			continue
		}

		key := candidates[idx]
		out[field] = n.clean(field, extracted[key])
		claimed[key] = true
	}

	return out, nil
}

// clean applies the per-field cleaning rule. Cleaning fails softly: when the
// digit strip leaves nothing, the trimmed raw value is kept.
func (n *Normalizer) clean(field domain.Field, value string) *string {
	value = strings.TrimSpace(value)
	if digitOnlyFields[field] {
		if digits := stripNonDigits(value); digits != "" {
			return &digits
		}
	}

	return &value
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Compile-time interface check.
var _ Matcher = (*EmbeddingMatcher)(nil)
