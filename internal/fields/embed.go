package fields

import (
	"context"
	"hash/fnv"
	"math"
)

// Embedder produces a vector representation per input text. Implementations
// may call out to an embedding service; the zero dependency default below is
// deterministic and local.
//
//go:generate mockgen -package mockfields -source=embed.go -destination=mock/mockfields.go *
type Embedder interface {
	// Embed returns one vector per text, all of the same dimension.
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// Default n-gram embedder shape.
const (
	defaultGramSize = 2
	defaultDim      = 256
)

// NGramEmbedder embeds a text as a hashed character n-gram frequency vector.
// Similar labels share most of their n-grams, so cosine similarity over
// these vectors tolerates the single-character OCR errors we see in
// practice. Deterministic and allocation-light; no remote calls.
type NGramEmbedder struct {
	gramSize int
	dim      int
}

// NewNGramEmbedder returns an embedder with the default shape.
func NewNGramEmbedder() *NGramEmbedder {
	return &NGramEmbedder{gramSize: defaultGramSize, dim: defaultDim}
}

// Embed implements Embedder. It never fails.
func (e *NGramEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, t := range texts {
		out[i] = e.embedOne(t)
	}

	return out, nil
}

func (e *NGramEmbedder) embedOne(text string) []float64 {
	vec := make([]float64, e.dim)
	runes := []rune(text)

	// unigrams plus n-grams, hashed into fixed buckets
	for size := 1; size <= e.gramSize; size++ {
		for i := 0; i+size <= len(runes); i++ {
			h := fnv.New32a()
			_, _ = h.Write([]byte(string(runes[i : i+size])))
			vec[h.Sum32()%uint32(e.dim)]++
		}
	}

	return vec
}

// cosine returns the cosine similarity of two vectors, 0 when either is a
// zero vector.
func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}

	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Compile-time interface check.
var _ Embedder = (*NGramEmbedder)(nil)
