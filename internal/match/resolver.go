package match

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"verifier/pkg/domain"
	"verifier/pkg/logger"
	"verifier/pkg/storage"
)

// AcceptThreshold is the minimum combined score a candidate needs to be
// accepted as the resolved entity.
const AcceptThreshold = 0.75

// Scoring weights. Names weigh edit distance and token statistics equally;
// addresses lean on edit distance because road addresses share most tokens
// across different businesses in the same district.
const (
	nameLevWeight     = 0.5
	nameTfidfWeight   = 0.5
	addrLevWeight     = 0.6
	addrJaccardWeight = 0.4
)

// Resolver matches extracted business information against the gym registry.
// Safe for concurrent use.
type Resolver struct {
	gyms storage.GymStorage
}

// NewResolver returns a Resolver reading candidates from gyms.
func NewResolver(gyms storage.GymStorage) *Resolver {
	return &Resolver{gyms: gyms}
}

// Resolve returns the registry gym best matching the extracted name and
// address, or nil when no candidate's combined score reaches
// AcceptThreshold. Candidates arrive ordered by id and a candidate wins only
// by strictly exceeding the running best, so equal scores keep the
// lowest-id gym. A nil result is not an error.
func (r *Resolver) Resolve(ctx context.Context, name, address string) (*domain.Gym, error) {
	candidates, err := r.gyms.SearchGyms(ctx, name, address)
	if err != nil {
		return nil, fmt.Errorf("could not search gym registry: %w", err)
	}

	var best *domain.MatchCandidate
	for _, gym := range candidates {
		c := score(gym, name, address)
		if c.CombinedScore >= AcceptThreshold && (best == nil || c.CombinedScore > best.CombinedScore) {
			best = &c
		}
	}

	if best == nil {
		logger.Debug(ctx, "no registry candidate cleared the acceptance threshold",
			zap.Int("candidates", len(candidates)))

		return nil, nil
	}

	logger.Debug(ctx, "resolved gym",
		zap.Int("gymId", int(best.Gym.ID)),
		zap.Float64("combinedScore", best.CombinedScore))

	return &best.Gym, nil
}

// score computes the similarity of one registry gym to the extracted fields.
// The road address is the comparison target on the registry side.
func score(gym domain.Gym, name, address string) domain.MatchCandidate {
	nameScore := nameLevWeight*levenshteinRatio(name, gym.Name) +
		nameTfidfWeight*tfidfCosine(name, gym.Name)
	addrScore := addrLevWeight*levenshteinRatio(address, gym.RoadAddress) +
		addrJaccardWeight*jaccard(tokenize(address), tokenize(gym.RoadAddress))

	return domain.MatchCandidate{
		Gym:           gym,
		NameScore:     nameScore,
		AddressScore:  addrScore,
		CombinedScore: (nameScore + addrScore) / 2,
	}
}
