package domain

// GymID identifies a row in the gym registry. Registry ids are plain
// integers assigned by the upstream data import, not UUIDs.
type GymID int

// Gym is a read-only registry entity describing a known business location.
// The verification pipeline never creates or mutates gyms; it only matches
// extracted business information against them.
type Gym struct {
	// ID is the registry identifier of this gym.
	ID GymID `json:"id"`
	// Name is the registered business name.
	Name string `json:"gymName"`
	// FullAddress is the complete lot-number address.
	FullAddress string `json:"fullAddress"`
	// RoadAddress is the road-name address used for similarity matching.
	RoadAddress string `json:"roadAddress"`
	// Phone is the registered contact number, if any.
	Phone string `json:"phoneNumber,omitempty"`
	// Latitude and Longitude are optional geo coordinates.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// MatchCandidate pairs a registry gym with the similarity scores computed
// against the extracted business name and address. Candidates only live for
// the duration of a single resolution call.
type MatchCandidate struct {
	Gym Gym

	// NameScore blends edit-distance and TF-IDF cosine similarity of the
	// business names, in [0,1].
	NameScore float64
	// AddressScore blends edit-distance and token-overlap similarity of the
	// addresses, in [0,1].
	AddressScore float64
	// CombinedScore is the unweighted mean of NameScore and AddressScore and
	// is the sole acceptance criterion for a match.
	CombinedScore float64
}
