package verifier

import (
	"errors"

	"verifier/pkg/serrors"
)

// Retryable reports whether err is a transient failure that may succeed on a
// later attempt, such as an unreachable collaborator or an upstream rate
// limit. Everything else, including a per-message timeout, is terminal and
// answered with the internal-error response.
func Retryable(err error) bool {
	return errors.Is(err, serrors.ErrUnavailable) || errors.Is(err, serrors.ErrRateLimited)
}
