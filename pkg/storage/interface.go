// Package storage defines the persistence interfaces the application relies
// on. The verification core only ever reads from the gym registry; the
// single write path is enqueueing retry jobs, which rides on the same
// database.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"errors"

	"verifier/pkg/domain"

	"github.com/riverqueue/river"
)

// ErrNotInTx is returned when a transaction operation is invoked on a
// non-transactional handle.
var ErrNotInTx = errors.New("not in a transaction")

// ErrAlreadyInTx is returned when Begin is called on a handle that is
// already transactional.
var ErrAlreadyInTx = errors.New("already in a transaction")

// GymStorage exposes read-only access to the gym registry. The registry is
// external reference data; nothing in this service creates or mutates rows.
type GymStorage interface {
	// SearchGyms returns candidate gyms whose name contains name or whose
	// full address contains address, case-insensitively. It is a
	// recall-oriented prefilter; scoring happens in the resolver. Rows are
	// ordered by id so resolution tie-breaks are deterministic.
	SearchGyms(ctx context.Context, name, address string) ([]domain.Gym, error)
	// GymByID fetches a single gym, or nil when it does not exist.
	GymByID(ctx context.Context, id domain.GymID) (*domain.Gym, error)
}

// JobStorage defines the minimal interface for enqueueing background retry
// jobs. The args parameter carries the job payload and opts can be used to
// customize insertion behavior (queue name, delay, uniqueness).
// Implementations should be atomic with respect to any surrounding
// transaction when the backend supports it. The boolean result reports
// whether a job was actually inserted (false when skipped as a duplicate).
type JobStorage interface {
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// AllStorage is the composite of every domain-specific storage capability.
type AllStorage interface {
	GymStorage
	JobStorage
}

// TxStorage is a storage handle bound to a database transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is a non-transactional handle with lifecycle management and the
// ability to start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the implementation (e.g. the
	// underlying connection pool).
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb, then commits on success or
	// rolls back when cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
