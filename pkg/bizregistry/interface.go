// Package bizregistry defines the abstraction over the business
// registry-of-record validation service. The service confirms whether a
// business registration is active; its verdict is a terminal business
// outcome, not an error.
package bizregistry

import (
	"context"

	"verifier/pkg/domain"
)

// Status is the registry's verdict on a business registration.
type Status string

const (
	// StatusActive means the registration is valid and active ("01").
	StatusActive Status = "01"
	// StatusDeregistered means the business has closed down ("02").
	StatusDeregistered Status = "02"
	// StatusInvalid covers every other verdict, including unrecognized
	// registrations.
	StatusInvalid Status = ""
)

// Client validates extracted business registration fields against the
// registry of record.
//
//go:generate mockgen -package mockbizregistry -source=interface.go -destination=mock/mockbizregistry.go *
type Client interface {
	// Validate submits the extracted fields and returns the registry's
	// verdict. An error is returned only for transport or protocol failures,
	// never for a negative verdict.
	Validate(ctx context.Context, fields domain.FieldMap) (Status, error)
}
