// Package certregistry defines the abstraction over the certificate
// authority's credential lookup service used by the certificate pipeline.
package certregistry

import "context"

// Certification is the authority's record for a verified credential.
type Certification struct {
	// CertNumber is the registered certification number.
	CertNumber string
	// Name is the credential holder's name as registered.
	Name string
	// Level is the certification grade, e.g. "생활스포츠지도사 2급".
	Level string
}

// Client looks up credentials with the certificate authority.
//
//go:generate mockgen -package mockcertregistry -source=interface.go -destination=mock/mockcertregistry.go *
type Client interface {
	// Lookup returns the authority record matching certNumber and name, or a
	// serrors.ErrNotFound error when no such credential is registered.
	Lookup(ctx context.Context, certNumber, name string) (*Certification, error)
}
