// Package ocr defines the abstraction over the optical character
// recognition engine. The engine is an opaque external service: it receives
// an image and returns raw recognized text. Unreadable input yields empty or
// degenerate text rather than a structural failure.
package ocr

import "context"

// Client is the abstraction for OCR engines.
//
//go:generate mockgen -package mockocr -source=interface.go -destination=mock/mockocr.go *
type Client interface {
	// Recognize runs OCR on the PNG-encoded image and returns the full
	// recognized plain text.
	Recognize(ctx context.Context, png []byte) (string, error)
}
