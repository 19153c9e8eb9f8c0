// Package imagefetch downloads document images from the object store URL
// referenced by inbound messages.
package imagefetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"verifier/pkg/serrors"
)

// MaxImageBytes caps how much of a response body is read. Uploaded document
// photos are a few megabytes; anything larger is rejected rather than
// buffered.
const MaxImageBytes = 32 << 20

// Fetcher retrieves raw image bytes from a URL.
//
//go:generate mockgen -package mockimagefetch -source=client.go -destination=mock/mockimagefetch.go *
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Client fetches images over HTTP. Any non-200 status is a hard failure for
// the message being processed.
type Client struct {
	httpClient *http.Client
}

// New constructs a Client using the provided http.Client.
func New(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Fetch downloads the image at url and returns its bytes.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid image url")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not download image")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, serrors.With(serrors.ErrUnavailable,
			"image download failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("could not read image body: %w", err)
	}
	if len(data) > MaxImageBytes {
		return nil, serrors.With(serrors.ErrBadRequest, "image exceeds %d bytes", MaxImageBytes)
	}

	return data, nil
}

// Compile-time interface check.
var _ Fetcher = (*Client)(nil)
