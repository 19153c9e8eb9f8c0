// Package hrdkorea provides a certregistry.Client implementation backed by
// the national qualification lookup API.
package hrdkorea

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"verifier/pkg/certregistry"
	"verifier/pkg/serrors"
)

// Options configure the qualification lookup endpoint.
type Options struct {
	// BaseURL is the API root.
	BaseURL string
	// ServiceKey authenticates the caller.
	ServiceKey string
}

// Client talks to the qualification API and fulfills the
// certregistry.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
}

// New constructs a Client that uses the provided http.Client.
func New(httpClient *http.Client, opts Options) *Client {
	return &Client{httpClient: httpClient, opts: opts}
}

// Lookup queries the authority for the credential identified by certNumber
// and name. A missing or mismatched credential is reported as
// serrors.ErrNotFound.
func (c *Client) Lookup(ctx context.Context, certNumber, name string) (*certregistry.Certification, error) {
	q := url.Values{}
	q.Set("serviceKey", c.opts.ServiceKey)
	q.Set("certNumber", certNumber)
	q.Set("name", name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.opts.BaseURL+"/lookup?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach certificate authority")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, serrors.With(serrors.ErrNotFound, "credential not registered")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUnavailable,
			"credential lookup failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var lr struct {
		CertNumber string `json:"certNumber"`
		Name       string `json:"name"`
		Level      string `json:"level"`
	}
	if err := json.Unmarshal(b, &lr); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	if lr.CertNumber == "" {
		return nil, serrors.With(serrors.ErrNotFound, "credential not registered")
	}

	return &certregistry.Certification{
		CertNumber: lr.CertNumber,
		Name:       lr.Name,
		Level:      lr.Level,
	}, nil
}

// Compile-time interface check.
var _ certregistry.Client = (*Client)(nil)
