// Package documentai provides an ocr.Client implementation backed by the
// Google Document AI REST API.
package documentai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"verifier/pkg/ocr"
	"verifier/pkg/serrors"
)

// Options identify the Document AI processor to call.
type Options struct {
	// Endpoint is the regional API base, e.g. "https://documentai.googleapis.com".
	Endpoint string
	// ProjectID, Location and ProcessorID locate the processor resource.
	ProjectID   string
	Location    string
	ProcessorID string
	// Token is the OAuth bearer token used to authenticate requests.
	Token string
}

// Client talks to the Document AI process endpoint and fulfills the
// ocr.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
}

// New constructs a Client that uses the provided http.Client.
func New(httpClient *http.Client, opts Options) *Client {
	return &Client{httpClient: httpClient, opts: opts}
}

// Recognize submits the image to the processor and returns the recognized
// document text.
func (c *Client) Recognize(ctx context.Context, png []byte) (string, error) {
	// https://cloud.google.com/document-ai/docs/reference/rest/v1/projects.locations.processors/process
	type rawDocument struct {
		Content  string `json:"content"`
		MimeType string `json:"mimeType"`
	}
	body, err := json.Marshal(struct {
		RawDocument rawDocument `json:"rawDocument"`
	}{
		RawDocument: rawDocument{
			Content:  base64.StdEncoding.EncodeToString(png),
			MimeType: "image/png",
		},
	})
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/projects/%s/locations/%s/processors/%s:process",
		c.opts.Endpoint, c.opts.ProjectID, c.opts.Location, c.opts.ProcessorID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.opts.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "could not reach ocr engine")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return "", serrors.With(serrors.ErrRateLimited, "ocr rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", serrors.With(serrors.ErrUnavailable,
			"ocr failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var pr struct {
		Document struct {
			Text string `json:"text"`
		} `json:"document"`
	}
	if err := json.Unmarshal(b, &pr); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}

	return pr.Document.Text, nil
}

// Compile-time interface check.
var _ ocr.Client = (*Client)(nil)
