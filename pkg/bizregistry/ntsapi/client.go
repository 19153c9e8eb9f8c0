// Package ntsapi provides a bizregistry.Client implementation backed by the
// national tax service's business registration validation API.
package ntsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"verifier/pkg/bizregistry"
	"verifier/pkg/domain"
	"verifier/pkg/serrors"
)

// Options configure the validation endpoint.
type Options struct {
	// BaseURL is the API root, e.g. "https://api.odcloud.kr/api/nts-businessman/v1".
	BaseURL string
	// ServiceKey authenticates the caller and is passed as a query parameter.
	ServiceKey string
}

// Client talks to the validation API and fulfills the bizregistry.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
}

// New constructs a Client that uses the provided http.Client.
func New(httpClient *http.Client, opts Options) *Client {
	return &Client{httpClient: httpClient, opts: opts}
}

// business is one entry of the validate payload. Field names follow the API
// contract and line up with the canonical field map keys.
type business struct {
	BNo     string `json:"b_no"`
	StartDt string `json:"start_dt"`
	PNm     string `json:"p_nm"`
	BNm     string `json:"b_nm,omitempty"`
	BAdr    string `json:"b_adr,omitempty"`
}

// Validate submits the extracted registration fields and maps the API's
// valid code onto a bizregistry.Status.
func (c *Client) Validate(ctx context.Context, fields domain.FieldMap) (bizregistry.Status, error) {
	payload := struct {
		Businesses []business `json:"businesses"`
	}{
		Businesses: []business{{
			BNo:     fields.Get(domain.FieldRegistrationNumber),
			StartDt: fields.Get(domain.FieldStartDate),
			PNm:     fields.Get(domain.FieldOwnerName),
			BNm:     fields.Get(domain.FieldBusinessName),
			BAdr:    fields.Get(domain.FieldAddress),
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return bizregistry.StatusInvalid, fmt.Errorf("could not marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/validate?serviceKey=%s&returnType=JSON",
		c.opts.BaseURL, url.QueryEscape(c.opts.ServiceKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return bizregistry.StatusInvalid, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return bizregistry.StatusInvalid, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach registry")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return bizregistry.StatusInvalid, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return bizregistry.StatusInvalid, serrors.With(serrors.ErrRateLimited,
			"registry rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return bizregistry.StatusInvalid, serrors.With(serrors.ErrUnavailable,
			"registry validation failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var vr struct {
		Data []struct {
			Valid string `json:"valid"`
		} `json:"data"`
	}
	if err := json.Unmarshal(b, &vr); err != nil {
		return bizregistry.StatusInvalid, fmt.Errorf("could not decode response: %w", err)
	}
	if len(vr.Data) == 0 {
		return bizregistry.StatusInvalid, nil
	}

	switch vr.Data[0].Valid {
	case string(bizregistry.StatusActive):
		return bizregistry.StatusActive, nil
	case string(bizregistry.StatusDeregistered):
		return bizregistry.StatusDeregistered, nil
	default:
		return bizregistry.StatusInvalid, nil
	}
}

// Compile-time interface check.
var _ bizregistry.Client = (*Client)(nil)
