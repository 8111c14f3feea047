package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// restTransport talks to a full CRUD mock REST store at
// {base}/{resource} and {base}/{resource}/{id}.
type restTransport struct {
	httpClient *http.Client
	baseURL    string
}

// NewRest creates the full-CRUD transport. If httpClient is nil, a
// default client is used.
func NewRest(baseURL string, httpClient *http.Client) Transport {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &restTransport{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (t *restTransport) collectionURL(resource string) string {
	return fmt.Sprintf("%s/%s", t.baseURL, url.PathEscape(resource))
}

func (t *restTransport) recordURL(resource, id string) string {
	return fmt.Sprintf("%s/%s/%s", t.baseURL, url.PathEscape(resource), url.PathEscape(id))
}

func (t *restTransport) GetAll(ctx context.Context, resource string, out any) error {
	return doJSON(ctx, t.httpClient, http.MethodGet, t.collectionURL(resource), nil, out)
}

func (t *restTransport) GetByID(ctx context.Context, resource, id string, out any) error {
	return doJSON(ctx, t.httpClient, http.MethodGet, t.recordURL(resource, id), nil, out)
}

func (t *restTransport) Create(ctx context.Context, resource string, in, out any) error {
	return doJSON(ctx, t.httpClient, http.MethodPost, t.collectionURL(resource), in, out)
}

func (t *restTransport) Update(ctx context.Context, resource, id string, in, out any) error {
	return doJSON(ctx, t.httpClient, http.MethodPatch, t.recordURL(resource, id), in, out)
}

func (t *restTransport) Delete(ctx context.Context, resource, id string) error {
	return doJSON(ctx, t.httpClient, http.MethodDelete, t.recordURL(resource, id), nil, nil)
}

// doJSON performs one request and decodes the response into out when
// out is non-nil. Non-2xx statuses become an *APIError with a snippet
// of the body; there is no retry.
func doJSON(ctx context.Context, httpClient *http.Client, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
