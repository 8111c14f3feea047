package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// readonlyTransport targets the hosted read endpoints at
// {base}/api/{resource}. Only list reads exist in that environment;
// every other operation fails fast with ErrNotSupported instead of
// issuing a request that is known to have no endpoint.
type readonlyTransport struct {
	httpClient *http.Client
	baseURL    string
}

// NewReadOnly creates the read-only transport. If httpClient is nil, a
// default client is used.
func NewReadOnly(baseURL string, httpClient *http.Client) Transport {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &readonlyTransport{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (t *readonlyTransport) GetAll(ctx context.Context, resource string, out any) error {
	endpoint := fmt.Sprintf("%s/api/%s", t.baseURL, url.PathEscape(resource))
	return doJSON(ctx, t.httpClient, http.MethodGet, endpoint, nil, out)
}

func (t *readonlyTransport) GetByID(ctx context.Context, resource, id string, out any) error {
	return fmt.Errorf("get %s/%s: %w", resource, id, ErrNotSupported)
}

func (t *readonlyTransport) Create(ctx context.Context, resource string, in, out any) error {
	return fmt.Errorf("create %s: %w", resource, ErrNotSupported)
}

func (t *readonlyTransport) Update(ctx context.Context, resource, id string, in, out any) error {
	return fmt.Errorf("update %s/%s: %w", resource, id, ErrNotSupported)
}

func (t *readonlyTransport) Delete(ctx context.Context, resource, id string) error {
	return fmt.Errorf("delete %s/%s: %w", resource, id, ErrNotSupported)
}
