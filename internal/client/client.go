// Package client is the generic CRUD client to the store: operations
// parameterized by resource name, over one of two transports. The rest
// transport speaks the full mock-store dialect; the readonly transport
// only has the hosted list endpoints and refuses everything else up
// front instead of issuing requests that are known to 404.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotSupported is returned without touching the network when a
// transport does not implement the requested operation.
var ErrNotSupported = errors.New("operation not supported in this transport mode")

// Transport is the store capability surface. All operations are plain
// request/response: no retry, no backoff; a failure is surfaced once,
// carrying the HTTP status when there is one.
type Transport interface {
	GetAll(ctx context.Context, resource string, out any) error
	GetByID(ctx context.Context, resource, id string, out any) error
	Create(ctx context.Context, resource string, in, out any) error
	Update(ctx context.Context, resource, id string, in, out any) error
	Delete(ctx context.Context, resource, id string) error
}

// APIError is returned when the store responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "store api error"
	}
	return fmt.Sprintf("store api error: %s: %s", e.Status, e.Body)
}

// IsNotFound reports whether the error represents a 404 from the store.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}
