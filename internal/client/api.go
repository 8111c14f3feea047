package client

import (
	"context"

	"cinema-manager/internal/data/entity"
)

// Resource is the typed view of one collection.
type Resource[T any] struct {
	transport Transport
	name      string
}

// NewResource binds a collection name to its record type.
func NewResource[T any](transport Transport, name string) Resource[T] {
	return Resource[T]{transport: transport, name: name}
}

func (r Resource[T]) GetAll(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.transport.GetAll(ctx, r.name, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r Resource[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.transport.GetByID(ctx, r.name, id, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create posts a record without an id; the store assigns one and the
// stored record comes back.
func (r Resource[T]) Create(ctx context.Context, data T) (*T, error) {
	var created T
	if err := r.transport.Create(ctx, r.name, data, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update merge-patches the record; data may be a partial document.
func (r Resource[T]) Update(ctx context.Context, id string, data any) (*T, error) {
	var updated T
	if err := r.transport.Update(ctx, r.name, id, data, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r Resource[T]) Delete(ctx context.Context, id string) error {
	return r.transport.Delete(ctx, r.name, id)
}

// API bundles the four typed resources, mirroring the store's
// collections.
type API struct {
	Movies    Resource[entity.Movie]
	Rooms     Resource[entity.Room]
	Showtimes Resource[entity.Showtime]
	Tickets   Resource[entity.Ticket]
}

func New(transport Transport) *API {
	return &API{
		Movies:    NewResource[entity.Movie](transport, "filmes"),
		Rooms:     NewResource[entity.Room](transport, "salas"),
		Showtimes: NewResource[entity.Showtime](transport, "sessoes"),
		Tickets:   NewResource[entity.Ticket](transport, "ingressos"),
	}
}
