package repository

import (
	"context"
	"errors"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned when an operation targets an id the store
// does not hold. Handlers translate it into an HTTP 404.
var ErrNotFound = errors.New("not found")

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id string) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id string) error
}

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id string) (*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id string) error
}

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id string) (*entity.Showtime, error)
	FindAll(ctx context.Context) ([]*entity.Showtime, error)
	Update(ctx context.Context, showtime *entity.Showtime) error
	Delete(ctx context.Context, id string) error
}

// Tickets are create/delete only, no update cycle.
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindByID(ctx context.Context, id string) (*entity.Ticket, error)
	FindAll(ctx context.Context) ([]*entity.Ticket, error)
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	Movie    MovieRepository
	Room     RoomRepository
	Showtime ShowtimeRepository
	Ticket   TicketRepository
}

// NewRepository builds the postgres-backed repository set.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMovieRepository(db, log),
		Room:     NewRoomRepository(db, log),
		Showtime: NewShowtimeRepository(db, log),
		Ticket:   NewTicketRepository(db, log),
	}
}

// NewFileRepository builds the repository set over the flat JSON file
// store, the json-server-compatible backend used in local development.
func NewFileRepository(db *database.FileDB, log *zap.Logger) *Repository {
	return &Repository{
		Movie:    newFileMovieRepository(db, log),
		Room:     newFileRoomRepository(db, log),
		Showtime: newFileShowtimeRepository(db, log),
		Ticket:   newFileTicketRepository(db, log),
	}
}
