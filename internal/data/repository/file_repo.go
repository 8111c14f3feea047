package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Collection names match the db.json dialect.
const (
	collectionMovies    = "filmes"
	collectionRooms     = "salas"
	collectionShowtimes = "sessoes"
	collectionTickets   = "ingressos"
)

// Generic helpers shared by the four file-backed repositories. The ctx
// parameter keeps the repository interfaces uniform; file access is
// synchronous and does not block on anything cancellable.

func fileFindAll[T any](db *database.FileDB, collection string) ([]*T, error) {
	records, err := db.All(collection)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}

	items := make([]*T, 0, len(records))
	for _, record := range records {
		var item T
		if err := json.Unmarshal(record, &item); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", collection, err)
		}
		items = append(items, &item)
	}
	return items, nil
}

func fileFindByID[T any](db *database.FileDB, collection, id string) (*T, error) {
	record, err := db.Get(collection, id)
	if errors.Is(err, database.ErrNoRecord) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", collection, id, err)
	}

	var item T
	if err := json.Unmarshal(record, &item); err != nil {
		return nil, fmt.Errorf("decode %s record: %w", collection, err)
	}
	return &item, nil
}

func fileInsert(db *database.FileDB, collection string, item any) error {
	record, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", collection, err)
	}
	if err := db.Insert(collection, record); err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

func fileUpdate(db *database.FileDB, collection, id string, item any) error {
	record, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", collection, err)
	}
	err = db.Update(collection, id, record)
	if errors.Is(err, database.ErrNoRecord) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

func fileDelete(db *database.FileDB, collection, id string) error {
	err := db.Delete(collection, id)
	if errors.Is(err, database.ErrNoRecord) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// ---------------- movies ----------------

type fileMovieRepository struct {
	db  *database.FileDB
	log *zap.Logger
}

func newFileMovieRepository(db *database.FileDB, log *zap.Logger) MovieRepository {
	return &fileMovieRepository{db: db, log: log.With(zap.String("repository", "movie"))}
}

func (r *fileMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	if movie.ID == "" {
		movie.ID = uuid.NewString()
	}
	return fileInsert(r.db, collectionMovies, movie)
}

func (r *fileMovieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	return fileFindByID[entity.Movie](r.db, collectionMovies, id)
}

func (r *fileMovieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	return fileFindAll[entity.Movie](r.db, collectionMovies)
}

func (r *fileMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	return fileUpdate(r.db, collectionMovies, movie.ID, movie)
}

func (r *fileMovieRepository) Delete(ctx context.Context, id string) error {
	if err := fileDelete(r.db, collectionMovies, id); err != nil {
		return err
	}
	r.log.Info("Movie deleted", zap.String("movie_id", id))
	return nil
}

// ---------------- rooms ----------------

type fileRoomRepository struct {
	db  *database.FileDB
	log *zap.Logger
}

func newFileRoomRepository(db *database.FileDB, log *zap.Logger) RoomRepository {
	return &fileRoomRepository{db: db, log: log.With(zap.String("repository", "room"))}
}

func (r *fileRoomRepository) Create(ctx context.Context, room *entity.Room) error {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	return fileInsert(r.db, collectionRooms, room)
}

func (r *fileRoomRepository) FindByID(ctx context.Context, id string) (*entity.Room, error) {
	return fileFindByID[entity.Room](r.db, collectionRooms, id)
}

func (r *fileRoomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	return fileFindAll[entity.Room](r.db, collectionRooms)
}

func (r *fileRoomRepository) Update(ctx context.Context, room *entity.Room) error {
	return fileUpdate(r.db, collectionRooms, room.ID, room)
}

func (r *fileRoomRepository) Delete(ctx context.Context, id string) error {
	if err := fileDelete(r.db, collectionRooms, id); err != nil {
		return err
	}
	r.log.Info("Room deleted", zap.String("room_id", id))
	return nil
}

// ---------------- showtimes ----------------

type fileShowtimeRepository struct {
	db  *database.FileDB
	log *zap.Logger
}

func newFileShowtimeRepository(db *database.FileDB, log *zap.Logger) ShowtimeRepository {
	return &fileShowtimeRepository{db: db, log: log.With(zap.String("repository", "showtime"))}
}

func (r *fileShowtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	if showtime.ID == "" {
		showtime.ID = uuid.NewString()
	}
	return fileInsert(r.db, collectionShowtimes, showtime)
}

func (r *fileShowtimeRepository) FindByID(ctx context.Context, id string) (*entity.Showtime, error) {
	return fileFindByID[entity.Showtime](r.db, collectionShowtimes, id)
}

func (r *fileShowtimeRepository) FindAll(ctx context.Context) ([]*entity.Showtime, error) {
	return fileFindAll[entity.Showtime](r.db, collectionShowtimes)
}

func (r *fileShowtimeRepository) Update(ctx context.Context, showtime *entity.Showtime) error {
	return fileUpdate(r.db, collectionShowtimes, showtime.ID, showtime)
}

func (r *fileShowtimeRepository) Delete(ctx context.Context, id string) error {
	if err := fileDelete(r.db, collectionShowtimes, id); err != nil {
		return err
	}
	r.log.Info("Showtime deleted", zap.String("showtime_id", id))
	return nil
}

// ---------------- tickets ----------------

type fileTicketRepository struct {
	db  *database.FileDB
	log *zap.Logger
}

func newFileTicketRepository(db *database.FileDB, log *zap.Logger) TicketRepository {
	return &fileTicketRepository{db: db, log: log.With(zap.String("repository", "ticket"))}
}

func (r *fileTicketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}
	return fileInsert(r.db, collectionTickets, ticket)
}

func (r *fileTicketRepository) FindByID(ctx context.Context, id string) (*entity.Ticket, error) {
	return fileFindByID[entity.Ticket](r.db, collectionTickets, id)
}

func (r *fileTicketRepository) FindAll(ctx context.Context) ([]*entity.Ticket, error) {
	return fileFindAll[entity.Ticket](r.db, collectionTickets)
}

func (r *fileTicketRepository) Delete(ctx context.Context, id string) error {
	if err := fileDelete(r.db, collectionTickets, id); err != nil {
		return err
	}
	r.log.Info("Ticket deleted", zap.String("ticket_id", id))
	return nil
}
