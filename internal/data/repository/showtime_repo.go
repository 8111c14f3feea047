package repository

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	if showtime.ID == "" {
		showtime.ID = uuid.NewString()
	}

	// movie_id and room_id are plain text columns, not foreign keys:
	// the store does not enforce referential integrity.
	query := `
		INSERT INTO showtimes (id, movie_id, room_id, start_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, showtime.ID, showtime.MovieID, showtime.RoomID, showtime.StartAt)
	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID),
		)
		return fmt.Errorf("failed to create showtime: %w", err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id string) (*entity.Showtime, error) {
	query := `SELECT id, movie_id, room_id, start_at FROM showtimes WHERE id = $1`

	var showtime entity.Showtime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.RoomID,
		&showtime.StartAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id),
		)
		return nil, fmt.Errorf("failed to find showtime: %w", err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) FindAll(ctx context.Context) ([]*entity.Showtime, error) {
	query := `SELECT id, movie_id, room_id, start_at FROM showtimes ORDER BY start_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all showtimes", zap.Error(err))
		return nil, fmt.Errorf("failed to find showtimes: %w", err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		if err := rows.Scan(&showtime.ID, &showtime.MovieID, &showtime.RoomID, &showtime.StartAt); err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan showtime: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return showtimes, nil
}

func (r *showtimeRepository) Update(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		UPDATE showtimes
		SET movie_id = $2, room_id = $3, start_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, showtime.ID, showtime.MovieID, showtime.RoomID, showtime.StartAt)
	if err != nil {
		r.log.Error("Failed to update showtime",
			zap.Error(err),
			zap.String("showtime_id", showtime.ID),
		)
		return fmt.Errorf("failed to update showtime: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *showtimeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM showtimes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete showtime",
			zap.Error(err),
			zap.String("showtime_id", id),
		)
		return fmt.Errorf("failed to delete showtime: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Showtime deleted", zap.String("showtime_id", id))
	return nil
}
