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

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}

	query := `
		INSERT INTO tickets (id, showtime_id, fare, quantity, total)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, ticket.ID, ticket.ShowtimeID, ticket.Fare, ticket.Quantity, ticket.Total)
	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("showtime_id", ticket.ShowtimeID),
		)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id string) (*entity.Ticket, error) {
	query := `SELECT id, showtime_id, fare, quantity, total FROM tickets WHERE id = $1`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.ShowtimeID,
		&ticket.Fare,
		&ticket.Quantity,
		&ticket.Total,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", id),
		)
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return &ticket, nil
}

func (r *ticketRepository) FindAll(ctx context.Context) ([]*entity.Ticket, error) {
	query := `SELECT id, showtime_id, fare, quantity, total FROM tickets`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all tickets", zap.Error(err))
		return nil, fmt.Errorf("failed to find tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		if err := rows.Scan(&ticket.ID, &ticket.ShowtimeID, &ticket.Fare, &ticket.Quantity, &ticket.Total); err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return tickets, nil
}

func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tickets WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete ticket",
			zap.Error(err),
			zap.String("ticket_id", id),
		)
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Ticket deleted", zap.String("ticket_id", id))
	return nil
}
