package usecase

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/schema"

	"go.uber.org/zap"
)

// TicketService has no update: tickets are sold and refunded, never edited.
type TicketService interface {
	GetTickets(ctx context.Context) ([]*entity.Ticket, error)
	GetTicketByID(ctx context.Context, ticketID string) (*entity.Ticket, error)
	CreateTicket(ctx context.Context, form *schema.TicketForm) (*entity.Ticket, error)
	DeleteTicket(ctx context.Context, ticketID string) error
}

type ticketService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTicketService(repo *repository.Repository, log *zap.Logger) TicketService {
	return &ticketService{
		repo: repo,
		log:  log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) GetTickets(ctx context.Context) ([]*entity.Ticket, error) {
	tickets, err := s.repo.Ticket.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get tickets", zap.Error(err))
		return nil, fmt.Errorf("get tickets: %w", err)
	}
	return tickets, nil
}

func (s *ticketService) GetTicketByID(ctx context.Context, ticketID string) (*entity.Ticket, error) {
	ticket, err := s.repo.Ticket.FindByID(ctx, ticketID)
	if err != nil {
		s.log.Error("Failed to get ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", ticketID),
		)
		return nil, fmt.Errorf("get ticket by id: %w", err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket %s: %w", ticketID, repository.ErrNotFound)
	}
	return ticket, nil
}

func (s *ticketService) CreateTicket(ctx context.Context, form *schema.TicketForm) (*entity.Ticket, error) {
	ticket, fieldErrors := form.Validate()
	if fieldErrors != nil {
		s.log.Warn("Create ticket validation failed", zap.Any("errors", fieldErrors))
		return nil, &ValidationError{Fields: fieldErrors}
	}

	// The store is authoritative for the amount, whatever the caller
	// computed.
	ticket.Total = entity.TotalFor(ticket.Fare, ticket.Quantity)

	if err := s.repo.Ticket.Create(ctx, ticket); err != nil {
		s.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("showtime_id", ticket.ShowtimeID),
		)
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	s.log.Info("Ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.String("showtime_id", ticket.ShowtimeID),
		zap.Int("quantity", ticket.Quantity),
		zap.Float64("total", ticket.Total),
	)
	return ticket, nil
}

func (s *ticketService) DeleteTicket(ctx context.Context, ticketID string) error {
	if err := s.repo.Ticket.Delete(ctx, ticketID); err != nil {
		s.log.Error("Failed to delete ticket",
			zap.Error(err),
			zap.String("ticket_id", ticketID),
		)
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}
