package usecase

import (
	"cinema-manager/internal/data/repository"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie    MovieService
	Room     RoomService
	Showtime ShowtimeService
	Ticket   TicketService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:    NewMovieService(repo, log),
		Room:     NewRoomService(repo, log),
		Showtime: NewShowtimeService(repo, log),
		Ticket:   NewTicketService(repo, log),
	}
}

// ValidationError carries the per-field messages of a rejected form.
// Handlers surface it as 422 with the field map as the body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}
