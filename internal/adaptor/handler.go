package adaptor

import (
	"errors"
	"net/http"

	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie    *MovieHandler
	Room     *RoomHandler
	Showtime *ShowtimeHandler
	Ticket   *TicketHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:    NewMovieHandler(service.Movie, log),
		Room:     NewRoomHandler(service.Room, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Ticket:   NewTicketHandler(service.Ticket, log),
	}
}

// writeServiceError maps a service error onto the wire: missing records
// are 404, rejected forms 422 with the field map, anything else 500.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseUnprocessable(w, validationErr.Fields)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Falha ao acessar os dados")
	}
}
