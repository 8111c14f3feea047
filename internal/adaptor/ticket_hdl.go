package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/schema"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TicketHandler has no update route: tickets are create/delete only.
type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// List handles GET /ingressos
func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.service.GetTickets(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list tickets")
		return
	}

	if tickets == nil {
		tickets = []*entity.Ticket{}
	}
	utils.ResponseSuccess(w, tickets)
}

// Get handles GET /ingressos/{id}
func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")

	ticket, err := h.service.GetTicketByID(r.Context(), ticketID)
	if err != nil {
		writeServiceError(w, h.log, err, "get ticket")
		return
	}

	utils.ResponseSuccess(w, ticket)
}

// Create handles POST /ingressos
func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form schema.TicketForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido")
		return
	}

	ticket, err := h.service.CreateTicket(r.Context(), &form)
	if err != nil {
		writeServiceError(w, h.log, err, "create ticket")
		return
	}

	utils.ResponseCreated(w, ticket)
}

// Delete handles DELETE /ingressos/{id}
func (h *TicketHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")

	if err := h.service.DeleteTicket(r.Context(), ticketID); err != nil {
		writeServiceError(w, h.log, err, "delete ticket")
		return
	}

	utils.ResponseSuccess(w, struct{}{})
}
