package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// No PATCH route: a sold ticket is deleted and re-issued, never edited.
func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	r.Route("/ingressos", func(r chi.Router) {
		r.Get("/", ticketHandler.List)
		r.Post("/", ticketHandler.Create)
		r.Get("/{id}", ticketHandler.Get)
		r.Delete("/{id}", ticketHandler.Delete)
	})
}
