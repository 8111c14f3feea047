package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler) {
	r.Route("/sessoes", func(r chi.Router) {
		r.Get("/", showtimeHandler.List)
		r.Post("/", showtimeHandler.Create)
		r.Get("/{id}", showtimeHandler.Get)
		r.Patch("/{id}", showtimeHandler.Update)
		r.Delete("/{id}", showtimeHandler.Delete)
	})
}
