package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler) {
	r.Route("/salas", func(r chi.Router) {
		r.Get("/", roomHandler.List)
		r.Post("/", roomHandler.Create)
		r.Get("/{id}", roomHandler.Get)
		r.Patch("/{id}", roomHandler.Update)
		r.Delete("/{id}", roomHandler.Delete)
	})
}
