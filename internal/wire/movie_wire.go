package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/filmes", func(r chi.Router) {
		r.Get("/", movieHandler.List)
		r.Post("/", movieHandler.Create)
		r.Get("/{id}", movieHandler.Get)
		r.Patch("/{id}", movieHandler.Update)
		r.Delete("/{id}", movieHandler.Delete)
	})
}
