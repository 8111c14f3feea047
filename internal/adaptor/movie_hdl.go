package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/schema"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// List handles GET /filmes. The body is a bare array, like the mock
// store the front-end was written against.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list movies")
		return
	}

	if movies == nil {
		movies = []*entity.Movie{}
	}
	utils.ResponseSuccess(w, movies)
}

// Get handles GET /filmes/{id}
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		writeServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// Create handles POST /filmes
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form schema.MovieForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido")
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &form)
	if err != nil {
		writeServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, movie)
}

// Update handles PATCH /filmes/{id}: a merge-patch over the stored record.
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	patch, err := io.ReadAll(r.Body)
	if err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido")
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, patch)
	if err != nil {
		writeServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// Delete handles DELETE /filmes/{id}
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		writeServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, struct{}{})
}
