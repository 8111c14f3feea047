package wire

import (
	"net/http"

	"cinema-manager/internal/adaptor"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/middleware"
	"cinema-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router. The app mode
// decides which surface gets mounted: the full CRUD store, or only the
// read endpoints the hosted environment exposes.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	if config.App.Mode == "readonly" {
		// Serverless parity: list reads only, nothing else exists.
		wireReadOnly(r, handler)
	} else {
		wireMovie(r, handler.Movie)
		wireRoom(r, handler.Room)
		wireShowtime(r, handler.Showtime)
		wireTicket(r, handler.Ticket)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

// wireReadOnly mounts GET /api/{resource} list endpoints only. Writes
// in this mode fail at routing, exactly like the hosted functions.
func wireReadOnly(r chi.Router, handler *adaptor.Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/filmes", handler.Movie.List)
		r.Get("/salas", handler.Room.List)
		r.Get("/sessoes", handler.Showtime.List)
		r.Get("/ingressos", handler.Ticket.List)
	})
}
