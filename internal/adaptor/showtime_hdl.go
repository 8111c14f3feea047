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

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// List handles GET /sessoes
func (h *ShowtimeHandler) List(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.GetShowtimes(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list showtimes")
		return
	}

	if showtimes == nil {
		showtimes = []*entity.Showtime{}
	}
	utils.ResponseSuccess(w, showtimes)
}

// Get handles GET /sessoes/{id}
func (h *ShowtimeHandler) Get(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")

	showtime, err := h.service.GetShowtimeByID(r.Context(), showtimeID)
	if err != nil {
		writeServiceError(w, h.log, err, "get showtime")
		return
	}

	utils.ResponseSuccess(w, showtime)
}

// Create handles POST /sessoes
func (h *ShowtimeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form schema.ShowtimeForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido")
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), &form)
	if err != nil {
		writeServiceError(w, h.log, err, "create showtime")
		return
	}

	utils.ResponseCreated(w, showtime)
}

// Update handles PATCH /sessoes/{id}
func (h *ShowtimeHandler) Update(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")

	patch, err := io.ReadAll(r.Body)
	if err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido")
		return
	}

	showtime, err := h.service.UpdateShowtime(r.Context(), showtimeID, patch)
	if err != nil {
		writeServiceError(w, h.log, err, "update showtime")
		return
	}

	utils.ResponseSuccess(w, showtime)
}

// Delete handles DELETE /sessoes/{id}
func (h *ShowtimeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")

	if err := h.service.DeleteShowtime(r.Context(), showtimeID); err != nil {
		writeServiceError(w, h.log, err, "delete showtime")
		return
	}

	utils.ResponseSuccess(w, struct{}{})
}
