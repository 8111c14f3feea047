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

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// List handles GET /salas
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetRooms(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list rooms")
		return
	}

	if rooms == nil {
		rooms = []*entity.Room{}
	}
	utils.ResponseSuccess(w, rooms)
}

// Get handles GET /salas/{id}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	room, err := h.service.GetRoomByID(r.Context(), roomID)
	if err != nil {
		writeServiceError(w, h.log, err, "get room")
		return
	}

	utils.ResponseSuccess(w, room)
}

// Create handles POST /salas
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form schema.RoomForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido")
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &form)
	if err != nil {
		writeServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, room)
}

// Update handles PATCH /salas/{id}
func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	patch, err := io.ReadAll(r.Body)
	if err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido")
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), roomID, patch)
	if err != nil {
		writeServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, room)
}

// Delete handles DELETE /salas/{id}
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		writeServiceError(w, h.log, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, struct{}{})
}
