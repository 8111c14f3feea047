package controller

import (
	"context"

	"cinema-manager/internal/client"
	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/schema"

	"go.uber.org/zap"
)

// RoomController drives the room registration page.
type RoomController struct {
	api     *client.API
	log     *zap.Logger
	confirm ConfirmFunc

	rooms       []entity.Room
	form        schema.RoomForm
	fieldErrors map[string]string
	notice      string
	editingID   string
	phase       Phase
}

func NewRoomController(api *client.API, log *zap.Logger, confirm ConfirmFunc) *RoomController {
	return &RoomController{
		api:     api,
		log:     log.With(zap.String("controller", "room")),
		confirm: confirm,
	}
}

func (c *RoomController) Load(ctx context.Context) error {
	rooms, err := c.api.Rooms.GetAll(ctx)
	if err != nil {
		c.log.Error("Failed to load rooms", zap.Error(err))
		c.notice = noticeLoadFailed
		return err
	}

	c.rooms = rooms
	c.notice = ""
	return nil
}

func (c *RoomController) Rooms() []entity.Room           { return c.rooms }
func (c *RoomController) Form() *schema.RoomForm         { return &c.form }
func (c *RoomController) FieldErrors() map[string]string { return c.fieldErrors }
func (c *RoomController) Notice() string                 { return c.notice }
func (c *RoomController) EditingID() string              { return c.editingID }
func (c *RoomController) Phase() Phase                   { return c.phase }

func (c *RoomController) BeginCreate() {
	c.form = schema.RoomForm{}
	c.editingID = ""
	c.fieldErrors = nil
	c.phase = PhaseEditing
}

func (c *RoomController) BeginEdit(id string) bool {
	for i := range c.rooms {
		if c.rooms[i].ID == id {
			c.form = schema.FormFromRoom(&c.rooms[i])
			c.editingID = id
			c.fieldErrors = nil
			c.phase = PhaseEditing
			return true
		}
	}
	return false
}

func (c *RoomController) Cancel() {
	c.form = schema.RoomForm{}
	c.editingID = ""
	c.fieldErrors = nil
	c.phase = PhaseIdle
}

func (c *RoomController) Submit(ctx context.Context) error {
	c.fieldErrors = nil
	c.notice = ""

	room, fieldErrors := c.form.Validate()
	if fieldErrors != nil {
		c.fieldErrors = fieldErrors
		c.phase = PhaseEditing
		return nil
	}

	c.phase = PhaseSubmitting

	var err error
	if c.editingID != "" {
		_, err = c.api.Rooms.Update(ctx, c.editingID, room)
	} else {
		_, err = c.api.Rooms.Create(ctx, *room)
	}
	if err != nil {
		c.log.Error("Failed to save room", zap.Error(err))
		c.notice = "Erro ao salvar sala"
		c.phase = PhaseEditing
		return err
	}

	c.form = schema.RoomForm{}
	c.editingID = ""
	c.phase = PhaseIdle
	return c.Load(ctx)
}

func (c *RoomController) Delete(ctx context.Context, id string) error {
	if !c.confirm("Tem certeza que deseja excluir esta sala?") {
		return nil
	}

	if err := c.api.Rooms.Delete(ctx, id); err != nil {
		c.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", id))
		c.notice = "Erro ao excluir sala"
		return err
	}

	return c.Load(ctx)
}
