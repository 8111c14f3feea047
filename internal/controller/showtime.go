package controller

import (
	"context"
	"time"

	"cinema-manager/internal/client"
	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/schema"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ShowtimeController drives the showtime scheduling page. Besides the
// showtime list it keeps the movie and room lists the form selects
// from, loaded together.
type ShowtimeController struct {
	api     *client.API
	log     *zap.Logger
	confirm ConfirmFunc
	now     func() time.Time

	showtimes []entity.Showtime
	movies    []entity.Movie
	rooms     []entity.Room

	form        schema.ShowtimeForm
	fieldErrors map[string]string
	notice      string
	editingID   string
	phase       Phase
}

func NewShowtimeController(api *client.API, log *zap.Logger, confirm ConfirmFunc) *ShowtimeController {
	return &ShowtimeController{
		api:     api,
		log:     log.With(zap.String("controller", "showtime")),
		confirm: confirm,
		now:     time.Now,
	}
}

// Load fetches the three lists concurrently. Any failure discards the
// batch; the lists stay as they were.
func (c *ShowtimeController) Load(ctx context.Context) error {
	var showtimes []entity.Showtime
	var movies []entity.Movie
	var rooms []entity.Room

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		showtimes, err = c.api.Showtimes.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		movies, err = c.api.Movies.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rooms, err = c.api.Rooms.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.log.Error("Failed to load showtimes", zap.Error(err))
		c.notice = noticeLoadFailed
		return err
	}

	c.showtimes = showtimes
	c.movies = movies
	c.rooms = rooms
	c.notice = ""
	return nil
}

func (c *ShowtimeController) Showtimes() []entity.Showtime   { return c.showtimes }
func (c *ShowtimeController) Movies() []entity.Movie         { return c.movies }
func (c *ShowtimeController) Rooms() []entity.Room           { return c.rooms }
func (c *ShowtimeController) Form() *schema.ShowtimeForm     { return &c.form }
func (c *ShowtimeController) FieldErrors() map[string]string { return c.fieldErrors }
func (c *ShowtimeController) Notice() string                 { return c.notice }
func (c *ShowtimeController) EditingID() string              { return c.editingID }
func (c *ShowtimeController) Phase() Phase                   { return c.phase }

// MovieTitle resolves a movie id against the loaded list, with a
// placeholder for dangling references.
func (c *ShowtimeController) MovieTitle(id string) string {
	for i := range c.movies {
		if c.movies[i].ID == id {
			return c.movies[i].Title
		}
	}
	return "Filme não encontrado"
}

// RoomName resolves a room id against the loaded list.
func (c *ShowtimeController) RoomName(id string) string {
	for i := range c.rooms {
		if c.rooms[i].ID == id {
			return c.rooms[i].Name
		}
	}
	return "Sala não encontrada"
}

func (c *ShowtimeController) BeginCreate() {
	c.form = schema.ShowtimeForm{}
	c.editingID = ""
	c.fieldErrors = nil
	c.phase = PhaseEditing
}

func (c *ShowtimeController) BeginEdit(id string) bool {
	for i := range c.showtimes {
		if c.showtimes[i].ID == id {
			c.form = schema.FormFromShowtime(&c.showtimes[i])
			c.editingID = id
			c.fieldErrors = nil
			c.phase = PhaseEditing
			return true
		}
	}
	return false
}

func (c *ShowtimeController) Cancel() {
	c.form = schema.ShowtimeForm{}
	c.editingID = ""
	c.fieldErrors = nil
	c.phase = PhaseIdle
}

func (c *ShowtimeController) Submit(ctx context.Context) error {
	c.fieldErrors = nil
	c.notice = ""

	showtime, fieldErrors := c.form.Validate(c.now())
	if fieldErrors != nil {
		c.fieldErrors = fieldErrors
		c.phase = PhaseEditing
		return nil
	}

	c.phase = PhaseSubmitting

	var err error
	if c.editingID != "" {
		_, err = c.api.Showtimes.Update(ctx, c.editingID, showtime)
	} else {
		_, err = c.api.Showtimes.Create(ctx, *showtime)
	}
	if err != nil {
		c.log.Error("Failed to save showtime", zap.Error(err))
		c.notice = "Erro ao salvar sessão"
		c.phase = PhaseEditing
		return err
	}

	c.form = schema.ShowtimeForm{}
	c.editingID = ""
	c.phase = PhaseIdle
	return c.Load(ctx)
}

func (c *ShowtimeController) Delete(ctx context.Context, id string) error {
	if !c.confirm("Tem certeza que deseja excluir esta sessão?") {
		return nil
	}

	if err := c.api.Showtimes.Delete(ctx, id); err != nil {
		c.log.Error("Failed to delete showtime", zap.Error(err), zap.String("showtime_id", id))
		c.notice = "Erro ao excluir sessão"
		return err
	}

	return c.Load(ctx)
}
