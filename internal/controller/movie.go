package controller

import (
	"context"

	"cinema-manager/internal/client"
	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/schema"

	"go.uber.org/zap"
)

// MovieController drives the movie registration page.
type MovieController struct {
	api     *client.API
	log     *zap.Logger
	confirm ConfirmFunc

	movies      []entity.Movie
	form        schema.MovieForm
	fieldErrors map[string]string
	notice      string
	editingID   string
	phase       Phase
}

func NewMovieController(api *client.API, log *zap.Logger, confirm ConfirmFunc) *MovieController {
	return &MovieController{
		api:     api,
		log:     log.With(zap.String("controller", "movie")),
		confirm: confirm,
	}
}

// Load fetches the movie list. On failure the previous list stays
// visible and a generic notice is set.
func (c *MovieController) Load(ctx context.Context) error {
	movies, err := c.api.Movies.GetAll(ctx)
	if err != nil {
		c.log.Error("Failed to load movies", zap.Error(err))
		c.notice = noticeLoadFailed
		return err
	}

	c.movies = movies
	c.notice = ""
	return nil
}

func (c *MovieController) Movies() []entity.Movie         { return c.movies }
func (c *MovieController) Form() *schema.MovieForm        { return &c.form }
func (c *MovieController) FieldErrors() map[string]string { return c.fieldErrors }
func (c *MovieController) Notice() string                 { return c.notice }
func (c *MovieController) EditingID() string              { return c.editingID }
func (c *MovieController) Phase() Phase                   { return c.phase }

// BeginCreate opens an empty form.
func (c *MovieController) BeginCreate() {
	c.form = schema.MovieForm{}
	c.editingID = ""
	c.fieldErrors = nil
	c.phase = PhaseEditing
}

// BeginEdit seeds the form from a loaded record. Returns false when the
// id is not in the current list.
func (c *MovieController) BeginEdit(id string) bool {
	for i := range c.movies {
		if c.movies[i].ID == id {
			c.form = schema.FormFromMovie(&c.movies[i])
			c.editingID = id
			c.fieldErrors = nil
			c.phase = PhaseEditing
			return true
		}
	}
	return false
}

// Cancel abandons the form.
func (c *MovieController) Cancel() {
	c.form = schema.MovieForm{}
	c.editingID = ""
	c.fieldErrors = nil
	c.phase = PhaseIdle
}

// Submit validates the form and creates or updates depending on whether
// an edit is in progress. A validation failure keeps the form open with
// field errors and issues no network call; a transport failure sets the
// notice and keeps the form. Success reloads the list.
func (c *MovieController) Submit(ctx context.Context) error {
	c.fieldErrors = nil
	c.notice = ""

	movie, fieldErrors := c.form.Validate()
	if fieldErrors != nil {
		c.fieldErrors = fieldErrors
		c.phase = PhaseEditing
		return nil
	}

	c.phase = PhaseSubmitting

	var err error
	if c.editingID != "" {
		_, err = c.api.Movies.Update(ctx, c.editingID, movie)
	} else {
		_, err = c.api.Movies.Create(ctx, *movie)
	}
	if err != nil {
		c.log.Error("Failed to save movie", zap.Error(err))
		c.notice = "Erro ao salvar filme"
		c.phase = PhaseEditing
		return err
	}

	c.form = schema.MovieForm{}
	c.editingID = ""
	c.phase = PhaseIdle
	return c.Load(ctx)
}

// Delete asks for confirmation, deletes, and reloads. A declined
// confirmation is a no-op.
func (c *MovieController) Delete(ctx context.Context, id string) error {
	if !c.confirm("Tem certeza que deseja excluir este filme?") {
		return nil
	}

	if err := c.api.Movies.Delete(ctx, id); err != nil {
		c.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", id))
		c.notice = "Erro ao excluir filme"
		return err
	}

	return c.Load(ctx)
}
