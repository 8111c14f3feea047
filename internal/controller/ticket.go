package controller

import (
	"context"

	"cinema-manager/internal/client"
	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/schema"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TicketController drives the ticket sales page. Tickets are sold and
// voided, never edited, so there is no update path. The total is never
// typed in: the controller recomputes it on every fare, quantity or
// showtime change.
type TicketController struct {
	api     *client.API
	log     *zap.Logger
	confirm ConfirmFunc

	tickets   []entity.Ticket
	showtimes []entity.Showtime
	movies    []entity.Movie
	rooms     []entity.Room

	form        schema.TicketForm
	fieldErrors map[string]string
	notice      string
	phase       Phase
}

func NewTicketController(api *client.API, log *zap.Logger, confirm ConfirmFunc) *TicketController {
	return &TicketController{
		api:     api,
		log:     log.With(zap.String("controller", "ticket")),
		confirm: confirm,
	}
}

func (c *TicketController) Load(ctx context.Context) error {
	var tickets []entity.Ticket
	var showtimes []entity.Showtime
	var movies []entity.Movie
	var rooms []entity.Room

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tickets, err = c.api.Tickets.GetAll(gctx)
		return err
	})
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
		c.log.Error("Failed to load tickets", zap.Error(err))
		c.notice = noticeLoadFailed
		return err
	}

	c.tickets = tickets
	c.showtimes = showtimes
	c.movies = movies
	c.rooms = rooms
	c.notice = ""
	return nil
}

func (c *TicketController) Tickets() []entity.Ticket       { return c.tickets }
func (c *TicketController) Showtimes() []entity.Showtime   { return c.showtimes }
func (c *TicketController) Form() *schema.TicketForm       { return &c.form }
func (c *TicketController) FieldErrors() map[string]string { return c.fieldErrors }
func (c *TicketController) Notice() string                 { return c.notice }
func (c *TicketController) Phase() Phase                   { return c.phase }

// BeginSale opens the sale form with a full-fare single ticket.
func (c *TicketController) BeginSale() {
	c.form = schema.TicketForm{
		Fare:     string(entity.FareFull),
		Quantity: 1,
	}
	c.recompute()
	c.fieldErrors = nil
	c.phase = PhaseEditing
}

// PreselectShowtime opens the sale form with the showtime already
// chosen, for the purchase handoff from the browse page.
func (c *TicketController) PreselectShowtime(id string) {
	c.BeginSale()
	c.form.ShowtimeID = id
}

func (c *TicketController) SetShowtime(id string) {
	c.form.ShowtimeID = id
}

func (c *TicketController) SetFare(fare string) {
	c.form.Fare = fare
	c.recompute()
}

func (c *TicketController) SetQuantity(quantity int) {
	c.form.Quantity = quantity
	c.recompute()
}

func (c *TicketController) recompute() {
	c.form.Total = entity.TotalFor(entity.Fare(c.form.Fare), c.form.Quantity)
}

// UnitPrice is the price of one ticket at the current fare.
func (c *TicketController) UnitPrice() float64 {
	return entity.UnitPrice(entity.Fare(c.form.Fare))
}

// ShowtimeSummary renders a showtime as "title - room - date" for the
// ticket list, with placeholders for anything dangling.
func (c *TicketController) ShowtimeSummary(id string) string {
	for i := range c.showtimes {
		if c.showtimes[i].ID != id {
			continue
		}
		title := "N/A"
		for j := range c.movies {
			if c.movies[j].ID == c.showtimes[i].MovieID {
				title = c.movies[j].Title
				break
			}
		}
		room := "N/A"
		for j := range c.rooms {
			if c.rooms[j].ID == c.showtimes[i].RoomID {
				room = c.rooms[j].Name
				break
			}
		}
		return title + " - " + room + " - " + utils.FormatDateTime(c.showtimes[i].StartAt)
	}
	return "Sessão não encontrada"
}

func (c *TicketController) Cancel() {
	c.form = schema.TicketForm{}
	c.fieldErrors = nil
	c.phase = PhaseIdle
}

func (c *TicketController) Submit(ctx context.Context) error {
	c.fieldErrors = nil
	c.notice = ""

	ticket, fieldErrors := c.form.Validate()
	if fieldErrors != nil {
		c.fieldErrors = fieldErrors
		c.phase = PhaseEditing
		return nil
	}

	c.phase = PhaseSubmitting

	if _, err := c.api.Tickets.Create(ctx, *ticket); err != nil {
		c.log.Error("Failed to sell ticket", zap.Error(err))
		c.notice = "Erro ao registrar venda"
		c.phase = PhaseEditing
		return err
	}

	c.form = schema.TicketForm{}
	c.phase = PhaseIdle
	return c.Load(ctx)
}

func (c *TicketController) Delete(ctx context.Context, id string) error {
	if !c.confirm("Tem certeza que deseja excluir este ingresso?") {
		return nil
	}

	if err := c.api.Tickets.Delete(ctx, id); err != nil {
		c.log.Error("Failed to delete ticket", zap.Error(err), zap.String("ticket_id", id))
		c.notice = "Erro ao excluir ingresso"
		return err
	}

	return c.Load(ctx)
}
