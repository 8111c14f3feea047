package controller

import (
	"context"

	"cinema-manager/internal/client"
	"cinema-manager/internal/data/entity"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MovieListing is one movie with its scheduled showtimes, ready for
// display.
type MovieListing struct {
	Movie     entity.Movie
	Showtimes []entity.Showtime
}

// BrowseController drives the public listing page: movies in exhibition
// grouped with their showtimes, each showtime offering a purchase that
// hands off to the ticket page.
type BrowseController struct {
	api        *client.API
	log        *zap.Logger
	onPurchase func(showtimeID string)

	movies    []entity.Movie
	rooms     []entity.Room
	showtimes []entity.Showtime
	notice    string
}

// NewBrowseController wires the listing page. onPurchase receives the
// chosen showtime id; the UI routes it to the ticket page.
func NewBrowseController(api *client.API, log *zap.Logger, onPurchase func(showtimeID string)) *BrowseController {
	if onPurchase == nil {
		onPurchase = func(string) {}
	}
	return &BrowseController{
		api:        api,
		log:        log.With(zap.String("controller", "browse")),
		onPurchase: onPurchase,
	}
}

func (c *BrowseController) Load(ctx context.Context) error {
	var movies []entity.Movie
	var rooms []entity.Room
	var showtimes []entity.Showtime

	g, gctx := errgroup.WithContext(ctx)
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
	g.Go(func() error {
		var err error
		showtimes, err = c.api.Showtimes.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.log.Error("Failed to load listings", zap.Error(err))
		c.notice = noticeLoadFailed
		return err
	}

	c.movies = movies
	c.rooms = rooms
	c.showtimes = showtimes
	c.notice = ""
	return nil
}

func (c *BrowseController) Notice() string { return c.notice }

// ByMovie groups showtimes under their movies, in the order movies
// first appear in the showtime list. Showtimes whose movie id is
// dangling are skipped. Movies without showtimes do not appear.
func (c *BrowseController) ByMovie() []MovieListing {
	byID := make(map[string]*entity.Movie, len(c.movies))
	for i := range c.movies {
		byID[c.movies[i].ID] = &c.movies[i]
	}

	index := make(map[string]int)
	var listings []MovieListing
	for _, showtime := range c.showtimes {
		movie, ok := byID[showtime.MovieID]
		if !ok {
			continue
		}
		at, seen := index[showtime.MovieID]
		if !seen {
			at = len(listings)
			index[showtime.MovieID] = at
			listings = append(listings, MovieListing{Movie: *movie})
		}
		listings[at].Showtimes = append(listings[at].Showtimes, showtime)
	}
	return listings
}

// RoomName resolves a room id for the showtime line.
func (c *BrowseController) RoomName(id string) string {
	for i := range c.rooms {
		if c.rooms[i].ID == id {
			return c.rooms[i].Name
		}
	}
	return "Sala não encontrada"
}

// Purchase hands the chosen showtime to the ticket flow.
func (c *BrowseController) Purchase(showtimeID string) {
	c.onPurchase(showtimeID)
}
