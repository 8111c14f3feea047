package controller

import (
	"context"
	"testing"

	"cinema-manager/internal/client"

	"go.uber.org/zap"
)

func TestBrowseController_ByMovieGroupsInFirstAppearanceOrder(t *testing.T) {
	fake := newFakeTransport()
	fake.seed("filmes", movieDoc("m1", "Filme Um"))
	fake.seed("filmes", movieDoc("m2", "Filme Dois"))
	fake.seed("salas", roomDoc("r1", "Sala 1"))
	fake.seed("sessoes", showtimeDoc("s1", "m2", "r1", "2026-09-01T18:00"))
	fake.seed("sessoes", showtimeDoc("s2", "m1", "r1", "2026-09-01T20:00"))
	fake.seed("sessoes", showtimeDoc("s3", "m2", "r1", "2026-09-01T22:00"))

	c := NewBrowseController(client.New(fake), zap.NewNop(), nil)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	listings := c.ByMovie()
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	if listings[0].Movie.ID != "m2" || listings[1].Movie.ID != "m1" {
		t.Fatalf("unexpected order: %s, %s", listings[0].Movie.ID, listings[1].Movie.ID)
	}
	if len(listings[0].Showtimes) != 2 || len(listings[1].Showtimes) != 1 {
		t.Fatalf("unexpected grouping: %d/%d", len(listings[0].Showtimes), len(listings[1].Showtimes))
	}
	if listings[0].Showtimes[0].ID != "s1" || listings[0].Showtimes[1].ID != "s3" {
		t.Fatalf("showtime order lost: %+v", listings[0].Showtimes)
	}
}

func TestBrowseController_ByMovieSkipsDanglingReferences(t *testing.T) {
	fake := newFakeTransport()
	fake.seed("filmes", movieDoc("m1", "Filme Um"))
	fake.seed("sessoes", showtimeDoc("s1", "m-gone", "r1", "2026-09-01T18:00"))
	fake.seed("sessoes", showtimeDoc("s2", "m1", "r1", "2026-09-01T20:00"))

	c := NewBrowseController(client.New(fake), zap.NewNop(), nil)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	listings := c.ByMovie()
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
	if listings[0].Movie.ID != "m1" {
		t.Fatalf("unexpected movie: %s", listings[0].Movie.ID)
	}
}

func TestBrowseController_MovieWithoutShowtimesHidden(t *testing.T) {
	fake := newFakeTransport()
	fake.seed("filmes", movieDoc("m1", "Sem Sessões"))

	c := NewBrowseController(client.New(fake), zap.NewNop(), nil)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if listings := c.ByMovie(); len(listings) != 0 {
		t.Fatalf("expected no listings, got %d", len(listings))
	}
}

func TestBrowseController_PurchaseHandsOffShowtime(t *testing.T) {
	var handedOff string
	c := NewBrowseController(client.New(newFakeTransport()), zap.NewNop(), func(showtimeID string) {
		handedOff = showtimeID
	})

	c.Purchase("s42")
	if handedOff != "s42" {
		t.Fatalf("expected handoff of s42, got %q", handedOff)
	}
}

func TestBrowseController_RoomName(t *testing.T) {
	fake := newFakeTransport()
	fake.seed("salas", roomDoc("r1", "Sala VIP"))

	c := NewBrowseController(client.New(fake), zap.NewNop(), nil)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := c.RoomName("r1"); got != "Sala VIP" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got := c.RoomName("r-gone"); got != "Sala não encontrada" {
		t.Fatalf("unexpected placeholder: %q", got)
	}
}
