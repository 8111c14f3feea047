package controller

import (
	"context"
	"testing"

	"cinema-manager/internal/client"

	"go.uber.org/zap"
)

func seededTicketController(fake *fakeTransport) *TicketController {
	fake.seed("filmes", movieDoc("m1", "Que Horas Ela Volta?"))
	fake.seed("salas", roomDoc("r1", "Sala 3"))
	fake.seed("sessoes", showtimeDoc("s1", "m1", "r1", "2026-09-05T19:00"))
	return NewTicketController(client.New(fake), zap.NewNop(), AlwaysConfirm)
}

func TestTicketController_SaleDefaultsAndRecompute(t *testing.T) {
	c := seededTicketController(newFakeTransport())

	c.BeginSale()
	form := c.Form()
	if form.Fare != "inteira" || form.Quantity != 1 {
		t.Fatalf("unexpected defaults: %+v", form)
	}
	if form.Total != 28.00 {
		t.Fatalf("expected total 28.00, got %v", form.Total)
	}
	if c.UnitPrice() != 28.00 {
		t.Fatalf("expected unit price 28.00, got %v", c.UnitPrice())
	}

	c.SetFare("meia")
	if form.Total != 14.00 {
		t.Fatalf("expected total 14.00, got %v", form.Total)
	}
	if c.UnitPrice() != 14.00 {
		t.Fatalf("expected unit price 14.00, got %v", c.UnitPrice())
	}

	c.SetQuantity(6)
	if form.Total != 84.00 {
		t.Fatalf("expected total 84.00, got %v", form.Total)
	}
}

func TestTicketController_SellLifecycle(t *testing.T) {
	fake := newFakeTransport()
	c := seededTicketController(fake)
	ctx := context.Background()

	if err := c.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	c.BeginSale()
	c.SetShowtime("s1")
	c.SetFare("meia")
	c.SetQuantity(2)

	if err := c.Submit(ctx); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if c.Phase() != PhaseIdle {
		t.Fatalf("expected idle after sale, got %v", c.Phase())
	}
	if len(c.Tickets()) != 1 {
		t.Fatalf("expected 1 ticket after reload, got %d", len(c.Tickets()))
	}
	if c.Tickets()[0].Total != 28.00 {
		t.Fatalf("unexpected total: %v", c.Tickets()[0].Total)
	}
}

func TestTicketController_MissingShowtimeIssuesNoRequest(t *testing.T) {
	fake := newFakeTransport()
	c := seededTicketController(fake)

	c.BeginSale()
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if c.FieldErrors()["sessaoId"] == "" {
		t.Fatal("expected sessaoId error")
	}
	if fake.writes != 0 {
		t.Fatalf("expected no writes, got %d", fake.writes)
	}
}

func TestTicketController_PreselectShowtime(t *testing.T) {
	c := seededTicketController(newFakeTransport())

	c.PreselectShowtime("s1")
	if c.Phase() != PhaseEditing {
		t.Fatalf("expected editing, got %v", c.Phase())
	}
	if c.Form().ShowtimeID != "s1" {
		t.Fatalf("showtime not preselected: %+v", c.Form())
	}
	if c.Form().Total != 28.00 {
		t.Fatalf("expected defaults to apply, got %+v", c.Form())
	}
}

func TestTicketController_ShowtimeSummary(t *testing.T) {
	c := seededTicketController(newFakeTransport())
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	want := "Que Horas Ela Volta? - Sala 3 - 05/09/2026 19:00"
	if got := c.ShowtimeSummary("s1"); got != want {
		t.Fatalf("unexpected summary: %q", got)
	}
	if got := c.ShowtimeSummary("missing"); got != "Sessão não encontrada" {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestTicketController_SummaryPlaceholdersForDanglingRefs(t *testing.T) {
	fake := newFakeTransport()
	fake.seed("sessoes", showtimeDoc("s9", "m-gone", "r-gone", "2026-09-05T19:00"))
	c := NewTicketController(client.New(fake), zap.NewNop(), AlwaysConfirm)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	want := "N/A - N/A - 05/09/2026 19:00"
	if got := c.ShowtimeSummary("s9"); got != want {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestTicketController_DeleteConfirmGate(t *testing.T) {
	fake := newFakeTransport()
	fake.seed("ingressos", map[string]any{"id": "t1", "sessaoId": "s1", "tipo": "inteira", "quantidade": 1, "valorTotal": 28.0})
	declined := func(string) bool { return false }
	c := NewTicketController(client.New(fake), zap.NewNop(), declined)
	ctx := context.Background()

	if err := c.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := c.Delete(ctx, "t1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if fake.count("ingressos") != 1 {
		t.Fatal("declined confirmation must not delete")
	}
}
