package schema

import (
	"testing"
	"time"
)

var showtimeNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

func TestShowtimeFormValidate_Valid(t *testing.T) {
	form := ShowtimeForm{MovieID: "m1", RoomID: "r1", StartAt: "2026-09-01T20:30"}

	showtime, errs := form.Validate(showtimeNow)
	if errs != nil {
		t.Fatalf("expected no field errors, got %v", errs)
	}
	if showtime.MovieID != "m1" || showtime.RoomID != "r1" || showtime.StartAt != "2026-09-01T20:30" {
		t.Fatalf("unexpected showtime: %+v", showtime)
	}
}

func TestShowtimeFormValidate_MissingFields(t *testing.T) {
	form := ShowtimeForm{}

	showtime, errs := form.Validate(showtimeNow)
	if showtime != nil {
		t.Fatalf("expected nil showtime, got %+v", showtime)
	}
	for _, field := range []string{"filmeId", "salaId", "dataHora"} {
		if errs[field] == "" {
			t.Fatalf("expected error on %q, got %v", field, errs)
		}
	}
}

func TestShowtimeFormValidate_UnparseableDateTime(t *testing.T) {
	form := ShowtimeForm{MovieID: "m1", RoomID: "r1", StartAt: "amanhã à noite"}

	_, errs := form.Validate(showtimeNow)
	if errs["dataHora"] != "Data e hora inválidas" {
		t.Fatalf("unexpected dataHora error: %q", errs["dataHora"])
	}
}

func TestShowtimeFormValidate_PastDateTime(t *testing.T) {
	form := ShowtimeForm{MovieID: "m1", RoomID: "r1", StartAt: "2026-08-30T20:00"}

	showtime, errs := form.Validate(showtimeNow)
	if showtime != nil {
		t.Fatalf("expected nil showtime, got %+v", showtime)
	}
	if errs["dataHora"] != "A data da sessão não pode ser retroativa (anterior à data atual)" {
		t.Fatalf("unexpected dataHora error: %q", errs["dataHora"])
	}
}

// The same input passes or fails depending on the reference instant.
func TestShowtimeFormValidate_NowIsInjected(t *testing.T) {
	form := ShowtimeForm{MovieID: "m1", RoomID: "r1", StartAt: "2026-09-01T20:30"}

	if _, errs := form.Validate(showtimeNow); errs != nil {
		t.Fatalf("expected no field errors, got %v", errs)
	}

	later := time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local)
	if _, errs := form.Validate(later); errs["dataHora"] == "" {
		t.Fatal("expected dataHora error for a past showtime")
	}
}
