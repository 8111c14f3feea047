package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-manager/internal/schema"

	"go.uber.org/zap"
)

func testShowtimeService(t *testing.T, now time.Time) ShowtimeService {
	t.Helper()
	service := NewShowtimeService(testRepository(t), zap.NewNop()).(*showtimeService)
	service.now = func() time.Time { return now }
	return service
}

func TestShowtimeService_CreateFutureShowtime(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	service := testShowtimeService(t, now)

	form := &schema.ShowtimeForm{MovieID: "m1", RoomID: "r1", StartAt: "2026-09-05T20:00"}
	showtime, err := service.CreateShowtime(context.Background(), form)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if showtime.ID == "" {
		t.Fatal("expected assigned id")
	}
}

func TestShowtimeService_CreateRejectsPastShowtime(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	service := testShowtimeService(t, now)

	form := &schema.ShowtimeForm{MovieID: "m1", RoomID: "r1", StartAt: "2026-08-30T20:00"}
	_, err := service.CreateShowtime(context.Background(), form)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Fields["dataHora"] == "" {
		t.Fatalf("expected dataHora error, got %v", validationErr.Fields)
	}
}
