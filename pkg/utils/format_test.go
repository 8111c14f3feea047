package utils

import (
	"testing"
	"time"
)

func TestParseDateTime_AcceptedLayouts(t *testing.T) {
	tests := []string{
		"2026-09-05T20:30",
		"2026-09-05T20:30:00",
	}
	for _, value := range tests {
		parsed, err := ParseDateTime(value)
		if err != nil {
			t.Fatalf("ParseDateTime(%q): %v", value, err)
		}
		want := time.Date(2026, 9, 5, 20, 30, 0, 0, time.Local)
		if !parsed.Equal(want) {
			t.Fatalf("ParseDateTime(%q) = %v, want %v", value, parsed, want)
		}
	}
}

func TestParseDateTime_Invalid(t *testing.T) {
	if _, err := ParseDateTime("05/09/2026 20:30"); err == nil {
		t.Fatal("expected error")
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-09-05", "05/09/2026"},
		{"", "N/A"},
		{"garbage", "N/A"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Fatalf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	if got := FormatDateTime("2026-09-05T20:30"); got != "05/09/2026 20:30" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := FormatDateTime(""); got != "N/A" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{28, "R$ 28,00"},
		{14, "R$ 14,00"},
		{84, "R$ 84,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.89, "R$ 1.234.567,89"},
		{0, "R$ 0,00"},
		{-14, "-R$ 14,00"},
		{0.1, "R$ 0,10"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Fatalf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRatingColor(t *testing.T) {
	if got := RatingColor("L"); got != "success" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := RatingColor("18"); got != "dark" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := RatingColor("??"); got != "secondary" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestRoomTypeBadge(t *testing.T) {
	if got := RoomTypeBadge("IMAX"); got != "bg-dark text-warning" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := RoomTypeBadge("4DX"); got != "bg-secondary" {
		t.Fatalf("unexpected: %q", got)
	}
}
