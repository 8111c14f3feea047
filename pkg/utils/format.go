package utils

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Layouts accepted for showtime date-times. The first is what the
// original forms produced (HTML datetime-local, no seconds).
var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDateTime parses a showtime date-time string in any accepted layout.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", value)
}

// FormatDate renders a yyyy-mm-dd date as dd/mm/yyyy, "N/A" when empty
// or unparseable.
func FormatDate(value string) string {
	if value == "" {
		return "N/A"
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return "N/A"
	}
	return t.Format("02/01/2006")
}

// FormatDateTime renders a showtime date-time as dd/mm/yyyy hh:mm.
func FormatDateTime(value string) string {
	if value == "" {
		return "N/A"
	}
	t, err := ParseDateTime(value)
	if err != nil {
		return "N/A"
	}
	return t.Format("02/01/2006 15:04")
}

// FormatCurrency renders a value in BRL, pt-BR style: R$ 1.234,56.
func FormatCurrency(value float64) string {
	negative := value < 0
	cents := int64(math.Round(math.Abs(value) * 100))

	intPart := strconv.FormatInt(cents/100, 10)
	grouped := ""
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped += "."
		}
		grouped += string(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped, cents%100)
}

// RatingColor maps an age classification to its badge color.
func RatingColor(rating string) string {
	colors := map[string]string{
		"L":  "success",
		"10": "primary",
		"12": "warning",
		"14": "orange",
		"16": "danger",
		"18": "dark",
	}
	if color, ok := colors[rating]; ok {
		return color
	}
	return "secondary"
}

// RoomTypeBadge maps a room type to its badge class.
func RoomTypeBadge(roomType string) string {
	classes := map[string]string{
		"2D":   "bg-secondary",
		"3D":   "bg-primary",
		"IMAX": "bg-dark text-warning",
	}
	if class, ok := classes[roomType]; ok {
		return class
	}
	return "bg-secondary"
}

// MovieGenres is the fixed list offered by the movie form.
var MovieGenres = []string{
	"Ação",
	"Aventura",
	"Comédia",
	"Drama",
	"Ficção Científica",
	"Romance",
	"Terror",
	"Suspense",
	"Animação",
	"Documentário",
}
