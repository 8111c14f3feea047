package schema

import (
	"testing"

	"cinema-manager/internal/data/entity"
)

func TestTicketFormValidate_FullFare(t *testing.T) {
	form := TicketForm{ShowtimeID: "s1", Fare: "inteira", Quantity: 3, Total: 84.00}

	ticket, errs := form.Validate()
	if errs != nil {
		t.Fatalf("expected no field errors, got %v", errs)
	}
	if ticket.Fare != entity.FareFull || ticket.Quantity != 3 || ticket.Total != 84.00 {
		t.Fatalf("unexpected ticket: %+v", ticket)
	}
}

func TestTicketFormValidate_HalfFare(t *testing.T) {
	form := TicketForm{ShowtimeID: "s1", Fare: "meia", Quantity: 2, Total: 28.00}

	ticket, errs := form.Validate()
	if errs != nil {
		t.Fatalf("expected no field errors, got %v", errs)
	}
	if ticket.Fare != entity.FareHalf || ticket.Total != 28.00 {
		t.Fatalf("unexpected ticket: %+v", ticket)
	}
}

func TestTicketFormValidate_TotalMismatch(t *testing.T) {
	form := TicketForm{ShowtimeID: "s1", Fare: "inteira", Quantity: 2, Total: 14.00}

	ticket, errs := form.Validate()
	if ticket != nil {
		t.Fatalf("expected nil ticket, got %+v", ticket)
	}
	if errs["valorTotal"] != "Valor total não confere com o tipo e a quantidade" {
		t.Fatalf("unexpected valorTotal error: %q", errs["valorTotal"])
	}
}

func TestTicketFormValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		form  TicketForm
		field string
	}{
		{"missing showtime", TicketForm{Fare: "inteira", Quantity: 1, Total: 28}, "sessaoId"},
		{"unknown fare", TicketForm{ShowtimeID: "s1", Fare: "estudante", Quantity: 1, Total: 28}, "tipo"},
		{"zero quantity", TicketForm{ShowtimeID: "s1", Fare: "inteira", Total: 28}, "quantidade"},
		{"negative quantity", TicketForm{ShowtimeID: "s1", Fare: "inteira", Quantity: -1, Total: 28}, "quantidade"},
		{"zero total", TicketForm{ShowtimeID: "s1", Fare: "inteira", Quantity: 1}, "valorTotal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, errs := tt.form.Validate()
			if ticket != nil {
				t.Fatalf("expected nil ticket, got %+v", ticket)
			}
			if errs[tt.field] == "" {
				t.Fatalf("expected error on %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestTotalFor(t *testing.T) {
	if got := entity.TotalFor(entity.FareFull, 3); got != 84.00 {
		t.Fatalf("expected 84.00, got %v", got)
	}
	if got := entity.TotalFor(entity.FareHalf, 2); got != 28.00 {
		t.Fatalf("expected 28.00, got %v", got)
	}
	if got := entity.UnitPrice(entity.FareHalf); got != 14.00 {
		t.Fatalf("expected 14.00, got %v", got)
	}
}
