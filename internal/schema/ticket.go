package schema

import (
	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/utils"
)

type TicketForm struct {
	ShowtimeID string  `json:"sessaoId" validate:"required"`
	Fare       string  `json:"tipo" validate:"required,oneof=inteira meia"`
	Quantity   int     `json:"quantidade" validate:"required,gt=0"`
	Total      float64 `json:"valorTotal" validate:"required,gt=0"`
}

// Validate re-derives the total from fare and quantity and rejects a
// mismatch, so a caller cannot smuggle in an arbitrary amount.
func (f *TicketForm) Validate() (*entity.Ticket, map[string]string) {
	errs := utils.ValidateStruct(f)

	if _, bad := errs["valorTotal"]; !bad && errs["tipo"] == "" && errs["quantidade"] == "" {
		if f.Total != entity.TotalFor(entity.Fare(f.Fare), f.Quantity) {
			errs = setFieldError(errs, "valorTotal", "Valor total não confere com o tipo e a quantidade")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &entity.Ticket{
		ShowtimeID: f.ShowtimeID,
		Fare:       entity.Fare(f.Fare),
		Quantity:   f.Quantity,
		Total:      f.Total,
	}, nil
}
