package entity

type Fare string

const (
	FareFull Fare = "inteira"
	FareHalf Fare = "meia"
)

// Fixed box-office prices in BRL.
const (
	PriceFull = 28.0
	PriceHalf = 14.0
)

type Ticket struct {
	ID         string  `json:"id,omitempty"`
	ShowtimeID string  `json:"sessaoId"`
	Fare       Fare    `json:"tipo"`
	Quantity   int     `json:"quantidade"`
	Total      float64 `json:"valorTotal"`
}

// UnitPrice returns the price of a single ticket for the given fare.
// Unknown fares price as full; validation rejects them before this matters.
func UnitPrice(fare Fare) float64 {
	if fare == FareHalf {
		return PriceHalf
	}
	return PriceFull
}

// TotalFor is the only place a ticket total is derived from.
func TotalFor(fare Fare, quantity int) float64 {
	return UnitPrice(fare) * float64(quantity)
}
