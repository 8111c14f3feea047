package entity

// Showtime references a movie and a room by id. The store does not
// enforce referential integrity: a dangling reference is rendered as a
// placeholder by lookups, never an error.
type Showtime struct {
	ID      string `json:"id,omitempty"`
	MovieID string `json:"filmeId"`
	RoomID  string `json:"salaId"`
	StartAt string `json:"dataHora"`
}
