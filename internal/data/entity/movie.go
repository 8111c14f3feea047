package entity

// Rating is the Brazilian age classification printed on the movie badge.
type Rating string

const (
	RatingFree Rating = "L"
	Rating10   Rating = "10"
	Rating12   Rating = "12"
	Rating14   Rating = "14"
	Rating16   Rating = "16"
	Rating18   Rating = "18"
)

// Movie uses the store's wire field names (the db.json dialect the
// original data was created with), so records round-trip unchanged.
type Movie struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"titulo"`
	Synopsis  string `json:"sinopse"`
	Genre     string `json:"genero"`
	Rating    Rating `json:"classificacao"`
	Duration  int    `json:"duracao"`
	Cast      string `json:"elenco"`
	StartDate string `json:"dataInicio"`
	EndDate   string `json:"dataFim"`
}
