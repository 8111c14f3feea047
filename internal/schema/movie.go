package schema

import (
	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/utils"
)

type MovieForm struct {
	Title     string `json:"titulo" validate:"required"`
	Synopsis  string `json:"sinopse" validate:"required,min=10"`
	Genre     string `json:"genero" validate:"required"`
	Rating    string `json:"classificacao" validate:"required,oneof=L 10 12 14 16 18"`
	Duration  int    `json:"duracao" validate:"required,gt=0"`
	Cast      string `json:"elenco"`
	StartDate string `json:"dataInicio" validate:"required"`
	EndDate   string `json:"dataFim" validate:"required"`
}

// Validate returns the normalized movie or the field errors. Valid
// input passes through unchanged.
func (f *MovieForm) Validate() (*entity.Movie, map[string]string) {
	errs := utils.ValidateStruct(f)

	// The screening window must be ordered when both dates parse.
	if _, bad := errs["dataFim"]; !bad {
		if start, err := parseDate(f.StartDate); err == nil {
			if end, err := parseDate(f.EndDate); err == nil && end.Before(start) {
				errs = setFieldError(errs, "dataFim", "A data de fim deve ser posterior à data de início")
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &entity.Movie{
		Title:     f.Title,
		Synopsis:  f.Synopsis,
		Genre:     f.Genre,
		Rating:    entity.Rating(f.Rating),
		Duration:  f.Duration,
		Cast:      f.Cast,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
	}, nil
}

// FormFromMovie seeds a form from an existing record, for the
// edit-then-resubmit cycle.
func FormFromMovie(m *entity.Movie) MovieForm {
	return MovieForm{
		Title:     m.Title,
		Synopsis:  m.Synopsis,
		Genre:     m.Genre,
		Rating:    string(m.Rating),
		Duration:  m.Duration,
		Cast:      m.Cast,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
	}
}
