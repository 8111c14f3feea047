package schema

import (
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/utils"
)

type ShowtimeForm struct {
	MovieID string `json:"filmeId" validate:"required"`
	RoomID  string `json:"salaId" validate:"required"`
	StartAt string `json:"dataHora" validate:"required"`
}

// Validate checks the form against a reference instant: identical input
// can pass or fail depending on when it is submitted, so callers inject
// "now" instead of the schema reading the clock.
func (f *ShowtimeForm) Validate(now time.Time) (*entity.Showtime, map[string]string) {
	errs := utils.ValidateStruct(f)

	if _, bad := errs["dataHora"]; !bad {
		startAt, err := utils.ParseDateTime(f.StartAt)
		switch {
		case err != nil:
			errs = setFieldError(errs, "dataHora", "Data e hora inválidas")
		case startAt.Before(now):
			errs = setFieldError(errs, "dataHora", "A data da sessão não pode ser retroativa (anterior à data atual)")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &entity.Showtime{
		MovieID: f.MovieID,
		RoomID:  f.RoomID,
		StartAt: f.StartAt,
	}, nil
}

func FormFromShowtime(s *entity.Showtime) ShowtimeForm {
	return ShowtimeForm{
		MovieID: s.MovieID,
		RoomID:  s.RoomID,
		StartAt: s.StartAt,
	}
}
