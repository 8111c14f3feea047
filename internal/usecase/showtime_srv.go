package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/schema"

	"go.uber.org/zap"
)

type ShowtimeService interface {
	GetShowtimes(ctx context.Context) ([]*entity.Showtime, error)
	GetShowtimeByID(ctx context.Context, showtimeID string) (*entity.Showtime, error)
	CreateShowtime(ctx context.Context, form *schema.ShowtimeForm) (*entity.Showtime, error)
	UpdateShowtime(ctx context.Context, showtimeID string, patch json.RawMessage) (*entity.Showtime, error)
	DeleteShowtime(ctx context.Context, showtimeID string) error
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
		now:  time.Now,
	}
}

func (s *showtimeService) GetShowtimes(ctx context.Context) ([]*entity.Showtime, error) {
	showtimes, err := s.repo.Showtime.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get showtimes", zap.Error(err))
		return nil, fmt.Errorf("get showtimes: %w", err)
	}
	return showtimes, nil
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, showtimeID string) (*entity.Showtime, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		s.log.Error("Failed to get showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", showtimeID),
		)
		return nil, fmt.Errorf("get showtime by id: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", showtimeID, repository.ErrNotFound)
	}
	return showtime, nil
}

func (s *showtimeService) CreateShowtime(ctx context.Context, form *schema.ShowtimeForm) (*entity.Showtime, error) {
	// Past-dated showtimes are rejected relative to submission time.
	showtime, fieldErrors := form.Validate(s.now())
	if fieldErrors != nil {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", fieldErrors))
		return nil, &ValidationError{Fields: fieldErrors}
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		s.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID),
		)
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID),
		zap.String("movie_id", showtime.MovieID),
		zap.String("room_id", showtime.RoomID),
	)
	return showtime, nil
}

func (s *showtimeService) UpdateShowtime(ctx context.Context, showtimeID string, patch json.RawMessage) (*entity.Showtime, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", showtimeID, repository.ErrNotFound)
	}

	updated := *showtime
	if err := json.Unmarshal(patch, &updated); err != nil {
		return nil, fmt.Errorf("invalid patch body: %w", err)
	}
	updated.ID = showtime.ID

	form := schema.FormFromShowtime(&updated)
	if _, fieldErrors := form.Validate(s.now()); fieldErrors != nil {
		s.log.Warn("Update showtime validation failed",
			zap.String("showtime_id", showtimeID),
			zap.Any("errors", fieldErrors),
		)
		return nil, &ValidationError{Fields: fieldErrors}
	}

	if err := s.repo.Showtime.Update(ctx, &updated); err != nil {
		s.log.Error("Failed to update showtime",
			zap.Error(err),
			zap.String("showtime_id", showtimeID),
		)
		return nil, fmt.Errorf("update showtime: %w", err)
	}

	s.log.Info("Showtime updated", zap.String("showtime_id", showtimeID))
	return &updated, nil
}

func (s *showtimeService) DeleteShowtime(ctx context.Context, showtimeID string) error {
	if err := s.repo.Showtime.Delete(ctx, showtimeID); err != nil {
		s.log.Error("Failed to delete showtime",
			zap.Error(err),
			zap.String("showtime_id", showtimeID),
		)
		return fmt.Errorf("delete showtime: %w", err)
	}
	return nil
}
