package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/schema"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]*entity.Movie, error)
	GetMovieByID(ctx context.Context, movieID string) (*entity.Movie, error)
	CreateMovie(ctx context.Context, form *schema.MovieForm) (*entity.Movie, error)
	UpdateMovie(ctx context.Context, movieID string, patch json.RawMessage) (*entity.Movie, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}
	return movies, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*entity.Movie, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, repository.ErrNotFound)
	}
	return movie, nil
}

func (s *movieService) CreateMovie(ctx context.Context, form *schema.MovieForm) (*entity.Movie, error) {
	movie, fieldErrors := form.Validate()
	if fieldErrors != nil {
		s.log.Warn("Create movie validation failed", zap.Any("errors", fieldErrors))
		return nil, &ValidationError{Fields: fieldErrors}
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)
	return movie, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, patch json.RawMessage) (*entity.Movie, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, repository.ErrNotFound)
	}

	// Merge-patch: unmarshalling over the existing record only touches
	// the fields present in the body.
	updated := *movie
	if err := json.Unmarshal(patch, &updated); err != nil {
		return nil, fmt.Errorf("invalid patch body: %w", err)
	}
	updated.ID = movie.ID

	form := schema.FormFromMovie(&updated)
	if _, fieldErrors := form.Validate(); fieldErrors != nil {
		s.log.Warn("Update movie validation failed",
			zap.String("movie_id", movieID),
			zap.Any("errors", fieldErrors),
		)
		return nil, &ValidationError{Fields: fieldErrors}
	}

	if err := s.repo.Movie.Update(ctx, &updated); err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", updated.Title),
	)
	return &updated, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("delete movie: %w", err)
	}
	return nil
}
