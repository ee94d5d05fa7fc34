package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/genre/model"
	"library-catalog/internal/domains/genre/repository"
	"library-catalog/internal/shared/apperror"
	"library-catalog/pkg/cache"
)

type genreService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

func NewGenreService(repo repository.RepositoryInterface, c cache.Cache) ServiceInterface {
	return &genreService{repo: repo, cache: c}
}

func (s *genreService) CreateGenre(ctx context.Context, req model.GenreRequest) (*model.Genre, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	created, err := s.repo.Create(ctx, req.ToGenre(0))
	if err != nil {
		return nil, err
	}

	log.Info().Int64("genre_id", created.ID).Msg("genre created")
	s.invalidateReports(ctx)
	return created, nil
}

func (s *genreService) GetGenre(ctx context.Context, id int64) (*model.Genre, error) {
	if id <= 0 {
		return nil, model.ErrInvalidGenreID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *genreService) ListGenres(ctx context.Context) ([]model.Genre, error) {
	return s.repo.List(ctx)
}

func (s *genreService) UpdateGenre(ctx context.Context, id int64, req model.GenreRequest) (*model.Genre, error) {
	if id <= 0 {
		return nil, model.ErrInvalidGenreID
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	updated, err := s.repo.Update(ctx, req.ToGenre(id))
	if err != nil {
		return nil, err
	}

	log.Info().Int64("genre_id", id).Msg("genre updated")
	s.invalidateReports(ctx)
	return updated, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidGenreID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("genre_id", id).Msg("genre deleted")
	s.invalidateReports(ctx)
	return nil
}

func (s *genreService) invalidateReports(ctx context.Context) {
	if err := cache.InvalidateReports(ctx, s.cache); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate report cache")
	}
}
