package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/repository"
	"library-catalog/internal/shared/apperror"
	"library-catalog/pkg/cache"
)

type authorService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

func NewAuthorService(repo repository.RepositoryInterface, c cache.Cache) ServiceInterface {
	return &authorService{repo: repo, cache: c}
}

func (s *authorService) CreateAuthor(ctx context.Context, req model.AuthorRequest) (*model.Author, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	created, err := s.repo.Create(ctx, req.ToAuthor(0))
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", created.ID).Msg("author created")
	s.invalidateReports(ctx)
	return created, nil
}

func (s *authorService) GetAuthor(ctx context.Context, id int64) (*model.Author, error) {
	if id <= 0 {
		return nil, model.ErrInvalidAuthorID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) UpdateAuthor(ctx context.Context, id int64, req model.AuthorRequest) (*model.Author, error) {
	if id <= 0 {
		return nil, model.ErrInvalidAuthorID
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	updated, err := s.repo.Update(ctx, req.ToAuthor(id))
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", id).Msg("author updated")
	s.invalidateReports(ctx)
	return updated, nil
}

func (s *authorService) DeleteAuthor(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidAuthorID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("author_id", id).Msg("author deleted")
	s.invalidateReports(ctx)
	return nil
}

func (s *authorService) invalidateReports(ctx context.Context) {
	if err := cache.InvalidateReports(ctx, s.cache); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate report cache")
	}
}
