package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/book/repository"
	"library-catalog/internal/shared/apperror"
	"library-catalog/pkg/cache"
)

type bookService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

func NewBookService(repo repository.RepositoryInterface, c cache.Cache) ServiceInterface {
	return &bookService{repo: repo, cache: c}
}

// ========================================
// QUERIES
// ========================================

func (s *bookService) ListBooks(ctx context.Context, req model.ListBooksRequest) ([]model.BookSummary, int, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, 0, apperror.FromValidation(err)
	}
	return s.repo.List(ctx, req.Limit, req.Offset())
}

// SearchBooks matches the term as a case-insensitive substring of title or
// ISBN. A blank term matches every book.
func (s *bookService) SearchBooks(ctx context.Context, req model.SearchBooksRequest) ([]model.BookSummary, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}
	return s.repo.Search(ctx, req.Query)
}

func (s *bookService) GetBookDetail(ctx context.Context, id int64) (*model.BookDetail, error) {
	if id <= 0 {
		return nil, model.ErrInvalidBookID
	}
	return s.repo.GetDetail(ctx, id)
}

// ========================================
// COMMANDS
// ========================================

func (s *bookService) CreateBook(ctx context.Context, req model.BookRequest) (int64, error) {
	in, err := req.ToInput()
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return 0, err
	}

	log.Info().
		Int64("book_id", id).
		Str("isbn", in.ISBN).
		Int("authors", len(in.AuthorIDs)).
		Int("genres", len(in.GenreIDs)).
		Msg("book created")
	s.invalidateReports(ctx)
	return id, nil
}

func (s *bookService) UpdateBook(ctx context.Context, id int64, req model.BookRequest) error {
	if id <= 0 {
		return model.ErrInvalidBookID
	}
	in, err := req.ToInput()
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return err
	}

	log.Info().Int64("book_id", id).Msg("book updated")
	s.invalidateReports(ctx)
	return nil
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidBookID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("book_id", id).Msg("book deleted")
	s.invalidateReports(ctx)
	return nil
}

func (s *bookService) invalidateReports(ctx context.Context) {
	if err := cache.InvalidateReports(ctx, s.cache); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate report cache")
	}
}
