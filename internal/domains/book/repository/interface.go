package repository

import (
	"context"

	"library-catalog/internal/domains/book/model"
)

// RepositoryInterface defines book data access. Write operations run in a
// single transaction each; association sets are replaced, never merged.
type RepositoryInterface interface {
	// List trả về trang sách ordered by title; limit 0 trả về tất cả
	List(ctx context.Context, limit, offset int) ([]model.BookSummary, int, error)
	Search(ctx context.Context, term string) ([]model.BookSummary, error)
	GetDetail(ctx context.Context, id int64) (*model.BookDetail, error)

	Create(ctx context.Context, in model.BookInput) (int64, error)
	Update(ctx context.Context, id int64, in model.BookInput) error
	Delete(ctx context.Context, id int64) error
}
