package repository

import (
	"context"

	"library-catalog/internal/domains/report/model"
)

// RepositoryInterface runs the read-only aggregate queries. Rows are ordered
// by count descending, then name.
type RepositoryInterface interface {
	BooksByGenre(ctx context.Context) ([]model.BookCount, error)
	BooksByAuthor(ctx context.Context) ([]model.BookCount, error)
}
