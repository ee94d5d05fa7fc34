package repository

import (
	"context"

	"library-catalog/internal/domains/genre/model"
)

// RepositoryInterface - Định nghĩa data access methods cho genre
type RepositoryInterface interface {
	Create(ctx context.Context, a *model.Genre) (*model.Genre, error)
	GetByID(ctx context.Context, id int64) (*model.Genre, error)
	List(ctx context.Context) ([]model.Genre, error)
	// Update replaces name and description. Returns ErrGenreNotFound for an unknown id.
	Update(ctx context.Context, a *model.Genre) (*model.Genre, error)
	// Delete is a guarded delete: it fails with ErrGenreHasBooks while any
	// book references the genre.
	Delete(ctx context.Context, id int64) error
}
