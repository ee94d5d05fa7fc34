package repository

import (
	"context"

	"library-catalog/internal/domains/author/model"
)

// RepositoryInterface - Định nghĩa data access methods cho author
type RepositoryInterface interface {
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	List(ctx context.Context) ([]model.Author, error)
	// Update replaces name and biography. Returns ErrAuthorNotFound for an unknown id.
	Update(ctx context.Context, a *model.Author) (*model.Author, error)
	// Delete is a guarded delete: it fails with ErrAuthorHasBooks while any
	// book references the author.
	Delete(ctx context.Context, id int64) error
}
