package repository

import (
	"context"

	"library-catalog/internal/domains/publisher/model"
)

// RepositoryInterface defines all data access operations for Publisher domain
type RepositoryInterface interface {
	Create(ctx context.Context, p *model.Publisher) (*model.Publisher, error)
	GetByID(ctx context.Context, id int64) (*model.Publisher, error)
	List(ctx context.Context) ([]model.Publisher, error)
	Update(ctx context.Context, p *model.Publisher) (*model.Publisher, error)
	// Delete refuses while any book has publisher_id = id.
	Delete(ctx context.Context, id int64) error
}
