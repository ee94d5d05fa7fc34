package service

import (
	"context"

	"library-catalog/internal/domains/author/model"
)

// ServiceInterface defines business operations for the author domain
type ServiceInterface interface {
	CreateAuthor(ctx context.Context, req model.AuthorRequest) (*model.Author, error)
	GetAuthor(ctx context.Context, id int64) (*model.Author, error)
	ListAuthors(ctx context.Context) ([]model.Author, error)
	UpdateAuthor(ctx context.Context, id int64, req model.AuthorRequest) (*model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
}
