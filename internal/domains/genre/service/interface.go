package service

import (
	"context"

	"library-catalog/internal/domains/genre/model"
)

// ServiceInterface defines business operations for the genre domain
type ServiceInterface interface {
	CreateGenre(ctx context.Context, req model.GenreRequest) (*model.Genre, error)
	GetGenre(ctx context.Context, id int64) (*model.Genre, error)
	ListGenres(ctx context.Context) ([]model.Genre, error)
	UpdateGenre(ctx context.Context, id int64, req model.GenreRequest) (*model.Genre, error)
	DeleteGenre(ctx context.Context, id int64) error
}
