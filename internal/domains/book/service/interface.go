package service

import (
	"context"

	"library-catalog/internal/domains/book/model"
)

// ServiceInterface defines book business logic
type ServiceInterface interface {
	ListBooks(ctx context.Context, req model.ListBooksRequest) ([]model.BookSummary, int, error)
	SearchBooks(ctx context.Context, req model.SearchBooksRequest) ([]model.BookSummary, error)
	GetBookDetail(ctx context.Context, id int64) (*model.BookDetail, error)

	// CreateBook returns the id of the new book
	CreateBook(ctx context.Context, req model.BookRequest) (int64, error)
	UpdateBook(ctx context.Context, id int64, req model.BookRequest) error
	DeleteBook(ctx context.Context, id int64) error
}
