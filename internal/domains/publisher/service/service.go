package service

import (
	"context"

	"library-catalog/internal/domains/publisher/model"
)

// ServiceInterface defines all business logic operations for Publisher domain
type ServiceInterface interface {
	CreatePublisher(ctx context.Context, req model.PublisherRequest) (*model.Publisher, error)
	GetPublisher(ctx context.Context, id int64) (*model.Publisher, error)
	ListPublishers(ctx context.Context) ([]model.Publisher, error)
	UpdatePublisher(ctx context.Context, id int64, req model.PublisherRequest) (*model.Publisher, error)
	DeletePublisher(ctx context.Context, id int64) error
}
