package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/publisher/model"
	"library-catalog/internal/domains/publisher/repository"
	"library-catalog/internal/shared/apperror"
)

// publisherService does not touch the report cache: neither report
// depends on publishers.
type publisherService struct {
	repo repository.RepositoryInterface
}

func NewPublisherService(repo repository.RepositoryInterface) ServiceInterface {
	return &publisherService{repo: repo}
}

func (s *publisherService) CreatePublisher(ctx context.Context, req model.PublisherRequest) (*model.Publisher, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	p, err := s.repo.Create(ctx, req.ToPublisher(0))
	if err != nil {
		return nil, err
	}
	log.Info().Int64("publisher_id", p.ID).Msg("publisher created")
	return p, nil
}

func (s *publisherService) GetPublisher(ctx context.Context, id int64) (*model.Publisher, error) {
	if id <= 0 {
		return nil, model.ErrInvalidPublisherID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *publisherService) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	return s.repo.List(ctx)
}

// UpdatePublisher replaces name, address and contact.
func (s *publisherService) UpdatePublisher(ctx context.Context, id int64, req model.PublisherRequest) (*model.Publisher, error) {
	if id <= 0 {
		return nil, model.ErrInvalidPublisherID
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	p, err := s.repo.Update(ctx, req.ToPublisher(id))
	if err != nil {
		return nil, err
	}
	log.Info().Int64("publisher_id", id).Msg("publisher updated")
	return p, nil
}

func (s *publisherService) DeletePublisher(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidPublisherID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("publisher_id", id).Msg("publisher deleted")
	return nil
}
