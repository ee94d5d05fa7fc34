package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/publisher/model"
	"library-catalog/internal/shared/apperror"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, p *model.Publisher) (*model.Publisher, error) {
	args := m.Called(ctx, p)
	if v := args.Get(0); v != nil {
		return v.(*model.Publisher), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*model.Publisher, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Publisher), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]model.Publisher, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Publisher), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, p *model.Publisher) (*model.Publisher, error) {
	args := m.Called(ctx, p)
	if v := args.Get(0); v != nil {
		return v.(*model.Publisher), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestCreatePublisher_TrimsOptionalFields(t *testing.T) {
	repo := &mockRepo{}
	blank := "   "
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Publisher) bool {
		return p.Name == "P1" && p.Address == nil && p.Contact == nil
	})).Return(&model.Publisher{ID: 1, Name: "P1"}, nil)

	got, err := NewPublisherService(repo).CreatePublisher(context.Background(),
		model.PublisherRequest{Name: " P1", Address: &blank})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	repo.AssertExpectations(t)
}

func TestCreatePublisher_Invalid(t *testing.T) {
	repo := &mockRepo{}
	_, err := NewPublisherService(repo).CreatePublisher(context.Background(), model.PublisherRequest{})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Details, "name")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeletePublisher_PropagatesConflict(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Delete", mock.Anything, int64(4)).Return(model.ErrPublisherHasBooks)

	err := NewPublisherService(repo).DeletePublisher(context.Background(), 4)
	assert.ErrorIs(t, err, model.ErrPublisherHasBooks)
}

func TestGetPublisher_InvalidID(t *testing.T) {
	_, err := NewPublisherService(&mockRepo{}).GetPublisher(context.Background(), -1)
	assert.ErrorIs(t, err, model.ErrInvalidPublisherID)
}
