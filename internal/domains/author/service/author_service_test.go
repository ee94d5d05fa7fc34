package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/shared/apperror"
	"library-catalog/pkg/cache/cachetest"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	args := m.Called(ctx, a)
	if v := args.Get(0); v != nil {
		return v.(*model.Author), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Author), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]model.Author, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	args := m.Called(ctx, a)
	if v := args.Get(0); v != nil {
		return v.(*model.Author), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestCreateAuthor(t *testing.T) {
	repo := &mockRepo{}
	c := &cachetest.MockCache{}
	svc := NewAuthorService(repo, c)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Author) bool {
		return a.Name == "A1" && a.ID == 0
	})).Return(&model.Author{ID: 1, Name: "A1"}, nil)
	c.ExpectReportInvalidation()

	got, err := svc.CreateAuthor(context.Background(), model.AuthorRequest{Name: "  A1 "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	repo.AssertExpectations(t)
	c.AssertExpectations(t)
}

func TestCreateAuthor_ValidationBeforeRepository(t *testing.T) {
	repo := &mockRepo{}
	svc := NewAuthorService(repo, &cachetest.MockCache{})

	_, err := svc.CreateAuthor(context.Background(), model.AuthorRequest{Name: " "})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateAuthor_NotFound(t *testing.T) {
	repo := &mockRepo{}
	c := &cachetest.MockCache{}
	svc := NewAuthorService(repo, c)

	repo.On("Update", mock.Anything, mock.Anything).Return(nil, model.ErrAuthorNotFound)

	_, err := svc.UpdateAuthor(context.Background(), 9, model.AuthorRequest{Name: "A"})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	c.AssertNotCalled(t, "DeletePattern", mock.Anything, mock.Anything)
}

func TestDeleteAuthor(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		svc := NewAuthorService(&mockRepo{}, &cachetest.MockCache{})
		assert.ErrorIs(t, svc.DeleteAuthor(context.Background(), 0), model.ErrInvalidAuthorID)
	})

	t.Run("has books", func(t *testing.T) {
		repo := &mockRepo{}
		c := &cachetest.MockCache{}
		repo.On("Delete", mock.Anything, int64(2)).Return(model.ErrAuthorHasBooks)

		err := NewAuthorService(repo, c).DeleteAuthor(context.Background(), 2)
		assert.ErrorIs(t, err, model.ErrAuthorHasBooks)
		c.AssertNotCalled(t, "DeletePattern", mock.Anything, mock.Anything)
	})

	t.Run("deleted", func(t *testing.T) {
		repo := &mockRepo{}
		c := &cachetest.MockCache{}
		repo.On("Delete", mock.Anything, int64(2)).Return(nil)
		c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
		c.On("DeletePattern", mock.Anything, mock.Anything).Return(errors.New("redis down"))

		assert.NoError(t, NewAuthorService(repo, c).DeleteAuthor(context.Background(), 2))
		c.AssertExpectations(t)
	})
}

func TestListAuthors(t *testing.T) {
	repo := &mockRepo{}
	repo.On("List", mock.Anything).Return([]model.Author{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil)

	got, err := NewAuthorService(repo, nil).ListAuthors(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
