// Package cachetest provides a testify mock of cache.Cache.
package cachetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"library-catalog/pkg/cache"
)

type MockCache struct {
	mock.Mock
}

var _ cache.Cache = (*MockCache)(nil)

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *MockCache) DeletePattern(ctx context.Context, pattern string) error {
	return m.Called(ctx, pattern).Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// ExpectReportInvalidation registers the generation bump and the delete
// issued after a committed write.
func (m *MockCache) ExpectReportInvalidation() *mock.Call {
	m.On("Set", mock.Anything, cache.ReportGenerationKey, mock.Anything, time.Duration(0)).Return(nil)
	return m.On("DeletePattern", mock.Anything, cache.ReportKeyPattern).Return(nil)
}
