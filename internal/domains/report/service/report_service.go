package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/report/model"
	"library-catalog/internal/domains/report/repository"
	"library-catalog/pkg/cache"
)

type reportService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewReportService caches report rows for ttl. Writers that change counts
// invalidate the cache after commit, so ttl only bounds staleness when an
// invalidation fails.
func NewReportService(repo repository.RepositoryInterface, c cache.Cache, ttl time.Duration) ServiceInterface {
	return &reportService{repo: repo, cache: c, ttl: ttl, now: time.Now}
}

func (s *reportService) BooksByGenre(ctx context.Context) ([]model.BookCount, error) {
	return s.cached(ctx, model.CacheKeyBooksByGenre, s.repo.BooksByGenre)
}

func (s *reportService) BooksByAuthor(ctx context.Context) ([]model.BookCount, error) {
	return s.cached(ctx, model.CacheKeyBooksByAuthor, s.repo.BooksByAuthor)
}

// cached is read-through: cache errors are logged and the query runs.
// Without a readable generation the result is not cached at all.
func (s *reportService) cached(
	ctx context.Context,
	name string,
	load func(context.Context) ([]model.BookCount, error),
) ([]model.BookCount, error) {
	generation, err := cache.ReportGeneration(ctx, s.cache)
	if err != nil {
		log.Warn().Err(err).Str("report", name).Msg("report cache generation read failed")
		return s.load(ctx, load)
	}

	key := cache.ReportKey(generation, name)
	var rows []model.BookCount
	found, err := s.cache.Get(ctx, key, &rows)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("report cache read failed")
	}
	if found {
		return rows, nil
	}

	rows, err = s.load(ctx, load)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, rows, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("report cache write failed")
	}
	return rows, nil
}

func (s *reportService) load(
	ctx context.Context,
	load func(context.Context) ([]model.BookCount, error),
) ([]model.BookCount, error) {
	rows, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.BookCount{}
	}
	return rows, nil
}

func (s *reportService) summary(ctx context.Context) (*model.Summary, error) {
	byGenre, err := s.BooksByGenre(ctx)
	if err != nil {
		return nil, err
	}
	byAuthor, err := s.BooksByAuthor(ctx)
	if err != nil {
		return nil, err
	}
	return &model.Summary{
		GeneratedAt:   s.now(),
		BooksByGenre:  byGenre,
		BooksByAuthor: byAuthor,
	}, nil
}
