package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Cache interface định nghĩa contract cho cache layer
// Cho phép swap implementation (Redis, no-op)
type Cache interface {
	// Get lấy data từ cache và unmarshal vào dest
	// - found = true: cache hit, data đã unmarshal vào dest
	// - found = false: cache miss, dest không bị thay đổi
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set lưu data vào cache với TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete xóa các keys khỏi cache
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern xóa tất cả keys match glob pattern (vd: "reports:*")
	DeletePattern(ctx context.Context, pattern string) error

	Ping(ctx context.Context) error
}

// ReportKeyPattern matches every cached report. Writers that change what a
// report shows delete it after their transaction committed.
const ReportKeyPattern = "reports:*"

// ReportGenerationKey holds the current report generation. It sits outside
// ReportKeyPattern so that invalidation does not delete it.
const ReportGenerationKey = "report_generation"

// ReportKey names a cached report within a generation. A read that loaded
// rows before an invalidation stores them under the old generation, where
// no later read looks.
func ReportKey(generation int64, name string) string {
	return fmt.Sprintf("reports:%d:%s", generation, name)
}

// ReportGeneration returns the current generation; 0 until the first write.
func ReportGeneration(ctx context.Context, c Cache) (int64, error) {
	var generation int64
	if _, err := c.Get(ctx, ReportGenerationKey, &generation); err != nil {
		return 0, err
	}
	return generation, nil
}

// InvalidateReports starts a new report generation and drops cached
// reports. Failures only mean a report may be stale until its TTL expires,
// so they are returned for logging.
func InvalidateReports(ctx context.Context, c Cache) error {
	if c == nil {
		return nil
	}
	bumpErr := c.Set(ctx, ReportGenerationKey, time.Now().UnixNano(), 0)
	return errors.Join(bumpErr, c.DeletePattern(ctx, ReportKeyPattern))
}
