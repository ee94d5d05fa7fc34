package model

import "time"

// Report names used in cache keys, see cache.ReportKey.
const (
	CacheKeyBooksByGenre  = "books_by_genre"
	CacheKeyBooksByAuthor = "books_by_author"
)

// BookCount is one row of an aggregate report. Entities without books
// are included with a zero count.
type BookCount struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BookCount int    `json:"book_count"`
}

// Summary bundles both reports for the workbook export.
type Summary struct {
	GeneratedAt   time.Time   `json:"generated_at"`
	BooksByGenre  []BookCount `json:"books_by_genre"`
	BooksByAuthor []BookCount `json:"books_by_author"`
}
