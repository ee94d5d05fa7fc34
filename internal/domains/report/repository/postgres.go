package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"library-catalog/internal/domains/report/model"
	"library-catalog/pkg/database"
)

const (
	booksByGenreSQL = `
        SELECT g.id, g.name, COUNT(bg.book_id)::int AS book_count
        FROM genres g
        LEFT JOIN book_genres bg ON bg.genre_id = g.id
        GROUP BY g.id, g.name
        ORDER BY book_count DESC, g.name ASC, g.id ASC`

	booksByAuthorSQL = `
        SELECT a.id, a.name, COUNT(ba.book_id)::int AS book_count
        FROM authors a
        LEFT JOIN book_authors ba ON ba.author_id = a.id
        GROUP BY a.id, a.name
        ORDER BY book_count DESC, a.name ASC, a.id ASC`
)

type postgresRepository struct {
	pool database.Querier
}

func NewPostgresRepository(pool database.Querier) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) BooksByGenre(ctx context.Context) ([]model.BookCount, error) {
	return r.counts(ctx, "books by genre", booksByGenreSQL)
}

func (r *postgresRepository) BooksByAuthor(ctx context.Context) ([]model.BookCount, error) {
	return r.counts(ctx, "books by author", booksByAuthorSQL)
}

func (r *postgresRepository) counts(ctx context.Context, name, query string) ([]model.BookCount, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, database.Translate(fmt.Errorf("query %s: %w", name, err))
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.BookCount, error) {
		var c model.BookCount
		err := row.Scan(&c.ID, &c.Name, &c.BookCount)
		return c, err
	})
	if err != nil {
		return nil, database.Translate(fmt.Errorf("scan %s: %w", name, err))
	}
	return out, nil
}
