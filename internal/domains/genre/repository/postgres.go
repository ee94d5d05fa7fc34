package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"library-catalog/internal/domains/genre/model"
	"library-catalog/pkg/database"
)

const (
	insertGenreSQL = `
        INSERT INTO genres (name, description)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	selectGenreSQL = `
        SELECT id, name, description, created_at, updated_at
        FROM genres
        WHERE id = $1`

	listGenresSQL = `
        SELECT id, name, description, created_at, updated_at
        FROM genres
        ORDER BY name ASC, id ASC`

	updateGenreSQL = `
        UPDATE genres
        SET name = $2, description = $3, updated_at = NOW()
        WHERE id = $1
        RETURNING created_at, updated_at`
)

var deleteGenreGuard = database.DeleteGuard{
	LockSQL:   `SELECT id FROM genres WHERE id = $1 FOR UPDATE`,
	CountSQL:  `SELECT COUNT(*) FROM book_genres WHERE genre_id = $1`,
	DeleteSQL: `DELETE FROM genres WHERE id = $1`,
	NotFound:  model.ErrGenreNotFound,
	Conflict:  model.ErrGenreHasBooks,
}

// postgresRepository implements RepositoryInterface on PostgreSQL
type postgresRepository struct {
	pool database.Pool
	tx   *database.TxRunner
}

// NewPostgresRepository creates a new genre repository instance
func NewPostgresRepository(pool database.Pool, tx *database.TxRunner) RepositoryInterface {
	return &postgresRepository{pool: pool, tx: tx}
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Genre) (*model.Genre, error) {
	created := *a
	err := r.pool.QueryRow(ctx, insertGenreSQL, a.Name, a.Description).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, database.Translate(fmt.Errorf("create genre: %w", err))
	}
	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Genre, error) {
	var a model.Genre
	err := r.pool.QueryRow(ctx, selectGenreSQL, id).
		Scan(&a.ID, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrGenreNotFound
		}
		return nil, database.Translate(fmt.Errorf("get genre %d: %w", id, err))
	}
	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.pool.Query(ctx, listGenresSQL)
	if err != nil {
		return nil, database.Translate(fmt.Errorf("list genres: %w", err))
	}

	genres, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Genre, error) {
		var a model.Genre
		err := row.Scan(&a.ID, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt)
		return a, err
	})
	if err != nil {
		return nil, database.Translate(fmt.Errorf("scan genres: %w", err))
	}
	return genres, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Genre) (*model.Genre, error) {
	updated := *a
	err := r.pool.QueryRow(ctx, updateGenreSQL, a.ID, a.Name, a.Description).
		Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrGenreNotFound
		}
		return nil, database.Translate(fmt.Errorf("update genre %d: %w", a.ID, err))
	}
	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return deleteGenreGuard.Run(ctx, tx, id)
	})
}
