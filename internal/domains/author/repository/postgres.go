package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"library-catalog/internal/domains/author/model"
	"library-catalog/pkg/database"
)

const (
	insertAuthorSQL = `
        INSERT INTO authors (name, biography)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	selectAuthorSQL = `
        SELECT id, name, biography, created_at, updated_at
        FROM authors
        WHERE id = $1`

	listAuthorsSQL = `
        SELECT id, name, biography, created_at, updated_at
        FROM authors
        ORDER BY name ASC, id ASC`

	updateAuthorSQL = `
        UPDATE authors
        SET name = $2, biography = $3, updated_at = NOW()
        WHERE id = $1
        RETURNING created_at, updated_at`
)

var deleteAuthorGuard = database.DeleteGuard{
	LockSQL:   `SELECT id FROM authors WHERE id = $1 FOR UPDATE`,
	CountSQL:  `SELECT COUNT(*) FROM book_authors WHERE author_id = $1`,
	DeleteSQL: `DELETE FROM authors WHERE id = $1`,
	NotFound:  model.ErrAuthorNotFound,
	Conflict:  model.ErrAuthorHasBooks,
}

// postgresRepository implements RepositoryInterface on PostgreSQL
type postgresRepository struct {
	pool database.Pool
	tx   *database.TxRunner
}

// NewPostgresRepository creates a new author repository instance
func NewPostgresRepository(pool database.Pool, tx *database.TxRunner) RepositoryInterface {
	return &postgresRepository{pool: pool, tx: tx}
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := *a
	err := r.pool.QueryRow(ctx, insertAuthorSQL, a.Name, a.Biography).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, database.Translate(fmt.Errorf("create author: %w", err))
	}
	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	var a model.Author
	err := r.pool.QueryRow(ctx, selectAuthorSQL, id).
		Scan(&a.ID, &a.Name, &a.Biography, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, database.Translate(fmt.Errorf("get author %d: %w", id, err))
	}
	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Author, error) {
	rows, err := r.pool.Query(ctx, listAuthorsSQL)
	if err != nil {
		return nil, database.Translate(fmt.Errorf("list authors: %w", err))
	}

	authors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Author, error) {
		var a model.Author
		err := row.Scan(&a.ID, &a.Name, &a.Biography, &a.CreatedAt, &a.UpdatedAt)
		return a, err
	})
	if err != nil {
		return nil, database.Translate(fmt.Errorf("scan authors: %w", err))
	}
	return authors, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	updated := *a
	err := r.pool.QueryRow(ctx, updateAuthorSQL, a.ID, a.Name, a.Biography).
		Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, database.Translate(fmt.Errorf("update author %d: %w", a.ID, err))
	}
	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return deleteAuthorGuard.Run(ctx, tx, id)
	})
}
