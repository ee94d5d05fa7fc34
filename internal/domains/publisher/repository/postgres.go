package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"library-catalog/internal/domains/publisher/model"
	"library-catalog/pkg/database"
)

const publisherColumns = `id, name, address, contact, created_at, updated_at`

const (
	insertPublisherSQL = `
        INSERT INTO publishers (name, address, contact)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	selectPublisherSQL = `SELECT ` + publisherColumns + ` FROM publishers WHERE id = $1`

	listPublishersSQL = `SELECT ` + publisherColumns + ` FROM publishers ORDER BY name ASC, id ASC`

	updatePublisherSQL = `
        UPDATE publishers
        SET name = $2, address = $3, contact = $4, updated_at = NOW()
        WHERE id = $1
        RETURNING created_at, updated_at`
)

var deletePublisherGuard = database.DeleteGuard{
	LockSQL:   `SELECT id FROM publishers WHERE id = $1 FOR UPDATE`,
	CountSQL:  `SELECT COUNT(*) FROM books WHERE publisher_id = $1`,
	DeleteSQL: `DELETE FROM publishers WHERE id = $1`,
	NotFound:  model.ErrPublisherNotFound,
	Conflict:  model.ErrPublisherHasBooks,
}

type postgresRepository struct {
	pool database.Pool
	tx   *database.TxRunner
}

func NewPostgresRepository(pool database.Pool, tx *database.TxRunner) RepositoryInterface {
	return &postgresRepository{pool: pool, tx: tx}
}

func scanPublisher(row pgx.Row) (model.Publisher, error) {
	var p model.Publisher
	err := row.Scan(&p.ID, &p.Name, &p.Address, &p.Contact, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Publisher) (*model.Publisher, error) {
	created := *p
	err := r.pool.QueryRow(ctx, insertPublisherSQL, p.Name, p.Address, p.Contact).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, database.Translate(fmt.Errorf("create publisher: %w", err))
	}
	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Publisher, error) {
	p, err := scanPublisher(r.pool.QueryRow(ctx, selectPublisherSQL, id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrPublisherNotFound
		}
		return nil, database.Translate(fmt.Errorf("get publisher %d: %w", id, err))
	}
	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Publisher, error) {
	rows, err := r.pool.Query(ctx, listPublishersSQL)
	if err != nil {
		return nil, database.Translate(fmt.Errorf("list publishers: %w", err))
	}
	publishers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Publisher, error) {
		return scanPublisher(row)
	})
	if err != nil {
		return nil, database.Translate(fmt.Errorf("scan publishers: %w", err))
	}
	return publishers, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Publisher) (*model.Publisher, error) {
	updated := *p
	err := r.pool.QueryRow(ctx, updatePublisherSQL, p.ID, p.Name, p.Address, p.Contact).
		Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrPublisherNotFound
		}
		return nil, database.Translate(fmt.Errorf("update publisher %d: %w", p.ID, err))
	}
	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return deletePublisherGuard.Run(ctx, tx, id)
	})
}
