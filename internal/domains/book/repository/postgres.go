package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/shared/apperror"
	"library-catalog/internal/shared/utils"
	"library-catalog/pkg/database"
)

// ========================================
// QUERIES
// ========================================

const (
	summaryColumns = `book_id, title, isbn, publication_date, copies_available, publisher_id, publisher_name`

	// LIMIT NULL means no limit
	listBooksSQL = `
        SELECT ` + summaryColumns + `
        FROM vw_book_details
        ORDER BY title ASC, book_id ASC
        LIMIT $1 OFFSET $2`

	countBooksSQL = `SELECT COUNT(*) FROM books`

	searchBooksSQL = `
        SELECT ` + summaryColumns + `
        FROM vw_book_details
        WHERE title ILIKE $1 OR isbn ILIKE $1
        ORDER BY title ASC, book_id ASC`

	bookDetailSQL = `
        SELECT ` + summaryColumns + `,
               COALESCE((SELECT array_agg(a.author_id ORDER BY a.author_name, a.author_id)
                         FROM vw_book_authors a WHERE a.book_id = d.book_id), '{}') AS author_ids,
               COALESCE((SELECT array_agg(a.author_name ORDER BY a.author_name, a.author_id)
                         FROM vw_book_authors a WHERE a.book_id = d.book_id), '{}') AS author_names,
               COALESCE((SELECT array_agg(g.genre_id ORDER BY g.genre_name, g.genre_id)
                         FROM vw_book_genres g WHERE g.book_id = d.book_id), '{}') AS genre_ids,
               COALESCE((SELECT array_agg(g.genre_name ORDER BY g.genre_name, g.genre_id)
                         FROM vw_book_genres g WHERE g.book_id = d.book_id), '{}') AS genre_names
        FROM vw_book_details d
        WHERE d.book_id = $1`

	insertBookSQL = `
        INSERT INTO books (title, isbn, publication_date, copies_available, publisher_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	updateBookSQL = `
        UPDATE books
        SET title = $2, isbn = $3, publication_date = $4, copies_available = $5,
            publisher_id = $6, updated_at = NOW()
        WHERE id = $1`

	deleteBookSQL = `DELETE FROM books WHERE id = $1`

	lockBookSQL = `SELECT id FROM books WHERE id = $1 FOR UPDATE`

	// FOR KEY SHARE blocks a concurrent guarded delete of the referenced row
	// until this transaction ends, and vice versa.
	lockPublisherSQL = `SELECT id FROM publishers WHERE id = $1 FOR KEY SHARE`
	lockAuthorsSQL   = `SELECT id FROM authors WHERE id = ANY($1) FOR KEY SHARE`
	lockGenresSQL    = `SELECT id FROM genres WHERE id = ANY($1) FOR KEY SHARE`

	insertBookAuthorsSQL = `INSERT INTO book_authors (book_id, author_id) SELECT $1, unnest($2::bigint[])`
	insertBookGenresSQL  = `INSERT INTO book_genres (book_id, genre_id) SELECT $1, unnest($2::bigint[])`
	deleteBookAuthorsSQL = `DELETE FROM book_authors WHERE book_id = $1`
	deleteBookGenresSQL  = `DELETE FROM book_genres WHERE book_id = $1`
)

// Constraint names from migrations/00001_create_catalog_tables.sql
const (
	constraintISBN          = "books_isbn_key"
	constraintPublisherFK   = "books_publisher_id_fkey"
	constraintBookAuthorsFK = "book_authors_author_id_fkey"
	constraintBookGenresFK  = "book_genres_genre_id_fkey"
)

type postgresRepository struct {
	pool database.Pool
	tx   *database.TxRunner
}

// NewPostgresRepository creates a new book repository instance
func NewPostgresRepository(pool database.Pool, tx *database.TxRunner) RepositoryInterface {
	return &postgresRepository{pool: pool, tx: tx}
}

// ========================================
// READS
// ========================================

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]model.BookSummary, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, countBooksSQL).Scan(&total); err != nil {
		return nil, 0, database.Translate(fmt.Errorf("count books: %w", err))
	}

	var limitArg *int
	if limit > 0 {
		limitArg = &limit
	}
	rows, err := r.pool.Query(ctx, listBooksSQL, limitArg, offset)
	if err != nil {
		return nil, 0, database.Translate(fmt.Errorf("list books: %w", err))
	}
	books, err := collectSummaries(rows)
	if err != nil {
		return nil, 0, database.Translate(fmt.Errorf("scan books: %w", err))
	}
	return books, total, nil
}

func (r *postgresRepository) Search(ctx context.Context, term string) ([]model.BookSummary, error) {
	rows, err := r.pool.Query(ctx, searchBooksSQL, utils.ContainsPattern(term))
	if err != nil {
		return nil, database.Translate(fmt.Errorf("search books: %w", err))
	}
	books, err := collectSummaries(rows)
	if err != nil {
		return nil, database.Translate(fmt.Errorf("scan books: %w", err))
	}
	return books, nil
}

func (r *postgresRepository) GetDetail(ctx context.Context, id int64) (*model.BookDetail, error) {
	var (
		d                       model.BookDetail
		date                    *time.Time
		authorIDs, genreIDs     []int64
		authorNames, genreNames []string
	)
	err := r.pool.QueryRow(ctx, bookDetailSQL, id).Scan(
		&d.ID, &d.Title, &d.ISBN, &date, &d.CopiesAvailable, &d.PublisherID, &d.PublisherName,
		&authorIDs, &authorNames, &genreIDs, &genreNames,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrBookNotFound
		}
		return nil, database.Translate(fmt.Errorf("get book %d: %w", id, err))
	}

	d.PublicationDate = model.FormatDate(date)
	d.Authors = model.ZipRefs(authorIDs, authorNames)
	d.Genres = model.ZipRefs(genreIDs, genreNames)
	return &d, nil
}

func collectSummaries(rows pgx.Rows) ([]model.BookSummary, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.BookSummary, error) {
		var (
			b    model.BookSummary
			date *time.Time
		)
		err := row.Scan(&b.ID, &b.Title, &b.ISBN, &date, &b.CopiesAvailable, &b.PublisherID, &b.PublisherName)
		b.PublicationDate = model.FormatDate(date)
		return b, err
	})
}

// ========================================
// WRITES
// ========================================

func (r *postgresRepository) Create(ctx context.Context, in model.BookInput) (int64, error) {
	return database.WithTransactionResult(ctx, r.tx, func(ctx context.Context, tx pgx.Tx) (int64, error) {
		if err := lockReferences(ctx, tx, in); err != nil {
			return 0, err
		}

		var id int64
		err := tx.QueryRow(ctx, insertBookSQL,
			in.Title, in.ISBN, in.PublicationDate, in.CopiesAvailable, in.PublisherID,
		).Scan(&id)
		if err != nil {
			return 0, translateWriteError(fmt.Errorf("insert book: %w", err), in)
		}

		if err := insertAssociations(ctx, tx, id, in); err != nil {
			return 0, err
		}
		return id, nil
	})
}

func (r *postgresRepository) Update(ctx context.Context, id int64, in model.BookInput) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockBook(ctx, tx, id); err != nil {
			return err
		}

		if err := lockReferences(ctx, tx, in); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, updateBookSQL,
			id, in.Title, in.ISBN, in.PublicationDate, in.CopiesAvailable, in.PublisherID,
		)
		if err != nil {
			return translateWriteError(fmt.Errorf("update book %d: %w", id, err), in)
		}

		if err := deleteAssociations(ctx, tx, id); err != nil {
			return err
		}
		return insertAssociations(ctx, tx, id, in)
	})
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// The row lock waits for a concurrent Update, so the association
		// delete below sees every link it committed.
		if err := lockBook(ctx, tx, id); err != nil {
			return err
		}
		if err := deleteAssociations(ctx, tx, id); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, deleteBookSQL, id)
		if err != nil {
			return database.Translate(fmt.Errorf("delete book %d: %w", id, err))
		}
		if tag.RowsAffected() == 0 {
			return model.ErrBookNotFound.WithDetails(map[string]interface{}{"id": id})
		}
		return nil
	})
}

func lockBook(ctx context.Context, tx pgx.Tx, id int64) error {
	var locked int64
	if err := tx.QueryRow(ctx, lockBookSQL, id).Scan(&locked); err != nil {
		if database.IsNoRows(err) {
			return model.ErrBookNotFound.WithDetails(map[string]interface{}{"id": id})
		}
		return database.Translate(fmt.Errorf("lock book %d: %w", id, err))
	}
	return nil
}

// lockReferences verifies that every referenced publisher, author and genre
// exists and holds a key-share lock on it until the transaction ends.
func lockReferences(ctx context.Context, tx pgx.Tx, in model.BookInput) error {
	if in.PublisherID != nil {
		var found int64
		if err := tx.QueryRow(ctx, lockPublisherSQL, *in.PublisherID).Scan(&found); err != nil {
			if database.IsNoRows(err) {
				return model.ErrUnknownPublisher.WithDetails(map[string]interface{}{"publisher_id": *in.PublisherID})
			}
			return database.Translate(fmt.Errorf("lock publisher: %w", err))
		}
	}

	if err := lockIDs(ctx, tx, lockAuthorsSQL, in.AuthorIDs, model.ErrUnknownAuthors, "missing_author_ids"); err != nil {
		return err
	}
	return lockIDs(ctx, tx, lockGenresSQL, in.GenreIDs, model.ErrUnknownGenres, "missing_genre_ids")
}

func lockIDs(ctx context.Context, tx pgx.Tx, query string, ids []int64, notFound *apperror.Error, detailKey string) error {
	if len(ids) == 0 {
		return nil
	}

	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return database.Translate(fmt.Errorf("lock references: %w", err))
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return database.Translate(fmt.Errorf("scan references: %w", err))
	}

	if missing := utils.MissingIDs(ids, found); len(missing) > 0 {
		return notFound.WithDetails(map[string]interface{}{detailKey: missing})
	}
	return nil
}

func insertAssociations(ctx context.Context, tx pgx.Tx, bookID int64, in model.BookInput) error {
	if len(in.AuthorIDs) > 0 {
		if _, err := tx.Exec(ctx, insertBookAuthorsSQL, bookID, in.AuthorIDs); err != nil {
			return translateWriteError(fmt.Errorf("link authors: %w", err), in)
		}
	}
	if len(in.GenreIDs) > 0 {
		if _, err := tx.Exec(ctx, insertBookGenresSQL, bookID, in.GenreIDs); err != nil {
			return translateWriteError(fmt.Errorf("link genres: %w", err), in)
		}
	}
	return nil
}

func deleteAssociations(ctx context.Context, tx pgx.Tx, bookID int64) error {
	if _, err := tx.Exec(ctx, deleteBookAuthorsSQL, bookID); err != nil {
		return database.Translate(fmt.Errorf("unlink authors: %w", err))
	}
	if _, err := tx.Exec(ctx, deleteBookGenresSQL, bookID); err != nil {
		return database.Translate(fmt.Errorf("unlink genres: %w", err))
	}
	return nil
}

// translateWriteError maps the constraints owned by books to domain errors.
// The unique index is the final arbiter for concurrent ISBN claims.
func translateWriteError(err error, in model.BookInput) error {
	if name, ok := database.ViolatedConstraint(err, database.CodeUniqueViolation); ok && name == constraintISBN {
		return model.ErrDuplicateISBN.WithDetails(map[string]interface{}{"isbn": in.ISBN}).Wrap(err)
	}
	if name, ok := database.ViolatedConstraint(err, database.CodeForeignKeyViolation); ok {
		switch name {
		case constraintPublisherFK:
			return model.ErrUnknownPublisher.Wrap(err)
		case constraintBookAuthorsFK:
			return model.ErrUnknownAuthors.Wrap(err)
		case constraintBookGenresFK:
			return model.ErrUnknownGenres.Wrap(err)
		}
	}
	return database.Translate(err)
}
