package database

import (
	"context"

	"library-catalog/internal/shared/apperror"
)

// DeleteGuard describes a delete that must be refused while dependent rows
// exist. All three statements run on the same transaction:
//
//	LockSQL   locks the target row (FOR UPDATE) and proves it exists
//	CountSQL  counts dependents of the locked row
//	DeleteSQL removes the row when the count is zero
//
// Writers that add dependents lock the same row FOR KEY SHARE, so a
// dependent cannot appear between the count and the delete.
type DeleteGuard struct {
	LockSQL   string
	CountSQL  string
	DeleteSQL string
	NotFound  *apperror.Error
	Conflict  *apperror.Error
}

// Run executes the guarded delete for id on q, which must be a transaction.
func (g DeleteGuard) Run(ctx context.Context, q Querier, id int64) error {
	var lockedID int64
	if err := q.QueryRow(ctx, g.LockSQL, id).Scan(&lockedID); err != nil {
		if IsNoRows(err) {
			return g.NotFound
		}
		return Translate(err)
	}

	var dependents int
	if err := q.QueryRow(ctx, g.CountSQL, id).Scan(&dependents); err != nil {
		return Translate(err)
	}
	if dependents > 0 {
		return g.Conflict.WithDetails(map[string]interface{}{
			"id":              id,
			"dependent_books": dependents,
		})
	}

	if _, err := q.Exec(ctx, g.DeleteSQL, id); err != nil {
		// The restrict FK still has the last word if something slipped past the count.
		if IsForeignKeyViolation(err) {
			return g.Conflict.Wrap(err)
		}
		return Translate(err)
	}
	return nil
}
