package model

import "library-catalog/internal/shared/apperror"

var (
	ErrAuthorNotFound  = apperror.NotFound("AUTHOR_NOT_FOUND", "Author not found")
	ErrAuthorHasBooks  = apperror.DependencyConflict("AUTHOR_HAS_BOOKS", "Cannot delete author with linked books")
	ErrInvalidAuthorID = apperror.Validation("INVALID_AUTHOR_ID", "Author id must be a positive integer")
)
