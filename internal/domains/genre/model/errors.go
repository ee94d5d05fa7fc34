package model

import "library-catalog/internal/shared/apperror"

var (
	ErrGenreNotFound  = apperror.NotFound("GENRE_NOT_FOUND", "Genre not found")
	ErrGenreHasBooks  = apperror.DependencyConflict("GENRE_HAS_BOOKS", "Cannot delete genre with linked books")
	ErrInvalidGenreID = apperror.Validation("INVALID_GENRE_ID", "Genre id must be a positive integer")
)
