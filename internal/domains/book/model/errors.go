package model

import "library-catalog/internal/shared/apperror"

var (
	ErrBookNotFound  = apperror.NotFound("BOOK_NOT_FOUND", "Book not found")
	ErrInvalidBookID = apperror.Validation("INVALID_BOOK_ID", "Book id must be a positive integer")
	ErrDuplicateISBN = apperror.UniqueViolation("ISBN_ALREADY_EXISTS", "A book with this ISBN already exists")

	// A supplied foreign id does not exist
	ErrUnknownPublisher = apperror.Reference("UNKNOWN_PUBLISHER", "Publisher does not exist")
	ErrUnknownAuthors   = apperror.Reference("UNKNOWN_AUTHORS", "One or more authors do not exist")
	ErrUnknownGenres    = apperror.Reference("UNKNOWN_GENRES", "One or more genres do not exist")
)
