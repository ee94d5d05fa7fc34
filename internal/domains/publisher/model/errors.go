package model

import "library-catalog/internal/shared/apperror"

// ErrPublisherNotFound - Publisher không tìm thấy
var ErrPublisherNotFound = apperror.NotFound("PUBLISHER_NOT_FOUND", "Publisher not found")

// ErrPublisherHasBooks - Publisher có books, không thể xóa
var ErrPublisherHasBooks = apperror.DependencyConflict("PUBLISHER_HAS_BOOKS", "Cannot delete publisher with associated books")

// ErrInvalidPublisherID - Publisher ID không hợp lệ
var ErrInvalidPublisherID = apperror.Validation("INVALID_PUBLISHER_ID", "Publisher id must be a positive integer")
