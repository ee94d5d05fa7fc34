package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared/apperror"
	"library-catalog/internal/shared/utils"
)

const (
	DefaultCopiesAvailable = 1
	MaxPageLimit           = 200
	MaxSearchLength        = 200
)

// BookRequest - body của POST /books và PUT /books/:id
type BookRequest struct {
	Title           string  `json:"title"`
	ISBN            string  `json:"isbn"`
	PublicationDate *string `json:"publication_date,omitempty"` // YYYY-MM-DD
	CopiesAvailable *int    `json:"copies_available,omitempty"`
	PublisherID     *int64  `json:"publisher_id,omitempty"`
	AuthorIDs       []int64 `json:"author_ids"`
	GenreIDs        []int64 `json:"genre_ids"`
}

func (r *BookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.ISBN = strings.TrimSpace(r.ISBN)
	r.PublicationDate = utils.TrimPtr(r.PublicationDate)
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.ISBN, validation.Required, validation.Length(1, 20)),
		validation.Field(&r.PublicationDate, validation.Date(utils.DateLayout)),
		validation.Field(&r.CopiesAvailable, validation.Min(0)),
		validation.Field(&r.PublisherID, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&r.AuthorIDs, validation.Each(validation.Required, validation.Min(1))),
		validation.Field(&r.GenreIDs, validation.Each(validation.Required, validation.Min(1))),
	)
}

// ToInput normalizes, validates and converts the request. Every failure is
// a VALIDATION_ERROR; nothing here touches the database.
func (r BookRequest) ToInput() (BookInput, error) {
	r.Normalize()
	if err := r.Validate(); err != nil {
		return BookInput{}, apperror.FromValidation(err)
	}

	date, err := utils.ParseOptionalDate(r.PublicationDate)
	if err != nil {
		return BookInput{}, apperror.Validation("VALIDATION_ERROR", "Invalid input").
			WithDetails(map[string]interface{}{"publication_date": "must be a valid date"}).
			Wrap(err)
	}

	copies := DefaultCopiesAvailable
	if r.CopiesAvailable != nil {
		copies = *r.CopiesAvailable
	}

	return BookInput{
		Title:           r.Title,
		ISBN:            r.ISBN,
		PublicationDate: date,
		CopiesAvailable: copies,
		PublisherID:     r.PublisherID,
		AuthorIDs:       utils.UniqueIDs(r.AuthorIDs),
		GenreIDs:        utils.UniqueIDs(r.GenreIDs),
	}, nil
}

// ListBooksRequest - query params của GET /books. Limit 0 trả về tất cả.
type ListBooksRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (r *ListBooksRequest) ApplyDefaults() {
	if r.Page == 0 {
		r.Page = 1
	}
}

func (r ListBooksRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Page, validation.Min(1)),
		validation.Field(&r.Limit, validation.Min(0), validation.Max(MaxPageLimit)),
	)
}

// Offset is ignored when Limit is 0.
func (r ListBooksRequest) Offset() int {
	if r.Limit == 0 {
		return 0
	}
	return (r.Page - 1) * r.Limit
}

// SearchBooksRequest - query params của GET /books/search
type SearchBooksRequest struct {
	Query string `form:"q"`
}

func (r *SearchBooksRequest) Normalize() {
	r.Query = strings.TrimSpace(r.Query)
}

func (r SearchBooksRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Length(0, MaxSearchLength)),
	)
}
