package model

import (
	"time"

	"library-catalog/internal/shared/utils"
)

// NamedRef is an (id, name) pair used in read models.
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookSummary là một dòng trong danh sách / kết quả search
type BookSummary struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	ISBN            string  `json:"isbn"`
	PublicationDate *string `json:"publication_date,omitempty"` // YYYY-MM-DD
	CopiesAvailable int     `json:"copies_available"`
	PublisherID     *int64  `json:"publisher_id,omitempty"`
	PublisherName   *string `json:"publisher_name,omitempty"`
}

// BookDetail joins a book with its publisher and both association sets.
// Authors and genres are ordered by name.
type BookDetail struct {
	BookSummary
	Authors []NamedRef `json:"authors"`
	Genres  []NamedRef `json:"genres"`
}

// AuthorNames returns the aggregated author names.
func (d *BookDetail) AuthorNames() []string {
	return refNames(d.Authors)
}

// GenreNames returns the aggregated genre names.
func (d *BookDetail) GenreNames() []string {
	return refNames(d.Genres)
}

func refNames(refs []NamedRef) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Name
	}
	return out
}

// ZipRefs pairs ids with names; both slices come from the same ordered
// aggregate so they have the same length.
func ZipRefs(ids []int64, names []string) []NamedRef {
	n := min(len(ids), len(names))
	refs := make([]NamedRef, n)
	for i := 0; i < n; i++ {
		refs[i] = NamedRef{ID: ids[i], Name: names[i]}
	}
	return refs
}

// FormatDate renders a DATE column for the JSON read models.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(utils.DateLayout)
	return &s
}

// BookInput is the validated input of the write operations. Author and
// genre ids are de-duplicated; an empty slice clears the association.
type BookInput struct {
	Title           string
	ISBN            string
	PublicationDate *time.Time
	CopiesAvailable int
	PublisherID     *int64
	AuthorIDs       []int64
	GenreIDs        []int64
}
