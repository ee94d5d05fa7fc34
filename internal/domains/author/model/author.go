package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Biography *string   `json:"biography,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorRequest is the input of both create and update; update replaces
// every field.
type AuthorRequest struct {
	Name      string  `json:"name"`
	Biography *string `json:"biography,omitempty"`
}

// Normalize trims whitespace so that "   " is treated as missing.
func (r *AuthorRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Biography != nil {
		b := strings.TrimSpace(*r.Biography)
		if b == "" {
			r.Biography = nil
		} else {
			r.Biography = &b
		}
	}
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

// ToAuthor builds the entity for id (0 for a new author).
func (r AuthorRequest) ToAuthor(id int64) *Author {
	return &Author{ID: id, Name: r.Name, Biography: r.Biography}
}
