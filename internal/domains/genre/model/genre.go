package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared/utils"
)

type Genre struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GenreRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *GenreRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = utils.TrimPtr(r.Description)
}

func (r GenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 50)),
	)
}

func (r GenreRequest) ToGenre(id int64) *Genre {
	return &Genre{ID: id, Name: r.Name, Description: r.Description}
}
