package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared/utils"
)

type Publisher struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	Contact   *string   `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublisherRequest - input cho create và update (update thay toàn bộ fields)
type PublisherRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Contact *string `json:"contact,omitempty"`
}

func (r *PublisherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = utils.TrimPtr(r.Address)
	r.Contact = utils.TrimPtr(r.Contact)
}

func (r PublisherRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Address, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Contact, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

func (r PublisherRequest) ToPublisher(id int64) *Publisher {
	return &Publisher{ID: id, Name: r.Name, Address: r.Address, Contact: r.Contact}
}
