package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenreRequest_Validate(t *testing.T) {
	blank := "  "
	tests := []struct {
		name    string
		req     GenreRequest
		wantErr bool
	}{
		{"valid", GenreRequest{Name: "Science Fiction"}, false},
		{"blank name", GenreRequest{Name: "   "}, true},
		{"name too long", GenreRequest{Name: strings.Repeat("a", 51)}, true},
		{"blank description dropped", GenreRequest{Name: "G1", Description: &blank}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.Normalize()
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenreRequest_Normalize(t *testing.T) {
	desc := "  speculative worlds  "
	req := GenreRequest{Name: "  Poetry ", Description: &desc}
	req.Normalize()

	assert.Equal(t, "Poetry", req.Name)
	assert.Equal(t, "speculative worlds", *req.Description)

	g := req.ToGenre(4)
	assert.Equal(t, int64(4), g.ID)
	assert.Equal(t, "Poetry", g.Name)
}
