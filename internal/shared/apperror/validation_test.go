package apperror

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Title string `json:"title"`
	ISBN  string `json:"isbn"`
}

func (s sampleInput) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.ISBN, validation.Required, validation.Length(1, 20)),
	)
}

func TestFromValidation_FieldErrors(t *testing.T) {
	err := FromValidation(sampleInput{ISBN: "123456789012345678901"}.Validate())

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Details, "title")
	assert.Contains(t, appErr.Details, "isbn")
}

func TestFromValidation_Passthrough(t *testing.T) {
	assert.NoError(t, FromValidation(nil))
	assert.NoError(t, FromValidation(sampleInput{Title: "T", ISBN: "1"}.Validate()))

	typed := NotFound("X", "x")
	assert.Same(t, typed, FromValidation(typed))

	plain := FromValidation(errors.New("date must be YYYY-MM-DD"))
	assert.True(t, IsKind(plain, KindValidation))
}

func TestFromValidation_InternalError(t *testing.T) {
	err := FromValidation(validation.NewInternalError(errors.New("bad rule")))
	assert.True(t, IsKind(err, KindInternal))
}
