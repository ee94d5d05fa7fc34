package apperror

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FromValidation converts ozzo-validation output into a VALIDATION_ERROR
// with one detail entry per offending field.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return Internal(err)
	}

	base := Validation("VALIDATION_ERROR", "Invalid input")
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		details := make(map[string]interface{}, len(fieldErrs))
		for field, fe := range fieldErrs {
			details[field] = fe.Error()
		}
		return base.WithDetails(details).Wrap(err)
	}
	return base.WithDetails(map[string]interface{}{"error": err.Error()}).Wrap(err)
}
