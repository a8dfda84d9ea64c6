package validation

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"

	"taskapi/internal/core/domain"
)

// ErrInvalidPayload is returned for bodies that are not a JSON object.
var ErrInvalidPayload = errors.New("invalid payload")

const (
	ReasonRequired    = "required"
	ReasonInvalid     = "invalid"
	ReasonInvalidType = "invalid_type"
	ReasonInvalidUUID = "invalid_uuid"
	ReasonMaxLength   = "max_length"
)

// FromBindError turns a gin binding failure into a field level
// *domain.ValidationError when it can, and ErrInvalidPayload otherwise.
func FromBindError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = reasonFor(fe.Tag())
		}
		return &domain.ValidationError{Fields: fields}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.NewValidationError(typeErr.Field, ReasonInvalidType)
	}

	return ErrInvalidPayload
}

func reasonFor(tag string) string {
	switch tag {
	case "required", "notblank":
		return ReasonRequired
	case "max":
		return ReasonMaxLength
	case "uuid":
		return ReasonInvalidUUID
	default:
		return ReasonInvalid
	}
}

type fieldErrors map[string]string

func (f fieldErrors) add(field, reason string) {
	if _, exists := f[field]; !exists {
		f[field] = reason
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: f}
}
