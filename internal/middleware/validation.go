package middleware

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/cohort-tools/api/internal/app/models/dto"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
)

// BindingError converts a gin binding failure into a validation error listing each failed field
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]dto.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, dto.FieldError{Field: fe.Field(), Message: formatValidationError(fe)})
		}
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, fields[0].Message).
			WithField(fields[0].Field).
			WithDetails(map[string]interface{}{"errors": fields})
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.NewValidationError(typeErr.Field, fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperrors.NewBadRequestError("Request body is not valid JSON")
	}

	return apperrors.NewBadRequestError(MsgInvalidPayload)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "enum":
		return fmt.Sprintf("%v is not a valid %s", e.Value(), e.Field())
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
