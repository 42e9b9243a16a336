package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/simple-webapp/internal/errs"
)

// MissingFieldsMessage is returned when a required field is blank.
const MissingFieldsMessage = "All fields are required."

// Validatable is implemented by request payloads that know how to
// validate themselves, typically by running validator.Struct on a struct
// carrying `validate:"..."` tags.
type Validatable interface {
	Validate() error
}

// Payload is a typed request built from a raw record.
//
//   - RequiredFields declares the presence contract checked by Validate.
//   - Load receives the normalized fields once that contract holds.
type Payload interface {
	Validatable
	RequiredFields() []string
	Load(fields map[string]string)
}

// CustomValidationError represents a single validation issue for a field
// that cannot be expressed with validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindRecord decodes a JSON or form-encoded body into a Record.
//
// It never fails. An empty body, an unsupported content type, malformed
// JSON or a JSON value that is not an object all yield an empty record,
// so the presence check reports every required field as missing.
func BindRecord(c echo.Context) Record {
	record := Record{}

	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, &record); err != nil {
		zerolog.Ctx(c.Request().Context()).Debug().
			Err(err).
			Msg("request body is not a field record")
		return Record{}
	}

	return record
}

// BindAndValidate binds the request body into payload and validates it.
//
// Flow:
//  1. BindRecord decodes the raw body.
//  2. Validate checks payload.RequiredFields() and normalizes values.
//  3. payload.Load receives the normalized fields.
//  4. payload.Validate applies struct tag rules.
//
// Any failure is returned as a 400 *errs.HTTPError.
func BindAndValidate(c echo.Context, payload Payload) error {
	result := Validate(BindRecord(c), payload.RequiredFields())
	if !result.Valid {
		zerolog.Ctx(c.Request().Context()).Debug().
			Strs("missing", result.Missing).
			Msg(result.Reason())
		return errs.NewBadRequestError(MissingFieldsMessage, nil, missingFieldErrors(result.Missing))
	}

	payload.Load(result.Fields)

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, nil, fieldErrors)
	}

	return nil
}

func missingFieldErrors(missing []string) []errs.FieldError {
	fieldErrors := make([]errs.FieldError, 0, len(missing))
	for _, name := range missing {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: name,
			Error: "is required",
		})
	}
	return fieldErrors
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, e := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "body", Error: err.Error()}}
	}

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"

		case "email":
			msg = "must be a valid email address"

		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
