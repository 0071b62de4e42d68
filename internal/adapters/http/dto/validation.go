package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// Body errors. Handlers answer both with 400 BAD_REQUEST.
var (
	ErrMissingBody = errors.New("request body is missing")
	ErrInvalidJSON = errors.New("invalid JSON format")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field names in errors come from
// json tags so they match what clients sent.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})

	return validate
}

// Validate runs the struct tags on v. Failures come back as
// domain.FieldErrors so the error mapper can render per-field details.
func Validate(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	out := make(domain.FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, &domain.ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Value:   fe.Value(),
		})
	}

	return out
}

// DecodeJSON unmarshals body into v and validates it. A missing body yields
// ErrMissingBody and malformed JSON yields ErrInvalidJSON. A value of the
// wrong JSON type is reported against its field as a validation error.
func DecodeJSON(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return ErrMissingBody
	}

	if err := json.Unmarshal(body, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domain.FieldErrors{{
				Field:   typeErr.Field,
				Message: typeMessage(typeErr),
				Value:   typeErr.Value,
			}}
		}

		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return Validate(v)
}

// BindJSON reads the request body and runs DecodeJSON on it.
func BindJSON(c *gin.Context, v any) error {
	if c.Request.Body == nil {
		return ErrMissingBody
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return DecodeJSON(body, v)
}

// IsBodyError reports whether err came from reading or parsing the body
// rather than from field validation.
func IsBodyError(err error) bool {
	return errors.Is(err, ErrMissingBody) || errors.Is(err, ErrInvalidJSON)
}

var validationMessages = map[string]string{
	"required": "is required",
	"gte":      "must be greater than or equal to {param}",
	"lte":      "must be less than or equal to {param}",
	"oneof":    "must be one of: {param}",
}

func validationMessage(fe validator.FieldError) string {
	if fe.Tag() == "min" || fe.Tag() == "max" {
		return minMaxMessage(fe.Tag(), fe.Param(), fe.Kind())
	}

	if msg, ok := validationMessages[fe.Tag()]; ok {
		return strings.ReplaceAll(msg, "{param}", fe.Param())
	}

	return "failed validation: " + fe.Tag()
}

func minMaxMessage(tag, param string, kind reflect.Kind) string {
	unit := ""
	if kind == reflect.String {
		unit = " characters"
	}

	if tag == "min" {
		return "must be at least " + param + unit
	}

	return "must be at most " + param + unit
}

func typeMessage(e *json.UnmarshalTypeError) string {
	switch e.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if strings.HasPrefix(e.Value, "number") {
			return "must be an integer"
		}
		return "must be a number"
	case reflect.String:
		return "must be a string"
	default:
		return "must be of type " + e.Type.String()
	}
}
