package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// ParseErrorResponse decodes the API error envelope. It returns nil when the
// body is empty or not an envelope.
func ParseErrorResponse(body io.Reader) *dto.ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp dto.ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.Error.Code == "" && errResp.Error.Message == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError turns a failed call into a domain error.
//
//   - clientErr set (no response): ErrUnavailable
//   - 400 VALIDATION_ERROR with details: FieldErrors, one per field
//   - 400 otherwise: ValidationError
//   - 404: NotFoundError for entityID
//   - 409: ConflictError
//   - 5xx: ErrUnavailable carrying the server message
//
// resp.Body is read but not closed.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation, entityID string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var errResp *dto.ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation, entityID)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))
	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatusCode(status int, errResp *dto.ErrorResponse, serviceName, operation, entityID string) error {
	message := defaultMessageForStatus(status, operation)
	if errResp != nil && errResp.Error.Message != "" {
		message = errResp.Error.Message
	}

	switch {
	case status == http.StatusNotFound:
		return domain.NewNotFoundError(domain.EntityQuote, entityID)

	case status == http.StatusConflict:
		return domain.NewConflictError(domain.EntityQuote, message)

	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if errResp != nil && len(errResp.Error.Details) > 0 {
			return fieldErrors(errResp.Error.Details)
		}

		return domain.NewValidationError("", message)

	case status >= http.StatusInternalServerError:
		return domain.NewUnavailableError(serviceName, message)

	default:
		return domain.NewValidationError("", message)
	}
}

func fieldErrors(details map[string]string) error {
	errs := make(domain.FieldErrors, 0, len(details))
	for _, field := range slices.Sorted(maps.Keys(details)) {
		errs = append(errs, &domain.ValidationError{Field: field, Message: details[field]})
	}

	return errs
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusNotFound:
		return "quote not found"
	case http.StatusConflict:
		return "quote already exists"
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusGatewayTimeout:
		return "request timed out"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}
