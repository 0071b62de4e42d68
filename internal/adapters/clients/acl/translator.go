package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// BaseAdapter holds the client and the name errors are reported under.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter returns a BaseAdapter for client.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// Client returns the underlying HTTP client.
func (a *BaseAdapter) Client() *clients.Client {
	return a.client
}

// ServiceName returns the name of the remote API.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// call is one request description. entityID is used for 404 errors.
type call struct {
	method    string
	path      string
	body      any
	operation string
	entityID  string
}

// do sends c and returns the body of a 2xx response; the caller closes it.
// Anything else comes back as a domain error.
func (a *BaseAdapter) do(ctx context.Context, c call) (io.ReadCloser, error) {
	var (
		resp *http.Response
		err  error
	)

	switch c.method {
	case http.MethodGet:
		resp, err = a.client.Get(ctx, c.path)
	case http.MethodPost:
		resp, err = a.client.Post(ctx, c.path, c.body)
	case http.MethodPut:
		resp, err = a.client.Put(ctx, c.path, c.body)
	case http.MethodDelete:
		resp, err = a.client.Delete(ctx, c.path)
	default:
		return nil, fmt.Errorf("unsupported method %s", c.method)
	}

	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, c.operation, c.entityID)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.serviceName, c.operation, c.entityID)
	}

	return resp.Body, nil
}

// DecodeResponse decodes a JSON body into T and closes it.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// ValidateRequired fails with a ValidationError when value is empty.
func ValidateRequired(value, fieldName string) error {
	if value == "" {
		return domain.NewValidationError(fieldName, "is required")
	}

	return nil
}

// ValidateNonNegative fails with a ValidationError when value is below zero.
func ValidateNonNegative[T ~int | ~int64](value T, fieldName string) error {
	if value < 0 {
		return domain.NewValidationErrorWithValue(fieldName, "must not be negative", value)
	}

	return nil
}

// Translator converts one wire value to a domain value, rejecting payloads
// that break domain rules.
type Translator[External any, Domain any] func(ext *External) (*Domain, error)

// TranslateSlice applies translate to every item and stops at the first
// failure.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]*D, error) {
	result := make([]*D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}

// translateQuote checks a quote received from the API before it reaches the
// domain.
func translateQuote(ext *dto.QuoteResponse) (*domain.Quote, error) {
	if ext == nil {
		return nil, errors.New("response carried no quote")
	}

	var errs []error
	errs = append(errs,
		ValidateRequired(ext.ID, domain.FieldID.String()),
		ValidateRequired(ext.Quote, domain.FieldQuote.String()),
		ValidateRequired(ext.Quoter, domain.FieldQuoter.String()),
		ValidateNonNegative(ext.Likes, domain.FieldLikes.String()),
	)
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid quote in response: %w", err)
	}

	q := ext.ToDomain()
	q.Source = domain.NormalizeSource(q.Source)

	return q, nil
}
