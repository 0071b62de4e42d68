package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// DefaultServiceName is used in errors when QuoteClientConfig leaves it empty.
const DefaultServiceName = "quotes-api"

// QuoteClientConfig configures a QuoteClient.
type QuoteClientConfig struct {
	// Client sends the requests. Its BaseURL points at the quotes API.
	Client *clients.Client

	// ServiceName names the API in errors.
	ServiceName string

	Logger *slog.Logger
}

// QuoteClient is the typed client for the quotes HTTP API. Wire shapes stay
// inside this package; callers see domain quotes and domain errors.
type QuoteClient struct {
	BaseAdapter

	logger *slog.Logger
}

// NewQuoteClient returns a QuoteClient. It panics if Client is nil.
func NewQuoteClient(cfg QuoteClientConfig) *QuoteClient {
	if cfg.Client == nil {
		panic("QuoteClient: Client is required")
	}

	name := cfg.ServiceName
	if name == "" {
		name = DefaultServiceName
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, name),
		logger:      logger.With(slog.String("component", "acl.QuoteClient")),
	}
}

// quoteEnvelope and quoteList mirror the API envelopes with value slices so
// TranslateSlice can walk them.
type quoteEnvelope struct {
	Message string             `json:"message"`
	Quote   *dto.QuoteResponse `json:"quote"`
}

type quoteList struct {
	Message string              `json:"message"`
	Quotes  []dto.QuoteResponse `json:"quotes"`
}

// List returns every quote matching filter. An empty filter lists all.
func (c *QuoteClient) List(ctx context.Context, filter domain.Filter) ([]*domain.Quote, error) {
	path := "/quotes"
	if q := encodeFilter(filter); q != "" {
		path += "?" + q
	}

	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	body, err := c.do(ctx, call{method: http.MethodGet, path: path, operation: "list quotes"})
	if err != nil {
		return nil, err
	}

	list, err := DecodeResponse[quoteList](body)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	quotes, err := TranslateSlice(list.Quotes, translateQuote)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	c.logger.DebugContext(ctx, "listed quotes", slog.Int("count", len(quotes)))

	return quotes, nil
}

// Get returns the quote stored under id.
func (c *QuoteClient) Get(ctx context.Context, id string) (*domain.Quote, error) {
	if err := ValidateRequired(id, domain.FieldID.String()); err != nil {
		return nil, err
	}

	return c.single(ctx, call{
		method:    http.MethodGet,
		path:      quotePath(id),
		operation: "get quote",
		entityID:  id,
	})
}

// Create adds a quote and returns it with its new id.
func (c *QuoteClient) Create(ctx context.Context, in domain.NewQuote) (*domain.Quote, error) {
	return c.single(ctx, call{
		method: http.MethodPost,
		path:   "/quotes",
		body: dto.CreateQuoteRequest{
			Quote:  in.Text,
			Quoter: in.Quoter,
			Source: domain.NormalizeSource(in.Source),
		},
		operation: "create quote",
	})
}

// Update replaces every mutable field of the quote stored under id.
func (c *QuoteClient) Update(ctx context.Context, id string, in domain.QuoteReplacement) (*domain.Quote, error) {
	if err := ValidateRequired(id, domain.FieldID.String()); err != nil {
		return nil, err
	}

	likes := in.Likes

	return c.single(ctx, call{
		method: http.MethodPut,
		path:   quotePath(id),
		body: dto.UpdateQuoteRequest{
			Quote:  in.Text,
			Quoter: in.Quoter,
			Source: in.Source,
			Likes:  &likes,
		},
		operation: "update quote",
		entityID:  id,
	})
}

// Like adds one like to the quote stored under id and returns the result.
func (c *QuoteClient) Like(ctx context.Context, id string) (*domain.Quote, error) {
	if err := ValidateRequired(id, domain.FieldID.String()); err != nil {
		return nil, err
	}

	return c.single(ctx, call{
		method:    http.MethodPost,
		path:      quotePath(id) + "/like",
		operation: "like quote",
		entityID:  id,
	})
}

// Delete removes the quote stored under id.
func (c *QuoteClient) Delete(ctx context.Context, id string) error {
	if err := ValidateRequired(id, domain.FieldID.String()); err != nil {
		return err
	}

	body, err := c.do(ctx, call{
		method:    http.MethodDelete,
		path:      quotePath(id),
		operation: "delete quote",
		entityID:  id,
	})
	if err != nil {
		return err
	}
	_ = body.Close()

	c.logger.DebugContext(ctx, "deleted quote", slog.String("quote_id", id))

	return nil
}

func (c *QuoteClient) single(ctx context.Context, req call) (*domain.Quote, error) {
	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("operation", req.operation),
		slog.String("path", req.path),
	)

	body, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	env, err := DecodeResponse[quoteEnvelope](body)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	q, err := translateQuote(env.Quote)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	c.logger.DebugContext(ctx, req.operation+" succeeded", slog.String("quote_id", q.ID))

	return q, nil
}

func quotePath(id string) string {
	return "/quotes/" + url.PathEscape(id)
}

// encodeFilter renders filter as a query string. Conditions on the same
// field become repeated keys.
func encodeFilter(filter domain.Filter) string {
	if filter.Empty() {
		return ""
	}

	values := url.Values{}
	for _, cond := range filter.Conditions {
		values.Add(cond.Field.String(), fmt.Sprint(cond.Value))
	}

	return values.Encode()
}
