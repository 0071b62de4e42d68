// Package app contains the application services that run the quote use
// cases. Services depend on ports only; adapters are wired in cmd/service.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/codes"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

const (
	opCreate = "create"
	opGet    = "get"
	opList   = "list"
	opUpdate = "update"
	opLike   = "like"
	opDelete = "delete"
)

// QuoteService runs the quote use cases against a QuoteRepository.
type QuoteService struct {
	repo    ports.QuoteRepository
	newID   func() string
	logger  *slog.Logger
	metrics *serviceMetrics
}

// QuoteServiceConfig contains the dependencies of the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger

	// IDGenerator returns new record ids. Defaults to random UUIDs.
	IDGenerator func() string

	// Registerer receives the service metrics. Nil disables them.
	Registerer prometheus.Registerer
}

// NewQuoteService creates the service. It panics without a repository since
// nothing can work without one.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("app: QuoteServiceConfig.Repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	newID := cfg.IDGenerator
	if newID == nil {
		newID = uuid.NewString
	}

	return &QuoteService{
		repo:    cfg.Repository,
		newID:   newID,
		logger:  logger.With(slog.String("component", "app.QuoteService")),
		metrics: newServiceMetrics(cfg.Registerer),
	}
}

// begin starts the span for op. The returned func ends it and counts the
// outcome.
func (s *QuoteService) begin(ctx context.Context, op string) (context.Context, func(error)) {
	ctx, span := telemetry.Tracer().Start(ctx, "QuoteService."+op)

	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, Outcome(err))
		}
		span.End()
		s.metrics.observe(op, err)
	}
}

// log prefers the request-scoped logger so request and trace ids come along.
func (s *QuoteService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

// CreateQuote validates in, rejects a (quote, quoter) pair that already
// exists and stores a new record with zero likes.
func (s *QuoteService) CreateQuote(ctx context.Context, in domain.NewQuote) (q *domain.Quote, err error) {
	ctx, end := s.begin(ctx, opCreate)
	defer func() { end(err) }()

	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.QueryByQuoteAndQuoter(ctx, in.Text, in.Quoter)
	if err != nil {
		return nil, fmt.Errorf("checking for duplicate quote: %w", err)
	}
	if len(existing) > 0 {
		return nil, domain.NewConflictError(domain.EntityQuote, "quote and quoter already exist")
	}

	q = in.Build(s.newID())
	if err := s.repo.Put(ctx, q); err != nil {
		return nil, fmt.Errorf("saving quote: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "quote created", slog.String("quote_id", q.ID))

	return q, nil
}

// GetQuote returns one quote.
func (s *QuoteService) GetQuote(ctx context.Context, id string) (q *domain.Quote, err error) {
	ctx, end := s.begin(ctx, opGet)
	defer func() { end(err) }()

	q, err = s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	return q, nil
}

// ListQuotes returns every quote matching filter. The empty filter lists all.
func (s *QuoteService) ListQuotes(ctx context.Context, filter domain.Filter) (quotes []*domain.Quote, err error) {
	ctx, end := s.begin(ctx, opList)
	defer func() { end(err) }()

	quotes, err = s.repo.Scan(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	if filter.Empty() {
		s.metrics.storeSize.Set(float64(len(quotes)))
	}

	s.log(ctx).DebugContext(ctx, "quotes listed",
		slog.Int("conditions", len(filter.Conditions)),
		slog.Int("count", len(quotes)),
	)

	return quotes, nil
}

// UpdateQuote replaces every field of an existing quote. The id never
// changes. Duplicate detection is not repeated here; stores with a unique
// pair constraint still refuse a colliding replacement.
func (s *QuoteService) UpdateQuote(ctx context.Context, id string, in domain.QuoteReplacement) (q *domain.Quote, err error) {
	ctx, end := s.begin(ctx, opUpdate)
	defer func() { end(err) }()

	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	q = in.Apply(id)
	if err := s.repo.Put(ctx, q); err != nil {
		return nil, fmt.Errorf("saving quote: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "quote updated", slog.String("quote_id", id))

	return q, nil
}

// LikeQuote adds one like. The read and the write are separate calls, so
// concurrent likes on one record can lose increments.
func (s *QuoteService) LikeQuote(ctx context.Context, id string) (q *domain.Quote, err error) {
	ctx, end := s.begin(ctx, opLike)
	defer func() { end(err) }()

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	q = current.Clone()
	q.Likes++

	if err := s.repo.Put(ctx, q); err != nil {
		return nil, fmt.Errorf("saving quote: %w", err)
	}

	s.metrics.likes.Inc()
	s.log(ctx).InfoContext(ctx, "quote liked",
		slog.String("quote_id", id),
		slog.Int64("likes", q.Likes),
	)

	return q, nil
}

// DeleteQuote removes an existing quote. A missing id is reported as not
// found rather than silently succeeding.
func (s *QuoteService) DeleteQuote(ctx context.Context, id string) (err error) {
	ctx, end := s.begin(ctx, opDelete)
	defer func() { end(err) }()

	if _, err := s.repo.Get(ctx, id); err != nil {
		return fmt.Errorf("checking quote exists: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting quote: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "quote deleted", slog.String("quote_id", id))

	return nil
}
