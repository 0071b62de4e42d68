// Package ports holds the interfaces the application layer depends on.
// Adapters under internal/adapters implement them; the app layer never
// imports an adapter directly.
package ports

import (
	"context"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// QuoteRepository is the record store for quotes.
//
// Every method takes the request context first and speaks only domain types.
// There are no transactions or partial updates: Put always writes the whole
// record.
type QuoteRepository interface {
	// Get returns the quote stored under id, or an error wrapping
	// domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Quote, error)

	// Put inserts q or replaces the record with the same id. Stores that can
	// enforce the (quote, quoter) pair constraint atomically return an error
	// wrapping domain.ErrConflict when another record already holds the pair.
	Put(ctx context.Context, q *domain.Quote) error

	// Delete removes the record if present. Deleting a missing id is not an
	// error; callers that care check existence first.
	Delete(ctx context.Context, id string) error

	// Scan reads every record matching filter. The empty filter returns all.
	Scan(ctx context.Context, filter domain.Filter) ([]*domain.Quote, error)

	// QueryByQuoteAndQuoter looks up records through the secondary index on
	// the (quote, quoter) pair. It exists for duplicate detection.
	QueryByQuoteAndQuoter(ctx context.Context, quote, quoter string) ([]*domain.Quote, error)
}

// QuoteStore is a repository that also reports its health and releases its
// resources on shutdown. Every backend wired by cmd/service satisfies it.
type QuoteStore interface {
	QuoteRepository
	HealthChecker

	Close() error
}
