// Package memory is an in-process quote store for tests and quick local runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

type pairKey struct {
	quote  string
	quoter string
}

// Repository keeps quotes in a map guarded by a mutex. Put enforces the
// (quote, quoter) uniqueness under the same lock, so concurrent creates of
// one pair cannot both land.
type Repository struct {
	mu     sync.RWMutex
	quotes map[string]*domain.Quote
	pairs  map[pairKey]string
}

// New returns an empty repository.
func New() *Repository {
	return &Repository{
		quotes: make(map[string]*domain.Quote),
		pairs:  make(map[pairKey]string),
	}
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string { return "memory" }

// Check implements ports.HealthChecker. An in-process map is always ready.
func (r *Repository) Check(ctx context.Context) error { return ctx.Err() }

// Close implements ports.QuoteStore.
func (r *Repository) Close() error { return nil }

func (r *Repository) Get(ctx context.Context, id string) (*domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.quotes[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityQuote, id)
	}

	return q.Clone(), nil
}

func (r *Repository) Put(ctx context.Context, q *domain.Quote) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{quote: q.Text, quoter: q.Quoter}
	if owner, taken := r.pairs[key]; taken && owner != q.ID {
		return domain.NewConflictErrorWithDetails(domain.EntityQuote,
			"quote and quoter already exist", "existing id "+owner)
	}

	if prev, ok := r.quotes[q.ID]; ok {
		delete(r.pairs, pairKey{quote: prev.Text, quoter: prev.Quoter})
	}
	r.quotes[q.ID] = q.Clone()
	r.pairs[key] = q.ID

	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.quotes[id]; ok {
		delete(r.pairs, pairKey{quote: prev.Text, quoter: prev.Quoter})
		delete(r.quotes, id)
	}

	return nil
}

// Scan returns matches ordered by id so results are stable across calls.
func (r *Repository) Scan(ctx context.Context, filter domain.Filter) ([]*domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Quote, 0, len(r.quotes))
	for _, q := range r.quotes {
		if filter.Matches(q) {
			out = append(out, q.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *Repository) QueryByQuoteAndQuoter(ctx context.Context, quote, quoter string) ([]*domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.pairs[pairKey{quote: quote, quoter: quoter}]
	if !ok {
		return []*domain.Quote{}, nil
	}

	return []*domain.Quote{r.quotes[id].Clone()}, nil
}
