// Package repotest holds the behavior every ports.QuoteRepository backend
// must share. Backend packages call Run from their own tests.
package repotest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// Options tunes the contract for backend capabilities.
type Options struct {
	// EnforcesPairUniqueness is true when Put itself rejects a second record
	// holding an existing (quote, quoter) pair.
	EnforcesPairUniqueness bool
}

func ptr(s string) *string { return &s }

// Seed puts the given quotes and fails the test on error.
func Seed(t *testing.T, repo ports.QuoteRepository, quotes ...*domain.Quote) {
	t.Helper()

	for _, q := range quotes {
		require.NoError(t, repo.Put(context.Background(), q))
	}
}

// Fixtures returns three records with distinct pairs.
func Fixtures() []*domain.Quote {
	return []*domain.Quote{
		{ID: "id-1", Text: "Why so serious?", Quoter: "Joker", Source: ptr("The Dark Knight"), Likes: 0},
		{ID: "id-2", Text: "I'm Batman", Quoter: "Batman", Source: nil, Likes: 5},
		{ID: "id-3", Text: "Introduce a little anarchy", Quoter: "Joker", Source: ptr("The Dark Knight"), Likes: 5},
	}
}

// Run exercises newRepo against the shared contract. newRepo must return an
// empty repository on every call.
func Run(t *testing.T, newRepo func(t *testing.T) ports.QuoteRepository, opts Options) {
	t.Helper()

	ctx := context.Background()

	t.Run("get missing returns not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Get(ctx, "nope")
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("put then get round trips every field", func(t *testing.T) {
		repo := newRepo(t)
		Seed(t, repo, Fixtures()...)

		for _, want := range Fixtures() {
			got, err := repo.Get(ctx, want.ID)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("put replaces the whole record", func(t *testing.T) {
		repo := newRepo(t)
		Seed(t, repo, Fixtures()[0])

		replacement := &domain.Quote{ID: "id-1", Text: "Why so serious?", Quoter: "Joker", Source: nil, Likes: 42}
		require.NoError(t, repo.Put(ctx, replacement))

		got, err := repo.Get(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, replacement, got)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		Seed(t, repo, Fixtures()[0])

		require.NoError(t, repo.Delete(ctx, "id-1"))
		require.NoError(t, repo.Delete(ctx, "id-1"))

		_, err := repo.Get(ctx, "id-1")
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("scan with empty filter returns everything", func(t *testing.T) {
		repo := newRepo(t)
		Seed(t, repo, Fixtures()...)

		got, err := repo.Scan(ctx, domain.Filter{})
		require.NoError(t, err)
		assert.ElementsMatch(t, Fixtures(), got)
	})

	t.Run("scan on empty store returns empty slice", func(t *testing.T) {
		repo := newRepo(t)

		got, err := repo.Scan(ctx, domain.Filter{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("scan filters are exact and conjunctive", func(t *testing.T) {
		repo := newRepo(t)
		Seed(t, repo, Fixtures()...)
		fx := Fixtures()

		tests := []struct {
			name   string
			filter domain.Filter
			want   []*domain.Quote
		}{
			{name: "quoter", filter: domain.Filter{}.Where(domain.FieldQuoter, "Joker"), want: []*domain.Quote{fx[0], fx[2]}},
			{name: "case sensitive", filter: domain.Filter{}.Where(domain.FieldQuoter, "joker"), want: nil},
			{name: "likes", filter: domain.Filter{}.Where(domain.FieldLikes, int64(5)), want: []*domain.Quote{fx[1], fx[2]}},
			{
				name:   "conjunction",
				filter: domain.Filter{}.Where(domain.FieldQuoter, "Joker").Where(domain.FieldLikes, int64(5)),
				want:   []*domain.Quote{fx[2]},
			},
			{name: "source", filter: domain.Filter{}.Where(domain.FieldSource, "The Dark Knight"), want: []*domain.Quote{fx[0], fx[2]}},
			{name: "id", filter: domain.Filter{}.Where(domain.FieldID, "id-2"), want: []*domain.Quote{fx[1]}},
			{name: "no substring", filter: domain.Filter{}.Where(domain.FieldQuote, "Batman"), want: nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := repo.Scan(ctx, tt.filter)
				require.NoError(t, err)
				if tt.want == nil {
					assert.Empty(t, got)
					return
				}
				assert.ElementsMatch(t, tt.want, got)
			})
		}
	})

	t.Run("query by quote and quoter", func(t *testing.T) {
		repo := newRepo(t)
		Seed(t, repo, Fixtures()...)

		got, err := repo.QueryByQuoteAndQuoter(ctx, "Why so serious?", "Joker")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "id-1", got[0].ID)

		got, err = repo.QueryByQuoteAndQuoter(ctx, "Why so serious?", "Batman")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	if !opts.EnforcesPairUniqueness {
		return
	}

	t.Run("put rejects a second record with the same pair", func(t *testing.T) {
		repo := newRepo(t)
		Seed(t, repo, Fixtures()[0])

		dup := &domain.Quote{ID: "other", Text: "Why so serious?", Quoter: "Joker"}
		err := repo.Put(ctx, dup)
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))

		_, err = repo.Get(ctx, "other")
		assert.True(t, domain.IsNotFound(err), "rejected record must not be stored")
	})

	t.Run("pair is released after delete", func(t *testing.T) {
		repo := newRepo(t)
		Seed(t, repo, Fixtures()[0])
		require.NoError(t, repo.Delete(ctx, "id-1"))

		again := &domain.Quote{ID: "id-9", Text: "Why so serious?", Quoter: "Joker"}
		require.NoError(t, repo.Put(ctx, again))
	})
}
