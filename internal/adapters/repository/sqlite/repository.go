// Package sqlite stores quotes in a single SQLite table. The UNIQUE
// constraint on (quote, quoter) makes Put a conditional write, so the
// duplicate-create race cannot admit two records with one pair.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

// columns maps each filterable field to its column. Only these names are
// ever written into SQL text; values always travel as parameters.
var columns = map[domain.Field]string{
	domain.FieldID:     "id",
	domain.FieldQuote:  "quote",
	domain.FieldQuoter: "quoter",
	domain.FieldSource: "source",
	domain.FieldLikes:  "likes",
}

const selectQuotes = `SELECT id, quote, quoter, source, likes FROM quotes`

// Repository implements ports.QuoteStore on database/sql.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*Repository, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes
	// writers, which SQLite does anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Repository{db: db}, nil
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string { return "sqlite" }

// Check implements ports.HealthChecker.
func (r *Repository) Check(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close releases the database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.Quote, error) {
	row := r.db.QueryRowContext(ctx, selectQuotes+` WHERE id = ?`, id)

	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.EntityQuote, id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting quote %s: %w", id, err)
	}

	return q, nil
}

func (r *Repository) Put(ctx context.Context, q *domain.Quote) error {
	var source sql.NullString
	if q.Source != nil {
		source = sql.NullString{String: *q.Source, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quotes (id, quote, quoter, source, likes) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			quote = excluded.quote,
			quoter = excluded.quoter,
			source = excluded.source,
			likes = excluded.likes`,
		q.ID, q.Text, q.Quoter, source, q.Likes)
	if isUniqueViolation(err) {
		return domain.NewConflictError(domain.EntityQuote, "quote and quoter already exist")
	}
	if err != nil {
		return fmt.Errorf("putting quote %s: %w", q.ID, err)
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting quote %s: %w", id, err)
	}

	return nil
}

func (r *Repository) Scan(ctx context.Context, filter domain.Filter) ([]*domain.Quote, error) {
	where, args, err := buildWhere(filter)
	if err != nil {
		return nil, err
	}

	return r.query(ctx, selectQuotes+where+` ORDER BY id`, args...)
}

func (r *Repository) QueryByQuoteAndQuoter(ctx context.Context, quote, quoter string) ([]*domain.Quote, error) {
	return r.query(ctx, selectQuotes+` WHERE quote = ? AND quoter = ?`, quote, quoter)
}

func (r *Repository) query(ctx context.Context, stmt string, args ...any) ([]*domain.Quote, error) {
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("querying quotes: %w", err)
	}
	defer rows.Close()

	out := []*domain.Quote{}
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("reading quote row: %w", err)
		}
		out = append(out, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotes: %w", err)
	}

	return out, nil
}

// buildWhere compiles the filter into a parameterized WHERE clause.
func buildWhere(filter domain.Filter) (string, []any, error) {
	if filter.Empty() {
		return "", nil, nil
	}

	clauses := make([]string, 0, len(filter.Conditions))
	args := make([]any, 0, len(filter.Conditions))
	for _, c := range filter.Conditions {
		col, ok := columns[c.Field]
		if !ok {
			return "", nil, domain.NewValidationError(c.Field.String(), "is not a filterable field")
		}
		clauses = append(clauses, col+" = ?")
		args = append(args, c.Value)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (*domain.Quote, error) {
	var (
		q      domain.Quote
		source sql.NullString
	)
	if err := row.Scan(&q.ID, &q.Text, &q.Quoter, &source, &q.Likes); err != nil {
		return nil, err
	}
	if source.Valid {
		q.Source = &source.String
	}

	return &q, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}

	if se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}

	// Without extended result codes only the primary code is set.
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE")
}
