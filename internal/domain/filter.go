package domain

import (
	"sort"
	"strconv"
)

// Field is a quote attribute that may be filtered on.
type Field string

// Filterable fields. Anything else is rejected by ParseFilter.
const (
	FieldID     Field = "id"
	FieldQuote  Field = "quote"
	FieldQuoter Field = "quoter"
	FieldSource Field = "source"
	FieldLikes  Field = "likes"
)

// Fields lists every filterable field in declaration order.
var Fields = []Field{FieldID, FieldQuote, FieldQuoter, FieldSource, FieldLikes}

func (f Field) String() string { return string(f) }

// Valid reports whether f is one of the filterable fields.
func (f Field) Valid() bool {
	switch f {
	case FieldID, FieldQuote, FieldQuoter, FieldSource, FieldLikes:
		return true
	default:
		return false
	}
}

// Condition is a single exact-match clause. Value holds a string for text
// fields and an int64 for FieldLikes.
type Condition struct {
	Field Field
	Value any
}

// Filter is a conjunction of conditions. The zero value matches every quote.
type Filter struct {
	Conditions []Condition
}

// Empty reports whether the filter matches everything.
func (f Filter) Empty() bool { return len(f.Conditions) == 0 }

// Where returns a copy of f with one more condition.
func (f Filter) Where(field Field, value any) Filter {
	conds := make([]Condition, len(f.Conditions), len(f.Conditions)+1)
	copy(conds, f.Conditions)

	return Filter{Conditions: append(conds, Condition{Field: field, Value: value})}
}

// ParseFilter builds a filter from raw key/value pairs, typically a URL
// query. Keys outside the allow-list and non-integer likes values fail with
// FieldErrors. Repeated keys add one condition per value.
func ParseFilter(raw map[string][]string) (Filter, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var (
		filter Filter
		errs   FieldErrors
	)
	for _, key := range keys {
		field := Field(key)
		if !field.Valid() {
			errs = append(errs, &ValidationError{Field: key, Message: "is not a filterable field"})
			continue
		}

		for _, v := range raw[key] {
			if field != FieldLikes {
				filter = filter.Where(field, v)
				continue
			}

			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				errs = append(errs, &ValidationError{Field: key, Message: "must be an integer", Value: v})
				continue
			}
			filter = filter.Where(field, n)
		}
	}

	if err := errs.OrNil(); err != nil {
		return Filter{}, err
	}

	return filter, nil
}

// Matches reports whether q satisfies every condition. A nil source only
// ever fails a source condition.
func (f Filter) Matches(q *Quote) bool {
	for _, c := range f.Conditions {
		if !c.matches(q) {
			return false
		}
	}

	return true
}

func (c Condition) matches(q *Quote) bool {
	switch c.Field {
	case FieldID:
		return q.ID == c.Value
	case FieldQuote:
		return q.Text == c.Value
	case FieldQuoter:
		return q.Quoter == c.Value
	case FieldSource:
		return q.Source != nil && *q.Source == c.Value
	case FieldLikes:
		n, ok := c.Value.(int64)
		return ok && q.Likes == n
	default:
		return false
	}
}
