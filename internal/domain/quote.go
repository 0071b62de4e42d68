package domain

// EntityQuote is the entity name used in error messages.
const EntityQuote = "quote"

// Quote is a single quotation record.
type Quote struct {
	// ID is assigned once at creation and never changes.
	ID string

	// Text is the quotation itself.
	Text string

	// Quoter is who the quotation is attributed to.
	Quoter string

	// Source is where the quotation comes from. Nil means unknown.
	Source *string

	// Likes counts like actions. It starts at zero and never goes negative.
	Likes int64
}

// Clone returns a deep copy so stores can hand out records without sharing
// the Source pointer.
func (q *Quote) Clone() *Quote {
	if q == nil {
		return nil
	}

	c := *q
	if q.Source != nil {
		s := *q.Source
		c.Source = &s
	}

	return &c
}

// SourceOrEmpty returns the source text, or "" when unknown.
func (q *Quote) SourceOrEmpty() string {
	if q.Source == nil {
		return ""
	}

	return *q.Source
}

// NewQuote is the input for creating a quote.
type NewQuote struct {
	Text   string
	Quoter string
	Source *string
}

// Validate checks the create rules: text and quoter must be non-empty.
func (n NewQuote) Validate() error {
	var errs FieldErrors
	if n.Text == "" {
		errs = append(errs, &ValidationError{Field: FieldQuote.String(), Message: "is required"})
	}
	if n.Quoter == "" {
		errs = append(errs, &ValidationError{Field: FieldQuoter.String(), Message: "is required"})
	}

	return errs.OrNil()
}

// Build turns the input into a record with the given id and zero likes.
func (n NewQuote) Build(id string) *Quote {
	return &Quote{
		ID:     id,
		Text:   n.Text,
		Quoter: n.Quoter,
		Source: NormalizeSource(n.Source),
		Likes:  0,
	}
}

// QuoteReplacement is the input for a full-replace update. Every mutable
// field must be supplied, including Source, which is optional on create.
type QuoteReplacement struct {
	Text   string
	Quoter string
	Source string
	Likes  int64
}

// Validate checks the update rules.
func (r QuoteReplacement) Validate() error {
	var errs FieldErrors
	if r.Text == "" {
		errs = append(errs, &ValidationError{Field: FieldQuote.String(), Message: "is required"})
	}
	if r.Quoter == "" {
		errs = append(errs, &ValidationError{Field: FieldQuoter.String(), Message: "is required"})
	}
	if r.Source == "" {
		errs = append(errs, &ValidationError{Field: FieldSource.String(), Message: "is required"})
	}
	if r.Likes < 0 {
		errs = append(errs, &ValidationError{Field: FieldLikes.String(), Message: "must not be negative", Value: r.Likes})
	}

	return errs.OrNil()
}

// Apply returns the record that replaces the one stored under id.
func (r QuoteReplacement) Apply(id string) *Quote {
	source := r.Source

	return &Quote{
		ID:     id,
		Text:   r.Text,
		Quoter: r.Quoter,
		Source: &source,
		Likes:  r.Likes,
	}
}

// NormalizeSource maps a missing or empty source to nil.
func NormalizeSource(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	v := *s

	return &v
}
