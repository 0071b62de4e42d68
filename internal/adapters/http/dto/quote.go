package dto

import (
	"fmt"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// Response messages.
const (
	MsgQuoteCreated   = "Quote created successfully"
	MsgQuoteUpdated   = "Quote updated successfully"
	MsgQuoteDeleted   = "Quote deleted successfully"
	MsgQuoteLiked     = "Quote liked successfully"
	MsgQuotesListed   = "Quotes retrieved successfully"
	MsgQuotesQueried  = "Quotes queried successfully"
	msgQuoteRetrieved = "Quote with id %s retrieved successfully"
)

// MsgQuoteRetrieved formats the single-read message.
func MsgQuoteRetrieved(id string) string {
	return fmt.Sprintf(msgQuoteRetrieved, id)
}

// CreateQuoteRequest is the POST /quotes body.
type CreateQuoteRequest struct {
	Quote  string  `json:"quote" validate:"required"`
	Quoter string  `json:"quoter" validate:"required"`
	Source *string `json:"source"`
}

// ToDomain converts the request into create input.
func (r *CreateQuoteRequest) ToDomain() domain.NewQuote {
	return domain.NewQuote{Text: r.Quote, Quoter: r.Quoter, Source: r.Source}
}

// UpdateQuoteRequest is the PUT /quotes/{id} body. Every field is required,
// source included, because update is a full replace.
type UpdateQuoteRequest struct {
	Quote  string `json:"quote" validate:"required"`
	Quoter string `json:"quoter" validate:"required"`
	Source string `json:"source" validate:"required"`
	Likes  *int64 `json:"likes" validate:"required,min=0"`
}

// ToDomain converts the request into replacement input. Call only after
// validation has confirmed Likes is set.
func (r *UpdateQuoteRequest) ToDomain() domain.QuoteReplacement {
	return domain.QuoteReplacement{
		Text:   r.Quote,
		Quoter: r.Quoter,
		Source: r.Source,
		Likes:  *r.Likes,
	}
}

// QuoteResponse is the wire shape of a quote. Source is null, never
// omitted, when unknown.
type QuoteResponse struct {
	ID     string  `json:"id"`
	Quote  string  `json:"quote"`
	Quoter string  `json:"quoter"`
	Source *string `json:"source"`
	Likes  int64   `json:"likes"`
}

// ToQuoteResponse converts a domain quote.
func ToQuoteResponse(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:     q.ID,
		Quote:  q.Text,
		Quoter: q.Quoter,
		Source: q.Source,
		Likes:  q.Likes,
	}
}

// ToDomain converts a wire quote back, as the API client does.
func (r *QuoteResponse) ToDomain() *domain.Quote {
	return &domain.Quote{
		ID:     r.ID,
		Text:   r.Quote,
		Quoter: r.Quoter,
		Source: r.Source,
		Likes:  r.Likes,
	}
}

// QuoteEnvelope wraps a single quote.
type QuoteEnvelope struct {
	Message string         `json:"message"`
	Quote   *QuoteResponse `json:"quote"`
}

// ListMetadata describes a list result.
type ListMetadata struct {
	TotalCount int `json:"total_count"`
}

// QuoteListEnvelope wraps a list of quotes. Quotes is never null.
type QuoteListEnvelope struct {
	Message  string           `json:"message"`
	Metadata ListMetadata     `json:"metadata"`
	Quotes   []*QuoteResponse `json:"quotes"`
}

// NewQuoteListEnvelope builds a list envelope.
func NewQuoteListEnvelope(message string, quotes []*domain.Quote) *QuoteListEnvelope {
	out := make([]*QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, ToQuoteResponse(q))
	}

	return &QuoteListEnvelope{
		Message:  message,
		Metadata: ListMetadata{TotalCount: len(out)},
		Quotes:   out,
	}
}

// DeleteEnvelope confirms a delete.
type DeleteEnvelope struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
