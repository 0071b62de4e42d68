package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrorCodeNotFound, "quote not found")
	assert.Equal(t, ErrorCodeNotFound, resp.Error.Code)
	assert.Equal(t, "quote not found", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)

	data, err := json.Marshal(resp.WithTraceID("trace-1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"quote not found"},"traceId":"trace-1"}`, string(data))
}

func TestNewErrorResponseWithDetails(t *testing.T) {
	resp := NewErrorResponseWithDetails(ErrorCodeValidation, "bad", map[string]string{"likes": "must be a number"})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"VALIDATION_ERROR","message":"bad","details":{"likes":"must be a number"}}}`, string(data))
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := map[string]int{
		ErrorCodeBadRequest:  http.StatusBadRequest,
		ErrorCodeValidation:  http.StatusBadRequest,
		ErrorCodeNotFound:    http.StatusNotFound,
		ErrorCodeConflict:    http.StatusConflict,
		ErrorCodeTimeout:     http.StatusGatewayTimeout,
		ErrorCodeUnavailable: http.StatusServiceUnavailable,
		ErrorCodeInternal:    http.StatusInternalServerError,
		"SOMETHING_ELSE":     http.StatusInternalServerError,
	}

	for code, want := range tests {
		t.Run(code, func(t *testing.T) {
			assert.Equal(t, want, HTTPStatusFromCode(code))
		})
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMsg     string
		wantDetails map[string]string
	}{
		{
			name:       "not found",
			err:        domain.NewNotFoundError(domain.EntityQuote, "abc"),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrorCodeNotFound,
			wantMsg:    `quote with id "abc" not found`,
		},
		{
			name:       "conflict",
			err:        domain.NewConflictError(domain.EntityQuote, "quote and quoter already exist"),
			wantStatus: http.StatusConflict,
			wantCode:   ErrorCodeConflict,
			wantMsg:    "quote conflict: quote and quoter already exist",
		},
		{
			name:       "wrapped not found drops caller context",
			err:        fmt.Errorf("getting quote: %w", domain.NewNotFoundError(domain.EntityQuote, "nope")),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrorCodeNotFound,
			wantMsg:    `quote with id "nope" not found`,
		},
		{
			name: "wrapped conflict drops caller context",
			err: fmt.Errorf("checking quote exists: %w",
				domain.NewConflictError(domain.EntityQuote, "quote and quoter already exist")),
			wantStatus: http.StatusConflict,
			wantCode:   ErrorCodeConflict,
			wantMsg:    "quote conflict: quote and quoter already exist",
		},
		{
			name:        "wrapped validation error drops caller context",
			err:         fmt.Errorf("parsing filter: %w", domain.NewValidationError("likes", "must be an integer")),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMsg:     "validation failed for likes: must be an integer",
			wantDetails: map[string]string{"likes": "must be an integer"},
		},
		{
			name:        "single validation error",
			err:         domain.NewValidationError("author", "is not a filterable field"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMsg:     "validation failed for author: is not a filterable field",
			wantDetails: map[string]string{"author": "is not a filterable field"},
		},
		{
			name: "field errors",
			err: domain.FieldErrors{
				{Field: "quote", Message: "is required"},
				{Field: "quoter", Message: "is required"},
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMsg:     "request validation failed",
			wantDetails: map[string]string{"quote": "is required", "quoter": "is required"},
		},
		{
			name:       "unavailable hides the reason",
			err:        domain.NewUnavailableError("dynamodb", "throttled on table Quotes"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrorCodeUnavailable,
			wantMsg:    "service temporarily unavailable",
		},
		{
			name:       "deadline exceeded",
			err:        fmt.Errorf("scanning quotes: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   ErrorCodeTimeout,
			wantMsg:    "request timeout exceeded",
		},
		{
			name:       "unknown error hides details",
			err:        errors.New("dial tcp 10.0.0.1:443: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternal,
			wantMsg:    "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
		})
	}

	status, resp := MapDomainError(nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp)
}

func TestGetTraceID(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*gin.Context)
		want  string
	}{
		{
			name:  "value in context",
			setup: func(c *gin.Context) { c.Set(TraceIDKey, "ctx-trace") },
			want:  "ctx-trace",
		},
		{
			name:  "request id header",
			setup: func(c *gin.Context) { c.Request.Header.Set("X-Request-ID", "hdr-trace") },
			want:  "hdr-trace",
		},
		{
			name: "context wins over header",
			setup: func(c *gin.Context) {
				c.Set(TraceIDKey, "ctx-trace")
				c.Request.Header.Set("X-Request-ID", "hdr-trace")
			},
			want: "ctx-trace",
		},
		{
			name:  "wrong type in context",
			setup: func(c *gin.Context) { c.Set(TraceIDKey, 42) },
			want:  "",
		},
		{
			name:  "nothing set",
			setup: func(*gin.Context) {},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(c)

			assert.Equal(t, tt.want, GetTraceID(c))
		})
	}
}

func TestHandleError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/quotes/x", nil)
	c.Set(TraceIDKey, "trace-123")

	HandleError(c, domain.NewNotFoundError(domain.EntityQuote, "x"))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrorCodeNotFound, resp.Error.Code)
	assert.Equal(t, "trace-123", resp.TraceID)
}

func TestRespondWithErrorCode(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/quotes", nil)

	RespondWithErrorCode(c, ErrorCodeBadRequest, ErrMissingBody.Error())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "request body is missing")
}

func TestAbortWithErrorCode(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	AbortWithErrorCode(c, ErrorCodeTimeout, "request timed out")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestDecodeJSON_Create(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantBody  error
		errFields []string
		want      *CreateQuoteRequest
	}{
		{name: "empty body", body: "", wantBody: ErrMissingBody},
		{name: "whitespace body", body: "  \n", wantBody: ErrMissingBody},
		{name: "malformed json", body: `{"quote": "x"`, wantBody: ErrInvalidJSON},
		{name: "array body", body: `[1,2]`, wantBody: ErrInvalidJSON},
		{name: "missing quoter", body: `{"quote":"x"}`, errFields: []string{"quoter"}},
		{name: "empty strings", body: `{"quote":"","quoter":""}`, errFields: []string{"quote", "quoter"}},
		{name: "quote not a string", body: `{"quote":5,"quoter":"x"}`, errFields: []string{"quote"}},
		{
			name: "valid with source",
			body: `{"quote":"Why so serious?","quoter":"Joker","source":"The Dark Knight"}`,
			want: &CreateQuoteRequest{Quote: "Why so serious?", Quoter: "Joker", Source: strPtr("The Dark Knight")},
		},
		{
			name: "valid without source",
			body: `{"quote":"Why so serious?","quoter":"Joker"}`,
			want: &CreateQuoteRequest{Quote: "Why so serious?", Quoter: "Joker"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateQuoteRequest
			err := DecodeJSON([]byte(tt.body), &req)

			switch {
			case tt.wantBody != nil:
				require.ErrorIs(t, err, tt.wantBody)
				assert.True(t, IsBodyError(err))
			case tt.errFields != nil:
				var fe domain.FieldErrors
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.errFields, fe.Fields())
				assert.False(t, IsBodyError(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, &req)
			}
		})
	}
}

func TestDecodeJSON_Update(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		errFields map[string]string
		want      domain.QuoteReplacement
	}{
		{
			name:      "likes as text",
			body:      `{"quote":"q","quoter":"r","source":"s","likes":"ten"}`,
			errFields: map[string]string{"likes": "must be a number"},
		},
		{
			name:      "likes fractional",
			body:      `{"quote":"q","quoter":"r","source":"s","likes":1.5}`,
			errFields: map[string]string{"likes": "must be an integer"},
		},
		{
			name:      "likes negative",
			body:      `{"quote":"q","quoter":"r","source":"s","likes":-1}`,
			errFields: map[string]string{"likes": "must be at least 0"},
		},
		{
			name: "source and likes missing",
			body: `{"quote":"q","quoter":"r"}`,
			errFields: map[string]string{
				"source": "is required",
				"likes":  "is required",
			},
		},
		{
			name: "zero likes accepted",
			body: `{"quote":"q","quoter":"r","source":"s","likes":0}`,
			want: domain.QuoteReplacement{Text: "q", Quoter: "r", Source: "s", Likes: 0},
		},
		{
			name: "id in body is ignored",
			body: `{"id":"other","quote":"q","quoter":"r","source":"s","likes":3}`,
			want: domain.QuoteReplacement{Text: "q", Quoter: "r", Source: "s", Likes: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateQuoteRequest
			err := DecodeJSON([]byte(tt.body), &req)

			if tt.errFields != nil {
				var fe domain.FieldErrors
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.errFields, fe.Details())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, req.ToDomain())
		})
	}
}

func TestBindJSON(t *testing.T) {
	t.Run("reads request body", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(`{"quote":"a","quoter":"b"}`))

		var req CreateQuoteRequest
		require.NoError(t, BindJSON(c, &req))
		assert.Equal(t, domain.NewQuote{Text: "a", Quoter: "b"}, req.ToDomain())
	})

	t.Run("nil body", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = &http.Request{Method: http.MethodPost}

		var req CreateQuoteRequest
		assert.ErrorIs(t, BindJSON(c, &req), ErrMissingBody)
	})
}

func TestQuoteResponse_JSONShape(t *testing.T) {
	t.Run("unknown source is null", func(t *testing.T) {
		data, err := json.Marshal(ToQuoteResponse(&domain.Quote{ID: "q-1", Text: "Why so serious?", Quoter: "Joker"}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"q-1","quote":"Why so serious?","quoter":"Joker","source":null,"likes":0}`, string(data))
	})

	t.Run("round trip through the wire shape", func(t *testing.T) {
		q := &domain.Quote{ID: "q-1", Text: "t", Quoter: "q", Source: strPtr("s"), Likes: 4}
		assert.Equal(t, q, ToQuoteResponse(q).ToDomain())
	})
}

func TestNewQuoteListEnvelope(t *testing.T) {
	empty := NewQuoteListEnvelope(MsgQuotesListed, nil)
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Quotes retrieved successfully","metadata":{"total_count":0},"quotes":[]}`, string(data))

	two := NewQuoteListEnvelope(MsgQuotesQueried, []*domain.Quote{{ID: "a"}, {ID: "b"}})
	assert.Equal(t, 2, two.Metadata.TotalCount)
	assert.Equal(t, "b", two.Quotes[1].ID)
}

func TestMsgQuoteRetrieved(t *testing.T) {
	assert.Equal(t, "Quote with id abc retrieved successfully", MsgQuoteRetrieved("abc"))
}

func TestUpdateQuoteRequest_LikesPointer(t *testing.T) {
	req := UpdateQuoteRequest{Quote: "q", Quoter: "r", Source: "s", Likes: int64Ptr(0)}
	require.NoError(t, Validate(&req))
}
