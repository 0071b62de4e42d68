package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/mocks"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

func strPtr(s string) *string { return &s }

// newQuoteRouter wires a QuoteHandler over repo on a bare gin engine.
func newQuoteRouter(t *testing.T, repo ports.QuoteRepository) *gin.Engine {
	t.Helper()

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Repository: repo,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	router := gin.New()
	NewQuoteHandler(service).RegisterQuoteRoutes(&router.RouterGroup)

	return router
}

func seeded(t *testing.T) *memory.Repository {
	t.Helper()

	repo := memory.New()
	for _, q := range []*domain.Quote{
		{ID: "id-1", Text: "Why so serious?", Quoter: "Joker", Source: strPtr("The Dark Knight")},
		{ID: "id-2", Text: "I am vengeance", Quoter: "Batman", Likes: 5},
		{ID: "id-3", Text: "Madness is like gravity", Quoter: "Joker", Likes: 5},
	} {
		require.NoError(t, repo.Put(t.Context(), q))
	}

	return repo
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func TestQuoteHandler_RegisterQuoteRoutes(t *testing.T) {
	router := newQuoteRouter(t, memory.New())

	routeMap := make(map[string]bool)
	for _, r := range router.Routes() {
		routeMap[r.Method+" "+r.Path] = true
	}

	for _, expected := range []string{
		"GET /quotes",
		"POST /quotes",
		"PUT /quotes",
		"DELETE /quotes",
		"PUT /quotes/",
		"DELETE /quotes/",
		"GET /quotes/:id",
		"PUT /quotes/:id",
		"DELETE /quotes/:id",
		"POST /quotes/:id/like",
	} {
		assert.True(t, routeMap[expected], "missing route: %s", expected)
	}
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedMsg    string
		expectedIDs    []string
		expectedCode   string
	}{
		{
			name:           "all quotes",
			target:         "/quotes",
			expectedStatus: http.StatusOK,
			expectedMsg:    dto.MsgQuotesListed,
			expectedIDs:    []string{"id-1", "id-2", "id-3"},
		},
		{
			name:           "exact quoter",
			target:         "/quotes?quoter=Joker",
			expectedStatus: http.StatusOK,
			expectedMsg:    dto.MsgQuotesQueried,
			expectedIDs:    []string{"id-1", "id-3"},
		},
		{
			name:           "case sensitive",
			target:         "/quotes?quoter=joker",
			expectedStatus: http.StatusOK,
			expectedMsg:    dto.MsgQuotesQueried,
			expectedIDs:    []string{},
		},
		{
			name:           "conjunction with likes",
			target:         "/quotes?quoter=Joker&likes=5",
			expectedStatus: http.StatusOK,
			expectedMsg:    dto.MsgQuotesQueried,
			expectedIDs:    []string{"id-3"},
		},
		{
			name:           "unknown field",
			target:         "/quotes?author=Joker",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrorCodeValidation,
		},
		{
			name:           "non numeric likes",
			target:         "/quotes?likes=lots",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrorCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newQuoteRouter(t, seeded(t)), http.MethodGet, tt.target, "")

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decode[dto.ErrorResponse](t, w).Error.Code)
				return
			}

			resp := decode[dto.QuoteListEnvelope](t, w)
			assert.Equal(t, tt.expectedMsg, resp.Message)
			assert.Equal(t, len(tt.expectedIDs), resp.Metadata.TotalCount)
			require.NotNil(t, resp.Quotes)

			ids := make([]string, 0, len(resp.Quotes))
			for _, q := range resp.Quotes {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestQuoteHandler_ListQuotes_EmptyStoreIsEmptyArray(t *testing.T) {
	w := do(newQuoteRouter(t, memory.New()), http.MethodGet, "/quotes", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quotes":[]`)
	assert.Contains(t, w.Body.String(), `"total_count":0`)
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	router := newQuoteRouter(t, seeded(t))

	w := do(router, http.MethodGet, "/quotes/id-2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"message": "Quote with id id-2 retrieved successfully",
		"quote": {"id":"id-2","quote":"I am vengeance","quoter":"Batman","source":null,"likes":5}
	}`, w.Body.String())

	w = do(router, http.MethodGet, "/quotes/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeNotFound, decode[dto.ErrorResponse](t, w).Error.Code)
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{
			name:           "created",
			body:           `{"quote":"You either die a hero","quoter":"Harvey Dent","source":"The Dark Knight"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing body",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrorCodeBadRequest,
			expectedMsg:    "request body is missing",
		},
		{
			name:           "invalid json",
			body:           `{"quote":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrorCodeBadRequest,
			expectedMsg:    "invalid JSON format",
		},
		{
			name:           "missing quoter",
			body:           `{"quote":"alone"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrorCodeValidation,
		},
		{
			name:           "duplicate pair",
			body:           `{"quote":"Why so serious?","quoter":"Joker"}`,
			expectedStatus: http.StatusConflict,
			expectedCode:   dto.ErrorCodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seeded(t)
			w := do(newQuoteRouter(t, repo), http.MethodPost, "/quotes", tt.body)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			all, err := repo.Scan(t.Context(), domain.Filter{})
			require.NoError(t, err)

			if tt.expectedCode != "" {
				resp := decode[dto.ErrorResponse](t, w)
				assert.Equal(t, tt.expectedCode, resp.Error.Code)
				if tt.expectedMsg != "" {
					assert.Equal(t, tt.expectedMsg, resp.Error.Message)
				}
				assert.Len(t, all, 3, "failed create must not write")
				return
			}

			resp := decode[dto.QuoteEnvelope](t, w)
			assert.Equal(t, dto.MsgQuoteCreated, resp.Message)
			assert.NotEmpty(t, resp.Quote.ID)
			assert.Equal(t, int64(0), resp.Quote.Likes)
			assert.Len(t, all, 4)
		})
	}
}

func TestQuoteHandler_CreateQuote_SourceNullWhenOmitted(t *testing.T) {
	w := do(newQuoteRouter(t, memory.New()), http.MethodPost, "/quotes", `{"quote":"q","quoter":"r"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"source":null`)
}

func TestQuoteHandler_CreateQuote_RequiredFieldDetails(t *testing.T) {
	w := do(newQuoteRouter(t, memory.New()), http.MethodPost, "/quotes", `{"quoter":"Joker"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
	assert.Equal(t, map[string]string{"quote": "is required"}, resp.Error.Details)
}

func TestQuoteHandler_UpdateQuote(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "full replace",
			target:         "/quotes/id-1",
			body:           `{"id":"ignored","quote":"Why so serious?","quoter":"Joker","source":"Batman 1989","likes":0}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "collection path has no id",
			target:         "/quotes",
			body:           `{"quote":"q","quoter":"r","source":"s","likes":1}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrorCodeBadRequest,
		},
		{
			name:           "likes not a number",
			target:         "/quotes/id-1",
			body:           `{"quote":"q","quoter":"r","source":"s","likes":"ten"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrorCodeValidation,
		},
		{
			name:           "source required",
			target:         "/quotes/id-1",
			body:           `{"quote":"q","quoter":"r","likes":1}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrorCodeValidation,
		},
		{
			name:           "empty body",
			target:         "/quotes/id-1",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrorCodeBadRequest,
		},
		{
			name:           "unknown id",
			target:         "/quotes/nope",
			body:           `{"quote":"q","quoter":"r","source":"s","likes":1}`,
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrorCodeNotFound,
		},
		{
			name:           "collides with another record",
			target:         "/quotes/id-1",
			body:           `{"quote":"I am vengeance","quoter":"Batman","source":"s","likes":1}`,
			expectedStatus: http.StatusConflict,
			expectedCode:   dto.ErrorCodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seeded(t)
			w := do(newQuoteRouter(t, repo), http.MethodPut, tt.target, tt.body)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decode[dto.ErrorResponse](t, w).Error.Code)

				unchanged, err := repo.Get(t.Context(), "id-1")
				require.NoError(t, err)
				assert.Equal(t, "The Dark Knight", unchanged.SourceOrEmpty())
				return
			}

			resp := decode[dto.QuoteEnvelope](t, w)
			assert.Equal(t, dto.MsgQuoteUpdated, resp.Message)
			assert.Equal(t, "id-1", resp.Quote.ID)
			assert.Equal(t, "Batman 1989", *resp.Quote.Source)
			assert.Equal(t, int64(0), resp.Quote.Likes)
		})
	}
}

func TestQuoteHandler_LikeQuote(t *testing.T) {
	router := newQuoteRouter(t, seeded(t))

	w := do(router, http.MethodPost, "/quotes/id-2/like", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.QuoteEnvelope](t, w)
	assert.Equal(t, dto.MsgQuoteLiked, resp.Message)
	assert.Equal(t, int64(6), resp.Quote.Likes)
	assert.Nil(t, resp.Quote.Source, "liking keeps an unknown source unknown")

	w = do(router, http.MethodPost, "/quotes/nope/like", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuoteHandler_DeleteQuote(t *testing.T) {
	router := newQuoteRouter(t, seeded(t))

	w := do(router, http.MethodDelete, "/quotes/id-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Quote deleted successfully","id":"id-1"}`, w.Body.String())

	w = do(router, http.MethodGet, "/quotes/id-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodDelete, "/quotes/id-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodDelete, "/quotes", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgMissingID, decode[dto.ErrorResponse](t, w).Error.Message)
}

func TestQuoteHandler_StoreFailureIsInternal(t *testing.T) {
	repo := mocks.NewMockQuoteRepository(t)
	repo.EXPECT().Scan(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset by peer"))

	w := do(newQuoteRouter(t, repo), http.MethodGet, "/quotes", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "connection reset")
}

func TestQuoteHandler_MissingPathParam(t *testing.T) {
	handler := NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{Repository: memory.New()}))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/quotes/", nil)
	c.Params = gin.Params{{Key: "id", Value: ""}}

	handler.GetQuote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
