package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

const msgMissingID = "{id} path parameter is missing in the url"

// QuoteHandler handles the /quotes endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ListQuotes handles GET /quotes. With a query string the keys become an
// exact-match filter; without one every quote is returned.
//
// @Summary List or filter quotes
// @Tags quotes
// @Produce json
// @Param quote query string false "Exact quote text"
// @Param quoter query string false "Exact quoter"
// @Param source query string false "Exact source"
// @Param likes query integer false "Exact like count"
// @Success 200 {object} dto.QuoteListEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Router /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	raw := c.Request.URL.Query()

	filter, err := domain.ParseFilter(raw)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	quotes, err := h.service.ListQuotes(c.Request.Context(), filter)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	msg := dto.MsgQuotesListed
	if len(raw) > 0 {
		msg = dto.MsgQuotesQueried
	}

	c.JSON(http.StatusOK, dto.NewQuoteListEnvelope(msg, quotes))
}

// GetQuote handles GET /quotes/:id.
//
// @Summary Get a quote by ID
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteEnvelope
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	quote, err := h.service.GetQuote(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteEnvelope{
		Message: dto.MsgQuoteRetrieved(id),
		Quote:   dto.ToQuoteResponse(quote),
	})
}

// CreateQuote handles POST /quotes.
//
// @Summary Create a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param body body dto.CreateQuoteRequest true "New quote"
// @Success 201 {object} dto.QuoteEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if !bindBody(c, &req) {
		return
	}

	quote, err := h.service.CreateQuote(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.QuoteEnvelope{
		Message: dto.MsgQuoteCreated,
		Quote:   dto.ToQuoteResponse(quote),
	})
}

// UpdateQuote handles PUT /quotes/:id. It is a full replace: the id comes
// from the path and every other field from the body.
//
// @Summary Replace a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param body body dto.UpdateQuoteRequest true "Replacement"
// @Success 200 {object} dto.QuoteEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateQuoteRequest
	if !bindBody(c, &req) {
		return
	}

	quote, err := h.service.UpdateQuote(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteEnvelope{
		Message: dto.MsgQuoteUpdated,
		Quote:   dto.ToQuoteResponse(quote),
	})
}

// LikeQuote handles POST /quotes/:id/like.
//
// @Summary Like a quote
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteEnvelope
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{id}/like [post]
func (h *QuoteHandler) LikeQuote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	quote, err := h.service.LikeQuote(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteEnvelope{
		Message: dto.MsgQuoteLiked,
		Quote:   dto.ToQuoteResponse(quote),
	})
}

// DeleteQuote handles DELETE /quotes/:id.
//
// @Summary Delete a quote
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.DeleteEnvelope
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteQuote(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteEnvelope{
		Message: dto.MsgQuoteDeleted,
		ID:      id,
	})
}

// MissingID answers PUT and DELETE on the collection path, with or without a
// trailing slash, where the id the operation needs is absent.
func (h *QuoteHandler) MissingID(c *gin.Context) {
	dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, msgMissingID)
}

// RegisterQuoteRoutes registers the quote routes on rg.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.POST("", h.CreateQuote)
	quotes.PUT("", h.MissingID)
	quotes.PUT("/", h.MissingID)
	quotes.DELETE("", h.MissingID)
	quotes.DELETE("/", h.MissingID)
	quotes.GET("/:id", h.GetQuote)
	quotes.PUT("/:id", h.UpdateQuote)
	quotes.DELETE("/:id", h.DeleteQuote)
	quotes.POST("/:id/like", h.LikeQuote)
}

func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id == "" {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, msgMissingID)
		return "", false
	}

	return id, true
}

// bindBody decodes and validates the body into v. Body-level failures are
// 400 BAD_REQUEST; field failures go through the domain error mapping.
func bindBody(c *gin.Context, v any) bool {
	err := dto.BindJSON(c, v)
	if err == nil {
		return true
	}

	if dto.IsBodyError(err) {
		msg := dto.ErrInvalidJSON.Error()
		if errors.Is(err, dto.ErrMissingBody) {
			msg = dto.ErrMissingBody.Error()
		}
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, msg)
		return false
	}

	dto.HandleError(c, err)

	return false
}
