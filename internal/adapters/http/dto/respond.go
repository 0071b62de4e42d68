package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// TraceIDKey is the gin context key middleware may use to expose a trace ID.
const TraceIDKey = "trace_id"

const (
	msgInternal    = "an internal error occurred"
	msgUnavailable = "service temporarily unavailable"
	msgTimeout     = "request timeout exceeded"
)

// MapDomainError picks the status and envelope for err. Errors that are not
// part of the domain vocabulary become a 500 with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	switch {
	case err == nil:
		return http.StatusOK, nil

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var fieldErrs domain.FieldErrors
		var single *domain.ValidationError
		switch {
		case errors.As(err, &fieldErrs):
			resp.Error.Message = "request validation failed"
			resp.Error.Details = fieldErrs.Details()
		case errors.As(err, &single):
			resp.Error.Message = single.Error()
			if single.Field != "" {
				resp.Error.Details = map[string]string{single.Field: single.Message}
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, domainMessage[*domain.NotFoundError](err))

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, domainMessage[*domain.ConflictError](err))

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, msgUnavailable)

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, msgTimeout)

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, msgInternal)
	}
}

// domainMessage renders the typed domain error inside err without the
// context callers wrapped around it.
func domainMessage[T error](err error) string {
	var target T
	if errors.As(err, &target) {
		return target.Error()
	}

	return err.Error()
}

// GetTraceID returns the trace ID for the request: the active span first,
// then a value set under TraceIDKey, then the X-Request-ID header.
func GetTraceID(c *gin.Context) string {
	if c.Request != nil {
		if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
			return sc.TraceID().String()
		}
	}

	if v, ok := c.Get(TraceIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
		return ""
	}

	if c.Request != nil {
		return c.Request.Header.Get("X-Request-ID")
	}

	return ""
}

// HandleError writes the envelope for err. Server-side failures are logged
// with the full error since the response hides it.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
			slog.Int("status", status),
			slog.String("error", err.Error()),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// RespondWithErrorCode writes an adapter-level error such as a malformed body.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// AbortWithErrorCode is RespondWithErrorCode for middleware that must stop
// the chain.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}
