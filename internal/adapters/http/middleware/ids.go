package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

const (
	// HeaderRequestID identifies one HTTP request.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID follows one user action across services, e.g. a
	// CLI "like" that reads and then writes.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key of the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key of the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

type idBinding struct {
	header string
	ginKey string
	enrich []func(context.Context, string) context.Context
}

// propagateID reads the header or mints a UUID, then exposes the ID in the
// gin context, the response header, the request context and the context
// logger.
func propagateID(b idBinding) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(b.header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(b.ginKey, id)
		c.Header(b.header, id)

		ctx := c.Request.Context()
		for _, fn := range b.enrich {
			ctx = fn(ctx, id)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequestID takes X-Request-ID from the request or generates one.
func RequestID() gin.HandlerFunc {
	return propagateID(idBinding{
		header: HeaderRequestID,
		ginKey: ContextKeyRequestID,
		enrich: []func(context.Context, string) context.Context{
			ContextWithRequestID,
			logging.WithRequestID,
		},
	})
}

// CorrelationID takes X-Correlation-ID from the request or generates one.
func CorrelationID() gin.HandlerFunc {
	return propagateID(idBinding{
		header: HeaderCorrelationID,
		ginKey: ContextKeyCorrelationID,
		enrich: []func(context.Context, string) context.Context{
			ContextWithCorrelationID,
			logging.WithCorrelationID,
		},
	})
}

// GetRequestID returns the request ID from the gin context, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID from the gin context, or "".
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}
