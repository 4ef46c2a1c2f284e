package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cie-dashboard/pkg/log"
)

// HeaderRequestID carries the trace id in and out of the service.
const HeaderRequestID = "X-Request-ID"

// TraceID stores a trace id on the request context so every log line of the
// request carries it. An incoming X-Request-ID is reused.
func (m Middleware) TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		ctx := log.WithTraceID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
