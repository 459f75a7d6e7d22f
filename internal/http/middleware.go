package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crud_testbench/internal/service"
)

const requestIDHeader = "X-Request-ID"

// requestContext tags every request with an id and hands the request
// details to the service through the request context.
func requestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		ctx := service.WithRequestInfo(c.Request.Context(), service.RequestInfo{
			RequestID: id,
			ClientIP:  c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
