package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// requestIDMiddleware tags every request with an id so log lines from one
// request can be correlated. An id supplied by the client is kept as-is.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.Request.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.Set(requestIDHeader, id)
		ctx.Header(requestIDHeader, id)

		ctx.Next()
	}
}
