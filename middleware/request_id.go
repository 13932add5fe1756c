package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIdHeader = "X-Request-Id"
	RequestIdKey    = "request_id"
)

// RequestId 沿用上游传入的合法uuid, 否则生成新的
func RequestId() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIdHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		ctx.Set(RequestIdKey, id)
		ctx.Header(RequestIdHeader, id)
		ctx.Next()
	}
}

func GetRequestId(ctx *gin.Context) string {
	return ctx.GetString(RequestIdKey)
}
