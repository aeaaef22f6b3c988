package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader 请求ID响应头(上游已携带时沿用)
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey gin.Context中存放请求ID的键
	RequestIDKey = "request_id"
)

// RequestID 为每个请求分配唯一ID,便于串联日志
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID 读取当前请求ID(未经过RequestID中间件时为空)
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
