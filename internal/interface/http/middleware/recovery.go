package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/library/pkg/response"
)

// Recovery 捕获handler中的panic,记录堆栈并渲染500错误页
func Recovery(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("recovery")

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("请求处理panic",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", GetRequestID(c)),
					zap.Stack("stack"),
				)
				response.ErrorView(c, http.StatusInternalServerError, fmt.Errorf("panic: %v", r))
				c.Abort()
			}
		}()

		c.Next()
	}
}
