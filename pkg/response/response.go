package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// ErrorViewName 错误页模板名
const ErrorViewName = "error"

// ErrorMessageKey 错误页中错误信息的模型键
const ErrorMessageKey = "errorMessage"

// Response 统一JSON响应结构(仅健康检查等非页面接口使用)
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应(Code=0表示成功)
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// View 渲染页面(状态码200)
// model中的键即模板中可访问的字段,如{{ .authors }}
func View(c *gin.Context, name string, model gin.H) {
	c.HTML(http.StatusOK, name, model)
}

// ErrorView 渲染错误页
// 设计说明:
// 1. 页面只展示AppError.Message,内部错误(AppError.Err)不渲染,由调用方记录日志
// 2. status由调用方决定:找不到实体是200,参数错误是400,其余是500
func ErrorView(c *gin.Context, status int, err error) {
	appErr := apperrors.GetAppError(err)
	c.HTML(status, ErrorViewName, gin.H{
		ErrorMessageKey: appErr.Message,
	})
}

// Redirect 写操作完成后重定向(302)
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
