package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// 页面模板名
const (
	ViewListAuthors    = "list-authors"
	ViewAuthorForm     = "author-form"
	ViewListBooks      = "list-books"
	ViewBookForm       = "book-form"
	ViewListPublishers = "list-publishers"
	ViewPublisherForm  = "publisher-form"
)

// parseID 读取查询参数中的实体ID
// 缺失或不是非负整数时返回参数错误
func parseID(c *gin.Context, key string) (uint, error) {
	raw := c.Query(key)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, &apperrors.AppError{
			Code:    apperrors.ErrCodeInvalidParams,
			Message: "Invalid parameter " + key + ": " + strconv.Quote(raw),
			Err:     err,
		}
	}
	return uint(id), nil
}

// renderBadRequest 参数错误渲染400错误页
func renderBadRequest(c *gin.Context, err error) {
	response.ErrorView(c, http.StatusBadRequest, err)
}

// renderBindError 表单绑定失败
func renderBindError(c *gin.Context, log *zap.Logger, err error) {
	log.Debug("表单绑定失败", zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))
	renderBadRequest(c, &apperrors.AppError{
		Code:    apperrors.ErrCodeBindError,
		Message: apperrors.ErrBindError.Message,
		Err:     err,
	})
}

// renderFailure 记录错误并渲染500错误页
func renderFailure(c *gin.Context, log *zap.Logger, msg string, err error) {
	log.Error(msg,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", middleware.GetRequestID(c)),
	)
	response.ErrorView(c, http.StatusInternalServerError, err)
}
