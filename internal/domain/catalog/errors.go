package catalog

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 目录领域错误定义
// 三类实体统一使用AppError表示"不存在",可通过apperrors.IsNotFound判断

// ErrAuthorNotFound 作者不存在
func ErrAuthorNotFound(id uint) error {
	return apperrors.Newf(apperrors.ErrCodeAuthorNotFound, "Did not find author id - %d", id)
}

// ErrBookNotFound 图书不存在
func ErrBookNotFound(id uint) error {
	return apperrors.Newf(apperrors.ErrCodeBookNotFound, "Book not found with ID %d", id)
}

// ErrPublisherNotFound 出版社不存在
func ErrPublisherNotFound(id uint) error {
	return apperrors.Newf(apperrors.ErrCodePublisherNotFound, "Publisher not found with ID %d", id)
}
