package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// AuthorHandler 作者页面处理器
type AuthorHandler struct {
	authors catalog.AuthorService
	books   catalog.BookService
	log     *zap.Logger
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(authors catalog.AuthorService, books catalog.BookService, log *zap.Logger) *AuthorHandler {
	return &AuthorHandler{
		authors: authors,
		books:   books,
		log:     log.Named("author"),
	}
}

// List 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      html
// @Success      200 {string} string "list-authors页面"
// @Router       /author/list [get]
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authors.FindAll(c.Request.Context())
	if err != nil {
		renderFailure(c, h.log, "查询作者列表失败", err)
		return
	}
	response.View(c, ViewListAuthors, gin.H{"authors": authors})
}

// ShowFormForAdd 新增作者表单
// @Summary      新增作者表单
// @Tags         作者
// @Produce      html
// @Success      200 {string} string "author-form页面"
// @Router       /author/showFormForAdd [get]
func (h *AuthorHandler) ShowFormForAdd(c *gin.Context) {
	response.View(c, ViewAuthorForm, gin.H{"authors": catalog.NewAuthor()})
}

// ShowFormForUpdate 编辑作者表单
// 作者不存在时渲染错误页(状态码仍为200)
// @Summary      编辑作者表单
// @Tags         作者
// @Produce      html
// @Param        authorId query int true "作者ID"
// @Success      200 {string} string "author-form页面或error页面"
// @Failure      400 {string} string "ID格式错误"
// @Router       /author/showFormForUpdate [get]
func (h *AuthorHandler) ShowFormForUpdate(c *gin.Context) {
	id, err := parseID(c, "authorId")
	if err != nil {
		renderBadRequest(c, err)
		return
	}

	author, err := h.authors.FindByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorView(c, http.StatusOK, err)
		return
	}
	response.View(c, ViewAuthorForm, gin.H{"authors": author})
}

// Save 新增或更新作者
// @Summary      保存作者
// @Tags         作者
// @Accept       x-www-form-urlencoded
// @Param        id          formData int    false "作者ID(新增时为空)"
// @Param        authorName  formData string false "姓名"
// @Param        description formData string false "简介"
// @Success      302 "重定向到/author/list"
// @Router       /author/save [post]
func (h *AuthorHandler) Save(c *gin.Context) {
	var form dto.AuthorForm
	if err := c.ShouldBind(&form); err != nil {
		renderBindError(c, h.log, err)
		return
	}

	if err := h.authors.Save(c.Request.Context(), form.ToEntity()); err != nil {
		renderFailure(c, h.log, "保存作者失败", err)
		return
	}
	response.Redirect(c, "/author/list")
}

// Delete 删除作者
// @Summary      删除作者
// @Tags         作者
// @Param        authorId query int true "作者ID"
// @Success      302 "重定向到/author/list"
// @Router       /author/delete [get]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "authorId")
	if err != nil {
		renderBadRequest(c, err)
		return
	}

	if err := h.authors.DeleteByID(c.Request.Context(), id); err != nil {
		renderFailure(c, h.log, "删除作者失败", err)
		return
	}
	response.Redirect(c, "/author/list")
}

// AddBook 为作者关联图书
// bookId非0时关联已有图书,否则按bookName/isbn新建
// @Summary      为作者关联图书
// @Tags         作者
// @Accept       x-www-form-urlencoded
// @Param        authorId formData int    true  "作者ID"
// @Param        bookId   formData int    false "已有图书ID"
// @Param        bookName formData string false "新图书书名"
// @Param        isbn     formData string false "新图书ISBN"
// @Success      302 "重定向到/author/list"
// @Success      200 {string} string "作者或图书不存在时的error页面"
// @Router       /author/addBook [post]
func (h *AuthorHandler) AddBook(c *gin.Context) {
	var form dto.AddBookForm
	if err := c.ShouldBind(&form); err != nil {
		renderBindError(c, h.log, err)
		return
	}

	ctx := c.Request.Context()
	book := form.NewBook()
	if form.BookID != 0 {
		existing, err := h.books.FindByID(ctx, form.BookID)
		if err != nil {
			response.ErrorView(c, http.StatusOK, err)
			return
		}
		book = existing
	}

	result, err := h.authors.AddBook(ctx, &catalog.Author{ID: form.AuthorID}, book)
	if err != nil {
		h.log.Error("关联图书失败", zap.Error(err), zap.Uint("author_id", form.AuthorID))
		response.ErrorView(c, http.StatusOK, err)
		return
	}
	if result == catalog.AttachAuthorNotFound {
		response.ErrorView(c, http.StatusOK, catalog.ErrAuthorNotFound(form.AuthorID))
		return
	}

	h.log.Info("图书已关联到作者",
		zap.Uint("author_id", form.AuthorID),
		zap.Uint("book_id", book.ID),
	)
	response.Redirect(c, "/author/list")
}
