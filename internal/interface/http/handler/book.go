package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// BookHandler 图书页面处理器
type BookHandler struct {
	books      catalog.BookService
	authors    catalog.AuthorService
	publishers catalog.PublisherService
	log        *zap.Logger
}

// NewBookHandler 创建图书处理器
// authors、publishers只用于表单中的下拉选项
func NewBookHandler(books catalog.BookService, authors catalog.AuthorService, publishers catalog.PublisherService, log *zap.Logger) *BookHandler {
	return &BookHandler{
		books:      books,
		authors:    authors,
		publishers: publishers,
		log:        log.Named("book"),
	}
}

// List 图书列表
// @Summary      图书列表
// @Tags         图书
// @Produce      html
// @Success      200 {string} string "list-books页面"
// @Router       /books/list [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.books.FindAll(c.Request.Context())
	if err != nil {
		renderFailure(c, h.log, "查询图书列表失败", err)
		return
	}
	response.View(c, ViewListBooks, gin.H{"books": books})
}

// ShowFormForAdd 新增图书表单
// @Summary      新增图书表单
// @Tags         图书
// @Produce      html
// @Success      200 {string} string "book-form页面"
// @Router       /books/showFormForAdd [get]
func (h *BookHandler) ShowFormForAdd(c *gin.Context) {
	h.renderForm(c, catalog.NewBook())
}

// ShowFormForUpdate 编辑图书表单
// @Summary      编辑图书表单
// @Tags         图书
// @Produce      html
// @Param        bookId query int true "图书ID"
// @Success      200 {string} string "book-form页面或error页面"
// @Failure      400 {string} string "ID格式错误"
// @Router       /books/showFormForUpdate [get]
func (h *BookHandler) ShowFormForUpdate(c *gin.Context) {
	id, err := parseID(c, "bookId")
	if err != nil {
		renderBadRequest(c, err)
		return
	}

	book, err := h.books.FindByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorView(c, http.StatusOK, err)
		return
	}
	h.renderForm(c, book)
}

// Save 新增或更新图书
// @Summary      保存图书
// @Tags         图书
// @Accept       x-www-form-urlencoded
// @Param        id          formData int    false "图书ID(新增时为空)"
// @Param        bookName    formData string false "书名"
// @Param        isbn        formData string false "ISBN"
// @Param        booksAuthor formData string false "作者名"
// @Param        authorId    formData int    false "关联作者ID"
// @Param        publisherId formData int    false "关联出版社ID"
// @Success      302 "重定向到/books/list"
// @Router       /books/save [post]
func (h *BookHandler) Save(c *gin.Context) {
	var form dto.BookForm
	if err := c.ShouldBind(&form); err != nil {
		renderBindError(c, h.log, err)
		return
	}

	if err := h.books.Save(c.Request.Context(), form.ToEntity()); err != nil {
		renderFailure(c, h.log, "保存图书失败", err)
		return
	}
	response.Redirect(c, "/books/list")
}

// Delete 删除图书
// @Summary      删除图书
// @Tags         图书
// @Param        bookId query int true "图书ID"
// @Success      302 "重定向到/books/list"
// @Router       /books/delete [get]
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "bookId")
	if err != nil {
		renderBadRequest(c, err)
		return
	}

	if err := h.books.DeleteByID(c.Request.Context(), id); err != nil {
		renderFailure(c, h.log, "删除图书失败", err)
		return
	}
	response.Redirect(c, "/books/list")
}

// Search 按关键字搜索图书
// 匹配书名、ISBN、作者名(子串,不区分大小写),关键字为空时返回全部
// @Summary      搜索图书
// @Tags         图书
// @Produce      html
// @Param        keyword query string false "关键字"
// @Success      200 {string} string "list-books页面"
// @Router       /books/search [get]
func (h *BookHandler) Search(c *gin.Context) {
	keyword := c.Query("keyword")

	books, err := h.books.FindBookByName(c.Request.Context(), keyword)
	if err != nil {
		renderFailure(c, h.log, "搜索图书失败", err)
		return
	}
	response.View(c, ViewListBooks, gin.H{
		"books":   books,
		"keyword": keyword,
	})
}

// renderForm 渲染图书表单,附带作者和出版社下拉选项
func (h *BookHandler) renderForm(c *gin.Context, book *catalog.Book) {
	ctx := c.Request.Context()

	authors, err := h.authors.FindAll(ctx)
	if err != nil {
		renderFailure(c, h.log, "查询作者列表失败", err)
		return
	}
	publishers, err := h.publishers.FindAll(ctx)
	if err != nil {
		renderFailure(c, h.log, "查询出版社列表失败", err)
		return
	}

	response.View(c, ViewBookForm, gin.H{
		"books":      book,
		"authors":    authors,
		"publishers": publishers,
	})
}
