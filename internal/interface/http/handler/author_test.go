package handler

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/pkg/response"
)

func setupAuthorHandler(t *testing.T) (*gin.Engine, *recordingRenderer, *mockAuthorService, *mockBookService) {
	r, rec := newTestEngine(t)
	authors := new(mockAuthorService)
	books := new(mockBookService)
	h := NewAuthorHandler(authors, books, testLogger(t))

	g := r.Group("/author")
	g.GET("/list", h.List)
	g.GET("/showFormForAdd", h.ShowFormForAdd)
	g.GET("/showFormForUpdate", h.ShowFormForUpdate)
	g.POST("/save", h.Save)
	g.GET("/delete", h.Delete)
	g.POST("/addBook", h.AddBook)
	return r, rec, authors, books
}

func TestAuthorHandler_List(t *testing.T) {
	r, rec, authors, _ := setupAuthorHandler(t)
	list := []*catalog.Author{{ID: 1, Name: "Asimov"}}
	authors.On("FindAll", mock.Anything).Return(list, nil)

	w := get(r, "/author/list")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ViewListAuthors, rec.last().Name)
	assert.Equal(t, list, rec.last().Model["authors"])
}

func TestAuthorHandler_List_Failure(t *testing.T) {
	r, rec, authors, _ := setupAuthorHandler(t)
	authors.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))

	w := get(r, "/author/list")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.ErrorViewName, rec.last().Name)
	assert.Equal(t, "Internal server error", rec.last().Model[response.ErrorMessageKey])
}

func TestAuthorHandler_ShowFormForAdd(t *testing.T) {
	r, rec, _, _ := setupAuthorHandler(t)

	w := get(r, "/author/showFormForAdd")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ViewAuthorForm, rec.last().Name)
	author, ok := rec.last().Model["authors"].(*catalog.Author)
	require.True(t, ok)
	assert.True(t, author.IsNew())
	assert.NotNil(t, author.Books)
}

func TestAuthorHandler_ShowFormForUpdate(t *testing.T) {
	t.Run("作者存在", func(t *testing.T) {
		r, rec, authors, _ := setupAuthorHandler(t)
		author := &catalog.Author{ID: 3, Name: "Le Guin"}
		authors.On("FindByID", mock.Anything, uint(3)).Return(author, nil)

		w := get(r, "/author/showFormForUpdate?authorId=3")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, ViewAuthorForm, rec.last().Name)
		assert.Same(t, author, rec.last().Model["authors"])
	})

	t.Run("作者不存在渲染错误页且状态码为200", func(t *testing.T) {
		r, rec, authors, _ := setupAuthorHandler(t)
		authors.On("FindByID", mock.Anything, uint(99)).Return(nil, catalog.ErrAuthorNotFound(99))

		w := get(r, "/author/showFormForUpdate?authorId=99")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, response.ErrorViewName, rec.last().Name)
		assert.Equal(t, "Did not find author id - 99", rec.last().Model[response.ErrorMessageKey])
	})

	t.Run("ID格式错误", func(t *testing.T) {
		r, rec, authors, _ := setupAuthorHandler(t)

		for _, target := range []string{"/author/showFormForUpdate", "/author/showFormForUpdate?authorId=abc", "/author/showFormForUpdate?authorId=-1"} {
			w := get(r, target)
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
			assert.Equal(t, response.ErrorViewName, rec.last().Name)
		}
		authors.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestAuthorHandler_Save(t *testing.T) {
	r, _, authors, _ := setupAuthorHandler(t)
	authors.On("Save", mock.Anything, mock.MatchedBy(func(a *catalog.Author) bool {
		return a.ID == 0 && a.Name == "Octavia Butler" && a.Description == "Kindred"
	})).Return(nil)

	w := postForm(r, "/author/save", url.Values{
		"id":          {""},
		"authorName":  {"Octavia Butler"},
		"description": {"Kindred"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/author/list", w.Header().Get("Location"))
	authors.AssertExpectations(t)
}

func TestAuthorHandler_Save_BindError(t *testing.T) {
	r, rec, authors, _ := setupAuthorHandler(t)

	w := postForm(r, "/author/save", url.Values{"id": {"not-a-number"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrorViewName, rec.last().Name)
	assert.Equal(t, "Malformed form data", rec.last().Model[response.ErrorMessageKey])
	authors.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthorHandler_Delete(t *testing.T) {
	r, _, authors, _ := setupAuthorHandler(t)
	authors.On("DeleteByID", mock.Anything, uint(4)).Return(nil)

	w := get(r, "/author/delete?authorId=4")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/author/list", w.Header().Get("Location"))
	authors.AssertExpectations(t)
}

func TestAuthorHandler_Delete_Failure(t *testing.T) {
	r, rec, authors, _ := setupAuthorHandler(t)
	authors.On("DeleteByID", mock.Anything, uint(4)).Return(errors.New("deadlock"))

	w := get(r, "/author/delete?authorId=4")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.ErrorViewName, rec.last().Name)
}

func TestAuthorHandler_AddBook(t *testing.T) {
	t.Run("新建图书并关联", func(t *testing.T) {
		r, _, authors, books := setupAuthorHandler(t)
		authors.On("AddBook", mock.Anything,
			mock.MatchedBy(func(a *catalog.Author) bool { return a.ID == 2 }),
			mock.MatchedBy(func(b *catalog.Book) bool { return b.IsNew() && b.Name == "Foundation" && b.ISBN == "0553293354" }),
		).Return(catalog.AttachAttached, nil)

		w := postForm(r, "/author/addBook", url.Values{
			"authorId": {"2"},
			"bookName": {"Foundation"},
			"isbn":     {"0553293354"},
		})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/author/list", w.Header().Get("Location"))
		books.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("关联已有图书", func(t *testing.T) {
		r, _, authors, books := setupAuthorHandler(t)
		existing := &catalog.Book{ID: 7, Name: "I, Robot"}
		books.On("FindByID", mock.Anything, uint(7)).Return(existing, nil)
		authors.On("AddBook", mock.Anything, mock.Anything, existing).Return(catalog.AttachAttached, nil)

		w := postForm(r, "/author/addBook", url.Values{"authorId": {"2"}, "bookId": {"7"}})

		assert.Equal(t, http.StatusFound, w.Code)
		authors.AssertExpectations(t)
	})

	t.Run("作者不存在", func(t *testing.T) {
		r, rec, authors, _ := setupAuthorHandler(t)
		authors.On("AddBook", mock.Anything, mock.Anything, mock.Anything).Return(catalog.AttachAuthorNotFound, nil)

		w := postForm(r, "/author/addBook", url.Values{"authorId": {"42"}, "bookName": {"Ghost"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, response.ErrorViewName, rec.last().Name)
		assert.Equal(t, "Did not find author id - 42", rec.last().Model[response.ErrorMessageKey])
	})

	t.Run("图书不存在", func(t *testing.T) {
		r, rec, authors, books := setupAuthorHandler(t)
		books.On("FindByID", mock.Anything, uint(8)).Return(nil, catalog.ErrBookNotFound(8))

		w := postForm(r, "/author/addBook", url.Values{"authorId": {"2"}, "bookId": {"8"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Book not found with ID 8", rec.last().Model[response.ErrorMessageKey])
		authors.AssertNotCalled(t, "AddBook", mock.Anything, mock.Anything, mock.Anything)
	})
}
