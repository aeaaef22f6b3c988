package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/library/internal/interface/http/handler"
)

// newTestApp 使用sqlite组装完整的页面应用
func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode, Swagger: true},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "library.db"),
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	log := zaptest.NewLogger(t)

	db, err := rdb.NewDB(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close(db) })

	authorRepo := rdb.NewAuthorRepository(db)
	bookRepo := rdb.NewBookRepository(db)
	publisherRepo := rdb.NewPublisherRepository(db)

	authors := catalog.NewAuthorService(authorRepo, bookRepo, rdb.NewTxManager(db))
	books := catalog.NewBookService(bookRepo, authorRepo)
	publishers := catalog.NewPublisherService(publisherRepo)

	return New(cfg, log, Handlers{
		Author:    handler.NewAuthorHandler(authors, books, log),
		Book:      handler.NewBookHandler(books, authors, publishers, log),
		Publisher: handler.NewPublisherHandler(publishers, log),
	})
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func post(t *testing.T, r http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func requireRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())
	assert.Equal(t, location, w.Header().Get("Location"))
}

func TestCatalogPages(t *testing.T) {
	r := newTestApp(t)

	requireRedirect(t, post(t, r, "/publisher/save", url.Values{"publisherName": {"Chilton Books"}}), "/publisher/list")
	requireRedirect(t, post(t, r, "/author/save", url.Values{"authorName": {"Frank Herbert"}, "description": {"Dune saga"}}), "/author/list")

	w := get(t, r, "/author/list")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Frank Herbert")

	// 作者名留空,保存时按关联作者补全
	requireRedirect(t, post(t, r, "/books/save", url.Values{
		"bookName":    {"Dune"},
		"isbn":        {"978-0441013593"},
		"booksAuthor": {""},
		"authorId":    {"1"},
		"publisherId": {"1"},
	}), "/books/list")

	w = get(t, r, "/books/list")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Dune")
	assert.Contains(t, body, "Frank Herbert")
	assert.Contains(t, body, "Chilton Books")

	t.Run("搜索不区分大小写", func(t *testing.T) {
		w := get(t, r, "/books/search?keyword=DUNE")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "978-0441013593")

		w = get(t, r, "/books/search?keyword=herbert")
		assert.Contains(t, w.Body.String(), "978-0441013593")

		w = get(t, r, "/books/search?keyword=asimov")
		assert.Contains(t, w.Body.String(), "No books")
	})

	t.Run("编辑表单", func(t *testing.T) {
		w := get(t, r, "/books/showFormForUpdate?bookId=1")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<option value="1" selected>Frank Herbert</option>`)

		w = get(t, r, "/books/showFormForUpdate?bookId=999")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Book not found with ID 999")

		w = get(t, r, "/author/showFormForUpdate?authorId=999")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Did not find author id - 999")

		w = get(t, r, "/publisher/showFormForUpdate?publisherId=abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("为作者关联新图书", func(t *testing.T) {
		requireRedirect(t, post(t, r, "/author/addBook", url.Values{
			"authorId": {"1"},
			"bookName": {"Children of Dune"},
		}), "/author/list")

		w := get(t, r, "/author/list")
		assert.Contains(t, w.Body.String(), "Children of Dune")

		w = post(t, r, "/author/addBook", url.Values{"authorId": {"77"}, "bookName": {"Ghost"}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Did not find author id - 77")
	})

	t.Run("删除", func(t *testing.T) {
		requireRedirect(t, get(t, r, "/books/delete?bookId=1"), "/books/list")
		requireRedirect(t, get(t, r, "/books/delete?bookId=12345"), "/books/list")

		w := get(t, r, "/books/search?keyword=978-0441013593")
		assert.Contains(t, w.Body.String(), "No books")
	})
}

func TestInfrastructureRoutes(t *testing.T) {
	r := newTestApp(t)

	requireRedirect(t, get(t, r, "/"), "/books/list")

	w := get(t, r, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":0,"message":"success","data":{"status":"ok"}}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	get(t, r, "/books/list")
	w = get(t, r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")

	w = get(t, r, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/books/search")
}
