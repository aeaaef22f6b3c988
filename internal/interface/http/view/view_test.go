package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/catalog"
)

func render(t *testing.T, name string, data map[string]interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, MustLoad().ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestLoad_DefinesAllPages(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	for _, name := range []string{
		"list-authors", "author-form",
		"list-books", "book-form",
		"list-publishers", "publisher-form",
		"error",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestBookForm_SelectsCurrentAssociations(t *testing.T) {
	lem := &catalog.Author{ID: 2, Name: "Stanisław Lem"}
	ace := &catalog.Publisher{ID: 5, Name: "Ace"}
	book := &catalog.Book{ID: 9, Name: "Solaris", Author: lem, Publisher: ace}

	html := render(t, "book-form", map[string]interface{}{
		"books":      book,
		"authors":    []*catalog.Author{{ID: 1, Name: "Asimov"}, lem},
		"publishers": []*catalog.Publisher{ace},
	})

	assert.Contains(t, html, `value="Solaris"`)
	assert.Contains(t, html, `<option value="2" selected>`)
	assert.Contains(t, html, `<option value="5" selected>`)
	assert.NotContains(t, html, `<option value="1" selected>`)
}

func TestBookForm_NewBook(t *testing.T) {
	html := render(t, "book-form", map[string]interface{}{
		"books":      catalog.NewBook(),
		"authors":    []*catalog.Author{},
		"publishers": []*catalog.Publisher{},
	})

	assert.Contains(t, html, `name="id" value=""`)
	assert.NotContains(t, html, "selected")
}

func TestListBooks_WithoutPublisher(t *testing.T) {
	html := render(t, "list-books", map[string]interface{}{
		"books":   []*catalog.Book{{ID: 1, Name: "Dune", ISBN: "978-0441013593", AuthorName: "Frank Herbert"}},
		"keyword": "dune",
	})

	assert.Contains(t, html, "Frank Herbert")
	assert.Contains(t, html, `value="dune"`)
	assert.Contains(t, html, "/books/showFormForUpdate?bookId=1")
}

func TestListAuthors_Empty(t *testing.T) {
	html := render(t, "list-authors", map[string]interface{}{"authors": []*catalog.Author{}})
	assert.Contains(t, html, "No authors")
}

func TestError_EscapesMessage(t *testing.T) {
	html := render(t, "error", map[string]interface{}{"errorMessage": "<script>x</script>"})
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
