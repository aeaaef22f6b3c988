package dto

import "github.com/xiebiao/library/internal/domain/catalog"

// BookForm 图书表单(application/x-www-form-urlencoded)
// 字段名与页面表单的name属性一致
// AuthorID/PublisherID为0表示不关联
type BookForm struct {
	ID          uint   `form:"id"`
	Name        string `form:"bookName"`
	ISBN        string `form:"isbn"`
	AuthorName  string `form:"booksAuthor"`
	AuthorID    uint   `form:"authorId"`
	PublisherID uint   `form:"publisherId"`
}

// ToEntity 表单转领域实体
// 关联只携带ID,作者名补全由领域服务完成
func (f *BookForm) ToEntity() *catalog.Book {
	book := &catalog.Book{
		ID:         f.ID,
		Name:       f.Name,
		ISBN:       f.ISBN,
		AuthorName: f.AuthorName,
	}
	if f.AuthorID != 0 {
		book.Author = &catalog.Author{ID: f.AuthorID}
	}
	if f.PublisherID != 0 {
		book.Publisher = &catalog.Publisher{ID: f.PublisherID}
	}
	return book
}
