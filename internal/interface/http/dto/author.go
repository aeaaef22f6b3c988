package dto

import "github.com/xiebiao/library/internal/domain/catalog"

// AuthorForm 作者表单
type AuthorForm struct {
	ID          uint   `form:"id"`
	Name        string `form:"authorName"`
	Description string `form:"description"`
}

// ToEntity 表单转领域实体(Books为空,保存作者不会修改其图书)
func (f *AuthorForm) ToEntity() *catalog.Author {
	author := catalog.NewAuthor()
	author.ID = f.ID
	author.Name = f.Name
	author.Description = f.Description
	return author
}

// AddBookForm 为作者关联图书
// BookID非0时关联已有图书,否则用BookName/ISBN新建一本
type AddBookForm struct {
	AuthorID uint   `form:"authorId"`
	BookID   uint   `form:"bookId"`
	BookName string `form:"bookName"`
	ISBN     string `form:"isbn"`
}

// NewBook 新建图书时使用的实体
func (f *AddBookForm) NewBook() *catalog.Book {
	return &catalog.Book{Name: f.BookName, ISBN: f.ISBN}
}
