package catalog

// Author 作者实体
// 设计说明:
// 1. Books是一对多关联,构造时即为非nil的空切片(不存在"未初始化"状态)
// 2. 关联只能通过AttachBook建立,保证Author.Books与Book.Author两侧同时更新
type Author struct {
	ID          uint
	Name        string
	Description string
	Books       []*Book
}

// NewAuthor 创建空作者(用于"新增"表单)
func NewAuthor() *Author {
	return &Author{Books: []*Book{}}
}

// IsNew 是否尚未持久化(没有ID)
func (a *Author) IsNew() bool {
	return a.ID == 0
}

// AttachBook 建立作者与图书的双向关联
// 业务规则:
// - book.Author指向当前作者实例
// - book.AuthorName为空时用作者姓名补全(冗余字段同步规则)
// - 同一本图书(同一实例或同一ID)不会重复加入Books,已有的条目被替换
func (a *Author) AttachBook(book *Book) {
	if a.Books == nil {
		a.Books = []*Book{}
	}

	book.Author = a
	if book.AuthorName == "" {
		book.AuthorName = a.Name
	}

	if i := a.bookIndex(book); i >= 0 {
		a.Books[i] = book
		return
	}
	a.Books = append(a.Books, book)
}

// bookIndex 图书在Books中的位置,不存在时为-1
func (a *Author) bookIndex(book *Book) int {
	for i, b := range a.Books {
		if b == book || (!book.IsNew() && b.ID == book.ID) {
			return i
		}
	}
	return -1
}
