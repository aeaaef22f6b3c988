package rdb

import (
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/catalog"
)

// AuthorModel GORM作者模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/catalog中的实体不依赖GORM,Repository负责两者之间的转换
// 3. 时间戳只存在于数据模型中
type AuthorModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"column:author_name;size:255;not null;default:'';comment:作者姓名"`
	Description string         `gorm:"size:1000;not null;default:'';comment:简介"`
	Books       []BookModel    `gorm:"foreignKey:AuthorID"` // 一对多
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel GORM图书模型
// 设计说明:
// 1. books_author是自由文本的作者名(冗余字段),author_id是可选外键,两者相互独立
// 2. 外键可为空(NULL),没有关联作者/出版社的图书合法
// 3. book_name建索引用于搜索
type BookModel struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"column:book_name;index;size:255;not null;default:'';comment:书名"`
	ISBN        string          `gorm:"column:isbn;index;size:32;not null;default:'';comment:ISBN"`
	AuthorName  string          `gorm:"column:books_author;size:255;not null;default:'';comment:作者名(自由文本)"`
	AuthorID    *uint           `gorm:"index;comment:作者ID"`
	Author      *AuthorModel    `gorm:"foreignKey:AuthorID"`
	PublisherID *uint           `gorm:"index;comment:出版社ID"`
	Publisher   *PublisherModel `gorm:"foreignKey:PublisherID"`
	CreatedAt   time.Time       `gorm:"comment:创建时间"`
	UpdatedAt   time.Time       `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt  `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// PublisherModel GORM出版社模型
type PublisherModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"column:publisher_name;size:255;not null;default:'';comment:出版社名称"`
	Description string         `gorm:"size:1000;not null;default:'';comment:简介"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (PublisherModel) TableName() string {
	return "publishers"
}

// =========================================
// 实体 ↔ 模型 转换
// =========================================

// toAuthorEntity 模型 → 实体
// 预加载的Books会反向指向返回的作者实例
func toAuthorEntity(m *AuthorModel) *catalog.Author {
	author := &catalog.Author{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Books:       make([]*catalog.Book, 0, len(m.Books)),
	}
	for i := range m.Books {
		book := toBookEntity(&m.Books[i])
		book.Author = author
		author.Books = append(author.Books, book)
	}
	return author
}

// toBookEntity 模型 → 实体
// 图书视图中的作者不加载其图书集合(Books为空切片)
func toBookEntity(m *BookModel) *catalog.Book {
	book := &catalog.Book{
		ID:         m.ID,
		Name:       m.Name,
		ISBN:       m.ISBN,
		AuthorName: m.AuthorName,
	}
	if m.Author != nil {
		book.Author = &catalog.Author{
			ID:          m.Author.ID,
			Name:        m.Author.Name,
			Description: m.Author.Description,
			Books:       []*catalog.Book{},
		}
	}
	if m.Publisher != nil {
		book.Publisher = toPublisherEntity(m.Publisher)
	}
	return book
}

func toPublisherEntity(m *PublisherModel) *catalog.Publisher {
	return &catalog.Publisher{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
}

// fromAuthorEntity 实体 → 模型(不含关联集合,图书通过外键单独保存)
func fromAuthorEntity(a *catalog.Author) *AuthorModel {
	return &AuthorModel{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
	}
}

func fromBookEntity(b *catalog.Book) *BookModel {
	return &BookModel{
		ID:          b.ID,
		Name:        b.Name,
		ISBN:        b.ISBN,
		AuthorName:  b.AuthorName,
		AuthorID:    optionalID(b.AuthorID()),
		PublisherID: optionalID(b.PublisherID()),
	}
}

func fromPublisherEntity(p *catalog.Publisher) *PublisherModel {
	return &PublisherModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
}

// optionalID 0 → NULL
func optionalID(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
