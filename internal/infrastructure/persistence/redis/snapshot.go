package redis

import "github.com/xiebiao/library/internal/domain/catalog"

// 缓存快照
// 实体之间有循环引用(Author.Books ↔ Book.Author),不能直接JSON序列化,
// 快照只保存单向的数据,读取时再重建反向引用

type authorSnapshot struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Books       []bookSnapshot `json:"books"`
}

type authorRef struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type bookSnapshot struct {
	ID         uint               `json:"id"`
	Name       string             `json:"name"`
	ISBN       string             `json:"isbn"`
	AuthorName string             `json:"author_name"`
	Author     *authorRef         `json:"author,omitempty"`
	Publisher  *publisherSnapshot `json:"publisher,omitempty"`
}

type publisherSnapshot struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func newAuthorSnapshot(a *catalog.Author) *authorSnapshot {
	s := &authorSnapshot{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Books:       make([]bookSnapshot, 0, len(a.Books)),
	}
	for _, b := range a.Books {
		bs := newBookSnapshot(b)
		bs.Author = nil // 反向引用读取时重建
		s.Books = append(s.Books, *bs)
	}
	return s
}

func (s *authorSnapshot) toEntity() *catalog.Author {
	author := &catalog.Author{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Books:       make([]*catalog.Book, 0, len(s.Books)),
	}
	for i := range s.Books {
		book := s.Books[i].toEntity()
		book.Author = author
		author.Books = append(author.Books, book)
	}
	return author
}

func newBookSnapshot(b *catalog.Book) *bookSnapshot {
	s := &bookSnapshot{
		ID:         b.ID,
		Name:       b.Name,
		ISBN:       b.ISBN,
		AuthorName: b.AuthorName,
	}
	if b.Author != nil {
		s.Author = &authorRef{ID: b.Author.ID, Name: b.Author.Name, Description: b.Author.Description}
	}
	if b.Publisher != nil {
		s.Publisher = newPublisherSnapshot(b.Publisher)
	}
	return s
}

func (s *bookSnapshot) toEntity() *catalog.Book {
	book := &catalog.Book{
		ID:         s.ID,
		Name:       s.Name,
		ISBN:       s.ISBN,
		AuthorName: s.AuthorName,
	}
	if s.Author != nil {
		book.Author = &catalog.Author{
			ID:          s.Author.ID,
			Name:        s.Author.Name,
			Description: s.Author.Description,
			Books:       []*catalog.Book{},
		}
	}
	if s.Publisher != nil {
		book.Publisher = s.Publisher.toEntity()
	}
	return book
}

func newPublisherSnapshot(p *catalog.Publisher) *publisherSnapshot {
	return &publisherSnapshot{ID: p.ID, Name: p.Name, Description: p.Description}
}

func (s *publisherSnapshot) toEntity() *catalog.Publisher {
	return &catalog.Publisher{ID: s.ID, Name: s.Name, Description: s.Description}
}
