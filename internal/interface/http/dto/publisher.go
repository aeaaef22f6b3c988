package dto

import "github.com/xiebiao/library/internal/domain/catalog"

// PublisherForm 出版社表单
type PublisherForm struct {
	ID          uint   `form:"id"`
	Name        string `form:"publisherName"`
	Description string `form:"description"`
}

func (f *PublisherForm) ToEntity() *catalog.Publisher {
	return &catalog.Publisher{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
	}
}
