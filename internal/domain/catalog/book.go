package catalog

// Book 图书实体
// 设计说明:
// 1. AuthorName是自由文本的作者名,与关联的Author相互独立
//    它是刻意保留的冗余字段(列表展示与搜索使用),同步规则见SyncAuthorName
// 2. Author、Publisher为可选的多对一引用,表单提交时只携带ID
type Book struct {
	ID         uint
	Name       string
	ISBN       string
	AuthorName string
	Author     *Author
	Publisher  *Publisher
}

// NewBook 创建空图书(用于"新增"表单)
func NewBook() *Book {
	return &Book{}
}

// IsNew 是否尚未持久化
func (b *Book) IsNew() bool {
	return b.ID == 0
}

// AuthorID 关联作者ID(无关联时为0)
func (b *Book) AuthorID() uint {
	if b.Author == nil {
		return 0
	}
	return b.Author.ID
}

// PublisherID 关联出版社ID(无关联时为0)
func (b *Book) PublisherID() uint {
	if b.Publisher == nil {
		return 0
	}
	return b.Publisher.ID
}

// SyncAuthorName 冗余字段同步规则:
// AuthorName为空且关联作者有姓名时,用作者姓名补全;非空时保持不变
func (b *Book) SyncAuthorName() {
	if b.AuthorName == "" && b.Author != nil && b.Author.Name != "" {
		b.AuthorName = b.Author.Name
	}
}
