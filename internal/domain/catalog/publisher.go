package catalog

// Publisher 出版社实体
// 被零到多本图书引用(单向,出版社侧不维护图书集合)
type Publisher struct {
	ID          uint
	Name        string
	Description string
}

// NewPublisher 创建空出版社(用于"新增"表单)
func NewPublisher() *Publisher {
	return &Publisher{}
}

// IsNew 是否尚未持久化
func (p *Publisher) IsNew() bool {
	return p.ID == 0
}
