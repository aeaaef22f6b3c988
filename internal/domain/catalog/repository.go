package catalog

import (
	"context"
)

// AuthorRepository 作者仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(GORM / Redis缓存装饰器)
// 2. FindByID不存在时返回(nil, false, nil),由Service决定是否转换为错误
type AuthorRepository interface {
	// FindAll 查询全部作者(预加载图书),没有数据时返回空切片
	FindAll(ctx context.Context) ([]*Author, error)

	// FindByID 根据ID查找作者
	FindByID(ctx context.Context, id uint) (*Author, bool, error)

	// Save 新增或更新:ID为0时插入并回填ID,否则更新
	Save(ctx context.Context, author *Author) error

	// DeleteByID 删除作者,ID不存在时不报错
	DeleteByID(ctx context.Context, id uint) error
}

// BookRepository 图书仓储接口
type BookRepository interface {
	FindAll(ctx context.Context) ([]*Book, error)
	FindByID(ctx context.Context, id uint) (*Book, bool, error)
	Save(ctx context.Context, book *Book) error
	DeleteByID(ctx context.Context, id uint) error

	// FindByName 按书名、ISBN、作者名做子串匹配(不区分大小写)
	// keyword中的通配符按字面匹配;keyword为空时返回全部图书
	FindByName(ctx context.Context, keyword string) ([]*Book, error)
}

// PublisherRepository 出版社仓储接口
type PublisherRepository interface {
	FindAll(ctx context.Context) ([]*Publisher, error)
	FindByID(ctx context.Context, id uint) (*Publisher, bool, error)
	Save(ctx context.Context, publisher *Publisher) error
	DeleteByID(ctx context.Context, id uint) error
}

// TxManager 事务管理器接口
// fn内通过ctx执行的所有Repository操作处于同一事务中
// fn返回error时回滚,返回nil时提交
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
