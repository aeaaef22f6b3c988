package redis

import (
	"context"

	"github.com/xiebiao/library/internal/domain/catalog"
)

// 缓存实体名(同时用作键的一部分和指标标签)
const (
	entityAuthor    = "author"
	entityBook      = "book"
	entityPublisher = "publisher"
)

// cachedAuthorRepository 作者仓储的缓存装饰器
// 只缓存FindByID的命中结果,列表查询直接走下层仓储
type cachedAuthorRepository struct {
	next  catalog.AuthorRepository
	cache *Cache
}

// NewCachedAuthorRepository 用缓存包装作者仓储
func NewCachedAuthorRepository(next catalog.AuthorRepository, cache *Cache) catalog.AuthorRepository {
	return &cachedAuthorRepository{next: next, cache: cache}
}

func (r *cachedAuthorRepository) FindAll(ctx context.Context) ([]*catalog.Author, error) {
	return r.next.FindAll(ctx)
}

func (r *cachedAuthorRepository) FindByID(ctx context.Context, id uint) (*catalog.Author, bool, error) {
	var snapshot authorSnapshot
	gen, hit := r.cache.get(ctx, entityAuthor, id, &snapshot)
	if hit {
		return snapshot.toEntity(), true, nil
	}

	author, found, err := r.next.FindByID(ctx, id)
	if err != nil || !found {
		return author, found, err
	}
	r.cache.set(ctx, gen, entityAuthor, id, newAuthorSnapshot(author))
	return author, true, nil
}

func (r *cachedAuthorRepository) Save(ctx context.Context, author *catalog.Author) error {
	if err := r.next.Save(ctx, author); err != nil {
		return err
	}
	r.cache.Invalidate(ctx)
	return nil
}

func (r *cachedAuthorRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.next.DeleteByID(ctx, id); err != nil {
		return err
	}
	r.cache.Invalidate(ctx)
	return nil
}

// cachedBookRepository 图书仓储的缓存装饰器(搜索不缓存)
type cachedBookRepository struct {
	next  catalog.BookRepository
	cache *Cache
}

// NewCachedBookRepository 用缓存包装图书仓储
func NewCachedBookRepository(next catalog.BookRepository, cache *Cache) catalog.BookRepository {
	return &cachedBookRepository{next: next, cache: cache}
}

func (r *cachedBookRepository) FindAll(ctx context.Context) ([]*catalog.Book, error) {
	return r.next.FindAll(ctx)
}

func (r *cachedBookRepository) FindByName(ctx context.Context, keyword string) ([]*catalog.Book, error) {
	return r.next.FindByName(ctx, keyword)
}

func (r *cachedBookRepository) FindByID(ctx context.Context, id uint) (*catalog.Book, bool, error) {
	var snapshot bookSnapshot
	gen, hit := r.cache.get(ctx, entityBook, id, &snapshot)
	if hit {
		return snapshot.toEntity(), true, nil
	}

	book, found, err := r.next.FindByID(ctx, id)
	if err != nil || !found {
		return book, found, err
	}
	r.cache.set(ctx, gen, entityBook, id, newBookSnapshot(book))
	return book, true, nil
}

func (r *cachedBookRepository) Save(ctx context.Context, book *catalog.Book) error {
	if err := r.next.Save(ctx, book); err != nil {
		return err
	}
	r.cache.Invalidate(ctx)
	return nil
}

func (r *cachedBookRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.next.DeleteByID(ctx, id); err != nil {
		return err
	}
	r.cache.Invalidate(ctx)
	return nil
}

// cachedPublisherRepository 出版社仓储的缓存装饰器
type cachedPublisherRepository struct {
	next  catalog.PublisherRepository
	cache *Cache
}

// NewCachedPublisherRepository 用缓存包装出版社仓储
func NewCachedPublisherRepository(next catalog.PublisherRepository, cache *Cache) catalog.PublisherRepository {
	return &cachedPublisherRepository{next: next, cache: cache}
}

func (r *cachedPublisherRepository) FindAll(ctx context.Context) ([]*catalog.Publisher, error) {
	return r.next.FindAll(ctx)
}

func (r *cachedPublisherRepository) FindByID(ctx context.Context, id uint) (*catalog.Publisher, bool, error) {
	var snapshot publisherSnapshot
	gen, hit := r.cache.get(ctx, entityPublisher, id, &snapshot)
	if hit {
		return snapshot.toEntity(), true, nil
	}

	publisher, found, err := r.next.FindByID(ctx, id)
	if err != nil || !found {
		return publisher, found, err
	}
	r.cache.set(ctx, gen, entityPublisher, id, newPublisherSnapshot(publisher))
	return publisher, true, nil
}

func (r *cachedPublisherRepository) Save(ctx context.Context, publisher *catalog.Publisher) error {
	if err := r.next.Save(ctx, publisher); err != nil {
		return err
	}
	r.cache.Invalidate(ctx)
	return nil
}

func (r *cachedPublisherRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.next.DeleteByID(ctx, id); err != nil {
		return err
	}
	r.cache.Invalidate(ctx)
	return nil
}

// cachedTxManager 事务结束后再换代一次
// 事务内的写操作在提交前就已换代,期间并发读取可能把未提交前的旧数据写入新代数
type cachedTxManager struct {
	next  catalog.TxManager
	cache *Cache
}

// NewCachedTxManager 用缓存包装事务管理器
func NewCachedTxManager(next catalog.TxManager, cache *Cache) catalog.TxManager {
	return &cachedTxManager{next: next, cache: cache}
}

func (m *cachedTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := m.next.Transaction(ctx, fn)
	m.cache.Invalidate(ctx)
	return err
}
