package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/catalog"
)

// searchCondition 三个字段任一命中即可(整体加括号,与软删除条件AND组合)
const searchCondition = "(LOWER(book_name) LIKE LOWER(?) ESCAPE '" + likeEscape + "'" +
	" OR LOWER(isbn) LIKE LOWER(?) ESCAPE '" + likeEscape + "'" +
	" OR LOWER(books_author) LIKE LOWER(?) ESCAPE '" + likeEscape + "')"

// bookRepository 图书仓储实现(GORM)
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) catalog.BookRepository {
	return &bookRepository{db: db}
}

// withReferences 预加载作者与出版社(已软删除的关联加载为nil)
func withReferences(db *gorm.DB) *gorm.DB {
	return db.Preload("Author").Preload("Publisher")
}

func (r *bookRepository) FindAll(ctx context.Context) ([]*catalog.Book, error) {
	var models []BookModel
	if err := withReferences(dbFromContext(ctx, r.db)).Order("id").Find(&models).Error; err != nil {
		return nil, dbError(err, "查询图书列表失败")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*catalog.Book, bool, error) {
	var model BookModel
	err := withReferences(dbFromContext(ctx, r.db)).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, dbError(err, "查询图书失败: id=%d", id)
	}
	return toBookEntity(&model), true, nil
}

// FindByName 按书名、ISBN、作者名(自由文本)做不区分大小写的子串匹配
// 关键字为空时等价于FindAll
func (r *bookRepository) FindByName(ctx context.Context, keyword string) ([]*catalog.Book, error) {
	if keyword == "" {
		return r.FindAll(ctx)
	}

	pattern := containsPattern(keyword)
	var models []BookModel
	err := withReferences(dbFromContext(ctx, r.db)).
		Where(searchCondition, pattern, pattern, pattern).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, dbError(err, "搜索图书失败: keyword=%q", keyword)
	}
	return toBookEntities(models), nil
}

// Save 新增或更新图书
// 作者、出版社只保存外键,不会连带保存关联实体
func (r *bookRepository) Save(ctx context.Context, b *catalog.Book) error {
	db := dbFromContext(ctx, r.db)
	model := fromBookEntity(b)

	if b.IsNew() {
		if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
			return dbError(err, "创建图书失败")
		}
		b.ID = model.ID
		return nil
	}

	if err := saveOrUpdate(db, model, "book_name", "isbn", "books_author", "author_id", "publisher_id"); err != nil {
		return dbError(err, "更新图书失败: id=%d", b.ID)
	}
	return nil
}

// DeleteByID 删除图书(软删除),ID不存在时不报错
func (r *bookRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := dbFromContext(ctx, r.db).Delete(&BookModel{}, id).Error; err != nil {
		return dbError(err, "删除图书失败: id=%d", id)
	}
	return nil
}

func toBookEntities(models []BookModel) []*catalog.Book {
	books := make([]*catalog.Book, 0, len(models))
	for i := range models {
		books = append(books, toBookEntity(&models[i]))
	}
	return books
}
