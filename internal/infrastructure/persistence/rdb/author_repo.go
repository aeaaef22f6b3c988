package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/catalog"
)

// authorRepository 作者仓储实现(GORM)
// 设计说明:
// 1. 实现domain/catalog/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 所有操作通过dbFromContext参与调用方的事务
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) catalog.AuthorRepository {
	return &authorRepository{db: db}
}

// preloadBooks 作者页面需要展示图书及其出版社
func preloadBooks(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Books", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Books.Publisher")
}

func (r *authorRepository) FindAll(ctx context.Context) ([]*catalog.Author, error) {
	var models []AuthorModel
	if err := preloadBooks(dbFromContext(ctx, r.db)).Order("id").Find(&models).Error; err != nil {
		return nil, dbError(err, "查询作者列表失败")
	}

	authors := make([]*catalog.Author, 0, len(models))
	for i := range models {
		authors = append(authors, toAuthorEntity(&models[i]))
	}
	return authors, nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*catalog.Author, bool, error) {
	var model AuthorModel
	err := preloadBooks(dbFromContext(ctx, r.db)).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, dbError(err, "查询作者失败: id=%d", id)
	}
	return toAuthorEntity(&model), true, nil
}

// Save 新增或更新作者
// 只保存作者自身字段,图书关联由图书的author_id维护
func (r *authorRepository) Save(ctx context.Context, a *catalog.Author) error {
	db := dbFromContext(ctx, r.db)
	model := fromAuthorEntity(a)

	if a.IsNew() {
		if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
			return dbError(err, "创建作者失败")
		}
		a.ID = model.ID // 回填自增ID
		return nil
	}

	if err := saveOrUpdate(db, model, "author_name", "description"); err != nil {
		return dbError(err, "更新作者失败: id=%d", a.ID)
	}
	return nil
}

// DeleteByID 删除作者(软删除)
// 不级联:引用该作者的图书保留author_id,加载时作者为nil
func (r *authorRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := dbFromContext(ctx, r.db).Delete(&AuthorModel{}, id).Error; err != nil {
		return dbError(err, "删除作者失败: id=%d", id)
	}
	return nil
}
