package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/catalog"
)

// publisherRepository 出版社仓储实现(GORM)
type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository 创建出版社仓储
func NewPublisherRepository(db *gorm.DB) catalog.PublisherRepository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) FindAll(ctx context.Context) ([]*catalog.Publisher, error) {
	var models []PublisherModel
	if err := dbFromContext(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, dbError(err, "查询出版社列表失败")
	}

	publishers := make([]*catalog.Publisher, 0, len(models))
	for i := range models {
		publishers = append(publishers, toPublisherEntity(&models[i]))
	}
	return publishers, nil
}

func (r *publisherRepository) FindByID(ctx context.Context, id uint) (*catalog.Publisher, bool, error) {
	var model PublisherModel
	if err := dbFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, dbError(err, "查询出版社失败: id=%d", id)
	}
	return toPublisherEntity(&model), true, nil
}

func (r *publisherRepository) Save(ctx context.Context, p *catalog.Publisher) error {
	db := dbFromContext(ctx, r.db)
	model := fromPublisherEntity(p)

	if p.IsNew() {
		if err := db.Create(model).Error; err != nil {
			return dbError(err, "创建出版社失败")
		}
		p.ID = model.ID
		return nil
	}

	if err := saveOrUpdate(db, model, "publisher_name", "description"); err != nil {
		return dbError(err, "更新出版社失败: id=%d", p.ID)
	}
	return nil
}

// DeleteByID 删除出版社(软删除),引用它的图书加载时出版社为nil
func (r *publisherRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := dbFromContext(ctx, r.db).Delete(&PublisherModel{}, id).Error; err != nil {
		return dbError(err, "删除出版社失败: id=%d", id)
	}
	return nil
}
