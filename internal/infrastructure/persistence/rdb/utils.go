package rdb

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// likeEscape LIKE子句使用的转义字符(mysql/postgres/sqlite都支持ESCAPE '!')
const likeEscape = "!"

// containsPattern 构造子串匹配模式,keyword中的%、_按字面匹配
// 大小写折叠交给数据库的LOWER()在两侧同时完成,保证列和模式的折叠规则一致
func containsPattern(keyword string) string {
	r := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	)
	return "%" + r.Replace(keyword) + "%"
}

// dbError 仓储层的数据库错误统一使用ErrCodeDatabaseError
func dbError(err error, format string, args ...interface{}) error {
	return apperrors.Wrapf(err, apperrors.ErrCodeDatabaseError, format, args...)
}

// saveOrUpdate ID非0时的保存:先按ID更新指定列,没有命中任何行时按该ID插入
// 没有命中的情况包括:行不存在、行已软删除(插入冲突后覆盖并恢复)、MySQL中值未变化
func saveOrUpdate(db *gorm.DB, model interface{}, columns ...string) error {
	columns = append(columns, "updated_at")

	result := db.Model(model).Omit(clause.Associations).Select(columns).Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	return db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(append(columns, "deleted_at")),
	}).Create(model).Error
}
