package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用数据访问层，各表 DAO 内嵌使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

func (r Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindAllByWhere(ctx context.Context, where string, args ...any) ([]*T, error) {
	var items []*T
	err := r.Db.WithContext(ctx).Where(where, args...).Find(&items).Error
	return items, err
}

// IsExist 判断满足条件的记录是否存在
func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return count > 0, nil
}

// CountByWhere 满足条件的记录数
func (r Repo[T]) CountByWhere(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(where, args...).Count(&count).Error
	return count, err
}

// UpdateById 按主键更新，返回影响行数
func (r Repo[T]) UpdateById(ctx context.Context, id any, values map[string]any) (int64, error) {
	var model T
	result := r.Db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(values)
	return result.RowsAffected, result.Error
}

func (r Repo[T]) DeleteByWhere(ctx context.Context, where string, args ...any) (int64, error) {
	var model T
	result := r.Db.WithContext(ctx).Where(where, args...).Delete(&model)
	return result.RowsAffected, result.Error
}

// Transaction 事务
func (r Repo[T]) Transaction(ctx context.Context, fn func(*gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}
