package repository

import (
	"context"

	"catalog/internal/pagination"
	repo "catalog/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// crudGorm is the gorm implementation of repo.CRUD shared by every entity.
type crudGorm[T any, K comparable, F any] struct {
	db       *gorm.DB
	pk       string
	orders   []string
	preloads []string
	filter   func(q *gorm.DB, f F) *gorm.DB
}

func newCRUDGorm[T any, K comparable, F any](db *gorm.DB, pk string, orders ...string) *crudGorm[T, K, F] {
	return &crudGorm[T, K, F]{db: db, pk: pk, orders: orders}
}

func (r *crudGorm[T, K, F]) query(ctx context.Context, f F) *gorm.DB {
	q := r.db.WithContext(ctx).Model(new(T))
	if r.filter != nil {
		q = r.filter(q, f)
	}
	return q
}

func (r *crudGorm[T, K, F]) Find(ctx context.Context, f F, w pagination.Window) ([]T, error) {
	q := r.query(ctx, f)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	for _, o := range r.orders {
		q = q.Order(o)
	}

	var out []T
	if err := q.Offset(w.Offset).Limit(w.Limit).Find(&out).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

func (r *crudGorm[T, K, F]) Count(ctx context.Context, f F) (int64, error) {
	var total int64
	if err := r.query(ctx, f).Count(&total).Error; err != nil {
		return 0, translateError(err)
	}
	return total, nil
}

func (r *crudGorm[T, K, F]) FindByID(ctx context.Context, id K) (T, error) {
	var out T
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	if err := q.Where(r.pk+" = ?", id).First(&out).Error; err != nil {
		var zero T
		return zero, translateError(err)
	}
	return out, nil
}

// 関連は保存しない。membershipは専用メソッドで置き換える
func (r *crudGorm[T, K, F]) Create(ctx context.Context, entity *T) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error)
}

func (r *crudGorm[T, K, F]) Save(ctx context.Context, entity *T) error {
	res := r.db.WithContext(ctx).
		Model(entity).
		Select("*").
		Omit(clause.Associations, "created_at").
		Updates(entity)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *crudGorm[T, K, F]) Delete(ctx context.Context, id K) error {
	res := r.db.WithContext(ctx).Where(r.pk+" = ?", id).Delete(new(T))
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *crudGorm[T, K, F]) exists(ctx context.Context, column string, value any) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where(column+" = ?", value).Limit(1).Count(&n).Error; err != nil {
		return false, translateError(err)
	}
	return n > 0, nil
}
