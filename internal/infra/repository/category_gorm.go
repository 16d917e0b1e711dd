package repository

import (
	"context"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"gorm.io/gorm"
)

type CategoryGormRepository struct {
	*crudGorm[model.Category, int64, repo.NoFilter]
}

var _ repo.CategoryRepository = (*CategoryGormRepository)(nil)

// 手動の並び順が作成日時より優先
func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{
		newCRUDGorm[model.Category, int64, repo.NoFilter](db, "id", "order_sort ASC", "created_at ASC", "id ASC"),
	}
}

func (r *CategoryGormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "id", id)
}

func (r *CategoryGormRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return r.exists(ctx, "slug", slug)
}

func (r *CategoryGormRepository) UpdateOrderSort(ctx context.Context, id int64, orderSort int) error {
	res := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", id).
		Update("order_sort", orderSort)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
