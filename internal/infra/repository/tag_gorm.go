package repository

import (
	"context"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"gorm.io/gorm"
)

type TagGormRepository struct {
	*crudGorm[model.Tag, int64, repo.NoFilter]
}

var _ repo.TagRepository = (*TagGormRepository)(nil)

func NewTagGormRepository(db *gorm.DB) *TagGormRepository {
	return &TagGormRepository{newCRUDGorm[model.Tag, int64, repo.NoFilter](db, "id", "created_at ASC", "id ASC")}
}

func (r *TagGormRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, "name", name)
}
