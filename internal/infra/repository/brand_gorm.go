package repository

import (
	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"gorm.io/gorm"
)

type BrandGormRepository struct {
	*crudGorm[model.Brand, int64, repo.NoFilter]
}

var _ repo.BrandRepository = (*BrandGormRepository)(nil)

func NewBrandGormRepository(db *gorm.DB) *BrandGormRepository {
	return &BrandGormRepository{newCRUDGorm[model.Brand, int64, repo.NoFilter](db, "id", "created_at ASC", "id ASC")}
}
