package repository

import (
	"context"
	"strings"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	*crudGorm[model.Product, model.ProductUUID, repo.ProductFilter]
}

var _ repo.ProductRepository = (*ProductGormRepository)(nil)

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	base := newCRUDGorm[model.Product, model.ProductUUID, repo.ProductFilter](db, "uuid", "products.created_at ASC", "products.uuid ASC")
	base.preloads = []string{"Brand", "Categories", "Tags"}
	r := &ProductGormRepository{base}
	base.filter = r.applyFilter
	return r
}

// 各条件はAND、同じ条件内のidはOR
func (r *ProductGormRepository) applyFilter(q *gorm.DB, f repo.ProductFilter) *gorm.DB {
	// nameの部分一致（大文字小文字は無視）
	if s := strings.TrimSpace(f.Query); s != "" {
		q = q.Where("products.name ILIKE ?", "%"+s+"%")
	}
	if f.Status != nil {
		q = q.Where("products.status = ?", *f.Status)
	}
	if len(f.BrandIDs) > 0 {
		q = q.Where("products.brand_id IN ?", f.BrandIDs)
	}

	// 多対多はサブクエリで絞る（JOINで行が増えないように）
	if len(f.CategoryIDs) > 0 {
		sub := r.db.Table("product_categories").Select("product_uuid").Where("category_id IN ?", f.CategoryIDs)
		q = q.Where("products.uuid IN (?)", sub)
	}
	if len(f.TagIDs) > 0 {
		sub := r.db.Table("product_tags").Select("product_uuid").Where("tag_id IN ?", f.TagIDs)
		q = q.Where("products.uuid IN (?)", sub)
	}
	return q
}

func (r *ProductGormRepository) FindByUUIDs(ctx context.Context, ids []model.ProductUUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Categories").
		Preload("Tags").
		Where("uuid IN ?", ids).
		Order("updated_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, translateError(err)
	}
	return products, nil
}

func (r *ProductGormRepository) UpdateStatus(ctx context.Context, ids []model.ProductUUID, status model.ProductStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("uuid IN ?", ids).
		Update("status", status)
	if res.Error != nil {
		return 0, translateError(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *ProductGormRepository) ListStatuses(ctx context.Context, ids []model.ProductUUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Select("uuid", "status").
		Where("uuid IN ?", ids).
		Find(&products).Error
	if err != nil {
		return nil, translateError(err)
	}
	return products, nil
}

func (r *ProductGormRepository) UpdatePrice(ctx context.Context, id model.ProductUUID, price int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("uuid = ?", id).
		Update("price", price)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 読み込んだ集合から計算した結果で上書きする（差分のlink/unlinkはしない）
func (r *ProductGormRepository) ReplaceCategories(ctx context.Context, product *model.Product, categories []model.Category) error {
	assoc := r.db.WithContext(ctx).Model(product).Association("Categories")
	if len(categories) == 0 {
		return translateError(assoc.Clear())
	}
	return translateError(assoc.Replace(categories))
}

func (r *ProductGormRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return r.exists(ctx, "slug", slug)
}
