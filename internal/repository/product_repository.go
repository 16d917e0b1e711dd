package repository

import (
	"context"

	"catalog/internal/domain/model"
)

// ProductFilter is combined with AND across fields; ids inside one field are OR'ed.
type ProductFilter struct {
	Query       string
	Status      *model.ProductStatus
	CategoryIDs []int64
	BrandIDs    []int64
	TagIDs      []int64
}

// 商品の永続化。関連(brand/categories/tags)は読み取り時に常にロードする
type ProductRepository interface {
	CRUD[model.Product, model.ProductUUID, ProductFilter]

	// フィルタもページングもなし。updated_at ASC
	FindByUUIDs(ctx context.Context, ids []model.ProductUUID) ([]model.Product, error)

	// 1回のUPDATEで更新し、影響行数を返す
	UpdateStatus(ctx context.Context, ids []model.ProductUUID, status model.ProductStatus) (int64, error)

	// uuidとstatusだけを読む
	ListStatuses(ctx context.Context, ids []model.ProductUUID) ([]model.Product, error)
	UpdatePrice(ctx context.Context, id model.ProductUUID, price int64) error

	// カテゴリ集合を丸ごと置き換える
	ReplaceCategories(ctx context.Context, product *model.Product, categories []model.Category) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
