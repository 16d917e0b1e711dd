package repository

import (
	"context"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockGormRepository struct {
	db *gorm.DB
}

var _ repo.StockRepository = (*StockGormRepository)(nil)

func NewStockGormRepository(db *gorm.DB) *StockGormRepository {
	return &StockGormRepository{db: db}
}

func (r *StockGormRepository) ListByProduct(ctx context.Context, productUUID model.ProductUUID) ([]model.Stock, error) {
	var stocks []model.Stock
	err := r.db.WithContext(ctx).
		Where("product_uuid = ?", productUUID).
		Order("warehouse_id ASC").
		Find(&stocks).Error
	if err != nil {
		return nil, translateError(err)
	}
	return stocks, nil
}

// 在庫の現在値を設定（なければ作る）
func (r *StockGormRepository) Upsert(ctx context.Context, stock *model.Stock) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_uuid"}, {Name: "warehouse_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).
		Create(stock).Error
	return translateError(err)
}

func (r *StockGormRepository) DeleteByKey(ctx context.Context, productUUID model.ProductUUID, warehouseID int64) error {
	err := r.db.WithContext(ctx).
		Where("product_uuid = ? AND warehouse_id = ?", productUUID, warehouseID).
		Delete(&model.Stock{}).Error
	return translateError(err)
}
