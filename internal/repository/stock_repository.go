package repository

import (
	"context"

	"catalog/internal/domain/model"
)

type StockRepository interface {
	ListByProduct(ctx context.Context, productUUID model.ProductUUID) ([]model.Stock, error)

	// (product_uuid, warehouse_id)で1行。あれば数量を上書き
	Upsert(ctx context.Context, stock *model.Stock) error

	// 行がなくてもエラーにしない
	DeleteByKey(ctx context.Context, productUUID model.ProductUUID, warehouseID int64) error
}
