package model

// DeleteStockCountは在庫更新で「行を削除」を意味する値
const DeleteStockCount = -1

// (product_uuid, warehouse_id)で1行
type Stock struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductUUID ProductUUID `gorm:"type:uuid;not null;uniqueIndex:idx_stocks_product_warehouse,priority:1" json:"productUuid"`
	WarehouseID int64       `gorm:"not null;uniqueIndex:idx_stocks_product_warehouse,priority:2" json:"warehouseId"`
	Quantity    int64       `gorm:"not null" json:"quantity"`
}
