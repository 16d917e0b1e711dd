package usecase

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/domain/model"
	"catalog/internal/logger"
	repo "catalog/internal/repository"

	"go.uber.org/zap"
)

// ProductBatchUsecase applies one logical operation to many products.
// Items run one after another; a failing item is reported, never raised.
type ProductBatchUsecase struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
	stocks     repo.StockRepository
	recorder   batchRecorder
	log        *zap.Logger
}

func NewProductBatchUsecase(
	products repo.ProductRepository,
	categories repo.CategoryRepository,
	stocks repo.StockRepository,
	audit repo.AuditLogRepository,
	metrics BatchMetrics,
	log *zap.Logger,
) *ProductBatchUsecase {
	return &ProductBatchUsecase{
		products:   products,
		categories: categories,
		stocks:     stocks,
		recorder:   batchRecorder{audit: audit, metrics: metrics, log: log},
		log:        log,
	}
}

// メトリクスのoperationラベル
const (
	opUpdateStatus   = "update_status"
	opUpdatePrice    = "update_price"
	opUpdateStock    = "update_stock"
	opAttachCategory = "attach_category"
	opDetachCategory = "detach_category"
)

type StatusBatchResult struct {
	Statuses StatusBatchStatuses `json:"statuses"`
}

// Status is true when every matched product now carries the requested status.
type StatusBatchStatuses struct {
	UUIDs  []model.ProductUUID `json:"uuids"`
	Status bool                `json:"status"`
}

type PriceUpdate struct {
	ProductUUID model.ProductUUID `json:"productUuid"`
	Price       int64             `json:"price"`
}

type ProductItemStatus struct {
	ProductUUID model.ProductUUID `json:"productUuid"`
	Status      bool              `json:"status"`
}

// Countが-1なら(product, warehouse)の行を削除
type StockUpdate struct {
	ProductUUID model.ProductUUID `json:"productUuid"`
	WarehouseID int64             `json:"warehouseId"`
	Count       int64             `json:"count"`
}

type StockItemStatus struct {
	ProductUUID model.ProductUUID `json:"productUuid"`
	WarehouseID int64             `json:"warehouseId"`
	Status      bool              `json:"status"`
}

type CategoryToggle struct {
	ProductUUIDs []model.ProductUUID `json:"productUuids"`
	CategoryID   int64               `json:"categoryId"`
}

// UpdateStatus changes every product in one store call. Nothing matched is a 404 for the whole batch.
func (u *ProductBatchUsecase) UpdateStatus(ctx context.Context, ids []model.ProductUUID, status model.ProductStatus) (StatusBatchResult, error) {
	if len(ids) == 0 {
		return StatusBatchResult{}, badInput("no product uuids provided for status update")
	}
	if !status.Assignable() {
		return StatusBatchResult{}, badInput("invalid product status")
	}

	affected, err := u.products.UpdateStatus(ctx, ids, status)
	if err != nil {
		return StatusBatchResult{}, internal(ctx, u.log, "failed to update product status", err)
	}
	if affected == 0 {
		return StatusBatchResult{}, notFound("no products found for the given uuids")
	}

	updated, err := u.products.ListStatuses(ctx, ids)
	if err != nil {
		return StatusBatchResult{}, internal(ctx, u.log, "failed to read product status", err)
	}

	result := StatusBatchStatuses{UUIDs: make([]model.ProductUUID, 0, len(updated)), Status: true}
	for _, p := range updated {
		ok := p.Status == status
		result.UUIDs = append(result.UUIDs, p.UUID)
		result.Status = result.Status && ok
		u.recorder.record(ctx, opUpdateStatus, ok, &auditEntry{
			action:       model.AuditActionUpdateStatus,
			resourceType: model.AuditResourceProduct,
			resourceID:   p.UUID.String(),
			after:        map[string]any{"status": status},
		})
	}
	logger.FromContext(ctx, u.log).Info("product status updated",
		zap.Stringer("status", status),
		zap.Int64("affected", affected),
	)
	return StatusBatchResult{Statuses: result}, nil
}

func (u *ProductBatchUsecase) UpdatePrices(ctx context.Context, items []PriceUpdate) ([]ProductItemStatus, error) {
	if len(items) == 0 {
		return nil, badInput("no prices provided for update")
	}

	statuses := make([]ProductItemStatus, 0, len(items))
	for _, item := range items {
		ok := u.updatePrice(ctx, item)
		u.recorder.record(ctx, opUpdatePrice, ok, &auditEntry{
			action:       model.AuditActionUpdatePrice,
			resourceType: model.AuditResourceProduct,
			resourceID:   item.ProductUUID.String(),
			after:        map[string]any{"price": item.Price},
		})
		statuses = append(statuses, ProductItemStatus{ProductUUID: item.ProductUUID, Status: ok})
	}
	return statuses, nil
}

func (u *ProductBatchUsecase) updatePrice(ctx context.Context, item PriceUpdate) bool {
	if item.Price < 0 {
		return false
	}
	err := u.products.UpdatePrice(ctx, item.ProductUUID, item.Price)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		logger.FromContext(ctx, u.log).Warn("failed to update product price",
			zap.Stringer("product_uuid", item.ProductUUID),
			zap.Error(err),
		)
	}
	return err == nil
}

func (u *ProductBatchUsecase) UpdateStocks(ctx context.Context, items []StockUpdate) ([]StockItemStatus, error) {
	if len(items) == 0 {
		return nil, badInput("no stocks provided for update")
	}

	statuses := make([]StockItemStatus, 0, len(items))
	for _, item := range items {
		ok := u.updateStock(ctx, item)

		action := model.AuditActionUpdateStock
		if item.Count == model.DeleteStockCount {
			action = model.AuditActionDeleteStock
		}
		u.recorder.record(ctx, opUpdateStock, ok, &auditEntry{
			action:       action,
			resourceType: model.AuditResourceStock,
			resourceID:   fmt.Sprintf("%s/%d", item.ProductUUID, item.WarehouseID),
			after:        item,
		})
		statuses = append(statuses, StockItemStatus{
			ProductUUID: item.ProductUUID,
			WarehouseID: item.WarehouseID,
			Status:      ok,
		})
	}
	return statuses, nil
}

func (u *ProductBatchUsecase) updateStock(ctx context.Context, item StockUpdate) bool {
	if item.WarehouseID < 1 || item.Count < model.DeleteStockCount {
		return false
	}
	log := logger.FromContext(ctx, u.log).With(
		zap.Stringer("product_uuid", item.ProductUUID),
		zap.Int64("warehouse_id", item.WarehouseID),
	)

	// 商品がなければ在庫も触らない
	if _, err := u.products.FindByID(ctx, item.ProductUUID); err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			log.Warn("failed to load product for stock update", zap.Error(err))
		}
		return false
	}

	var err error
	if item.Count == model.DeleteStockCount {
		err = u.stocks.DeleteByKey(ctx, item.ProductUUID, item.WarehouseID)
	} else {
		err = u.stocks.Upsert(ctx, &model.Stock{
			ProductUUID: item.ProductUUID,
			WarehouseID: item.WarehouseID,
			Quantity:    item.Count,
		})
	}
	if err != nil {
		log.Warn("failed to update stock", zap.Error(err))
		return false
	}
	return true
}

// AttachCategory toggles membership: a product already in the category leaves it.
func (u *ProductBatchUsecase) AttachCategory(ctx context.Context, items []CategoryToggle) ([]ProductItemStatus, error) {
	return u.applyCategory(ctx, items, opAttachCategory, model.AuditActionToggleCategory, func(p model.Product, c model.Category) []model.Category {
		if p.HasCategory(c.ID) {
			return p.WithoutCategory(c.ID)
		}
		return append(p.WithoutCategory(c.ID), c)
	})
}

// DetachCategory removes the category when present and succeeds otherwise.
func (u *ProductBatchUsecase) DetachCategory(ctx context.Context, items []CategoryToggle) ([]ProductItemStatus, error) {
	return u.applyCategory(ctx, items, opDetachCategory, model.AuditActionDetachCategory, func(p model.Product, c model.Category) []model.Category {
		return p.WithoutCategory(c.ID)
	})
}

func (u *ProductBatchUsecase) applyCategory(
	ctx context.Context,
	items []CategoryToggle,
	operation string,
	action model.AuditAction,
	next func(model.Product, model.Category) []model.Category,
) ([]ProductItemStatus, error) {
	if len(items) == 0 {
		return nil, badInput("no products provided for category update")
	}
	for _, item := range items {
		if len(item.ProductUUIDs) == 0 {
			return nil, badInput("productUuids must contain at least one value")
		}
		if item.CategoryID < 1 {
			return nil, badInput("categoryId must be at least 1")
		}
	}

	log := logger.FromContext(ctx, u.log)
	var statuses []ProductItemStatus
	for _, item := range items {
		// カテゴリはアイテムごとに1回だけ読む
		category, err := u.categories.FindByID(ctx, item.CategoryID)
		if err != nil {
			if !errors.Is(err, repo.ErrNotFound) {
				log.Warn("failed to load category", zap.Int64("category_id", item.CategoryID), zap.Error(err))
			}
			for _, id := range item.ProductUUIDs {
				u.recorder.record(ctx, operation, false, nil)
				statuses = append(statuses, ProductItemStatus{ProductUUID: id, Status: false})
			}
			continue
		}

		for _, id := range item.ProductUUIDs {
			ok := u.replaceCategories(ctx, id, category, next)
			u.recorder.record(ctx, operation, ok, &auditEntry{
				action:       action,
				resourceType: model.AuditResourceProduct,
				resourceID:   id.String(),
				after:        map[string]any{"categoryId": category.ID},
			})
			statuses = append(statuses, ProductItemStatus{ProductUUID: id, Status: ok})
		}
	}
	return statuses, nil
}

// 読み込み→計算→全置換。同時更新からは守られない
func (u *ProductBatchUsecase) replaceCategories(
	ctx context.Context,
	id model.ProductUUID,
	category model.Category,
	next func(model.Product, model.Category) []model.Category,
) bool {
	log := logger.FromContext(ctx, u.log).With(
		zap.Stringer("product_uuid", id),
		zap.Int64("category_id", category.ID),
	)

	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			log.Warn("failed to load product", zap.Error(err))
		}
		return false
	}
	if err := u.products.ReplaceCategories(ctx, &p, next(p, category)); err != nil {
		log.Warn("failed to replace product categories", zap.Error(err))
		return false
	}
	return true
}
