package repository

import (
	"context"

	"catalog/internal/domain/model"
)

// 一覧はorder_sort ASC, created_at ASC
type CategoryRepository interface {
	CRUD[model.Category, int64, NoFilter]
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// 手動並び順の更新。対象がなければErrNotFound
	UpdateOrderSort(ctx context.Context, id int64, orderSort int) error
}
