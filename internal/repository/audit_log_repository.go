package repository

import (
	"context"
	"time"

	"catalog/internal/domain/model"
	"catalog/internal/pagination"
)

// 監査ログの絞り込み条件。空のフィールドは無視
type AuditLogFilter struct {
	Action       *model.AuditAction
	ResourceType *model.AuditResourceType
	ResourceID   string
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}

// バッチ操作の監査ログ
type AuditLogRepository interface {
	Create(ctx context.Context, log *model.AuditLog) error

	// 新しい順
	List(ctx context.Context, filter AuditLogFilter, w pagination.Window) ([]model.AuditLog, error)
}
