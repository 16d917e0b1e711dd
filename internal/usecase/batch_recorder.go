package usecase

import (
	"context"
	"encoding/json"

	"catalog/internal/domain/model"
	"catalog/internal/logger"
	repo "catalog/internal/repository"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// BatchMetrics counts batch items by outcome. *metrics.Metrics satisfies it.
type BatchMetrics interface {
	RecordBatchItem(operation string, ok bool)
}

// batchRecorderは各アイテムの結果をメトリクスと監査ログに残す
type batchRecorder struct {
	audit   repo.AuditLogRepository
	metrics BatchMetrics
	log     *zap.Logger
}

type auditEntry struct {
	action       model.AuditAction
	resourceType model.AuditResourceType
	resourceID   string
	after        any
}

// record never fails the item: audit write errors are only logged.
func (r batchRecorder) record(ctx context.Context, operation string, ok bool, entry *auditEntry) {
	if r.metrics != nil {
		r.metrics.RecordBatchItem(operation, ok)
	}
	if !ok || entry == nil || r.audit == nil {
		return
	}

	after, err := json.Marshal(entry.after)
	if err != nil {
		logger.FromContext(ctx, r.log).Warn("failed to encode audit payload", zap.Error(err))
		return
	}
	log := &model.AuditLog{
		Action:       entry.action,
		ResourceType: entry.resourceType,
		ResourceID:   entry.resourceID,
		After:        datatypes.JSON(after),
		RequestID:    logger.RequestID(ctx),
	}
	if err := r.audit.Create(ctx, log); err != nil {
		logger.FromContext(ctx, r.log).Warn("failed to write audit log",
			zap.String("operation", operation),
			zap.String("resource_id", entry.resourceID),
			zap.Error(err),
		)
	}
}
