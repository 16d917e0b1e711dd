package repository

import (
	"context"

	"catalog/internal/domain/model"
	"catalog/internal/pagination"
	repo "catalog/internal/repository"

	"gorm.io/gorm"
)

type AuditLogGormRepository struct {
	db *gorm.DB
}

var _ repo.AuditLogRepository = (*AuditLogGormRepository)(nil)

func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{db: db}
}

// 監査ログを1件保存
func (r *AuditLogGormRepository) Create(ctx context.Context, log *model.AuditLog) error {
	return translateError(r.db.WithContext(ctx).Create(log).Error)
}

func (r *AuditLogGormRepository) List(ctx context.Context, filter repo.AuditLogFilter, w pagination.Window) ([]model.AuditLog, error) {
	q := r.db.WithContext(ctx).Model(&model.AuditLog{})

	if filter.Action != nil {
		q = q.Where("action = ?", *filter.Action)
	}
	if filter.ResourceType != nil {
		q = q.Where("resource_type = ?", *filter.ResourceType)
	}
	if filter.ResourceID != "" {
		q = q.Where("resource_id = ?", filter.ResourceID)
	}
	if filter.CreatedFrom != nil {
		q = q.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		q = q.Where("created_at <= ?", *filter.CreatedTo)
	}

	//新しい順
	q = q.Order("id DESC")

	var logs []model.AuditLog
	if err := q.Offset(w.Offset).Limit(w.Limit).Find(&logs).Error; err != nil {
		return nil, translateError(err)
	}
	return logs, nil
}
