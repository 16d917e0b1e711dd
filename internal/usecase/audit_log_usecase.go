package usecase

import (
	"context"

	"catalog/internal/domain/model"
	"catalog/internal/pagination"
	repo "catalog/internal/repository"

	"go.uber.org/zap"
)

// 監査ログの参照（offsetモードのみ）
type AuditLogUsecase struct {
	logs         repo.AuditLogRepository
	defaultLimit int
	log          *zap.Logger
}

func NewAuditLogUsecase(logs repo.AuditLogRepository, defaultLimit int, log *zap.Logger) *AuditLogUsecase {
	return &AuditLogUsecase{logs: logs, defaultLimit: defaultLimit, log: log}
}

func (u *AuditLogUsecase) List(ctx context.Context, filter repo.AuditLogFilter, o pagination.OffsetParams) (pagination.List[model.AuditLog], error) {
	o = o.WithDefaults(u.defaultLimit)
	if err := o.Validate(); err != nil {
		return pagination.List[model.AuditLog]{}, badInput(err.Error())
	}

	logs, err := u.logs.List(ctx, filter, o.Window())
	if err != nil {
		return pagination.List[model.AuditLog]{}, internal(ctx, u.log, "failed to list audit logs", err)
	}
	return pagination.NewList(logs), nil
}
