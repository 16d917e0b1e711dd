package repository

import (
	"context"

	"catalog/internal/pagination"
)

// NoFilterはフィルタを持たないリソース用
type NoFilter struct{}

// CRUD is the store capability shared by every entity: filtered find, count, lookup, save and delete.
type CRUD[T any, K comparable, F any] interface {
	Find(ctx context.Context, filter F, w pagination.Window) ([]T, error)
	Count(ctx context.Context, filter F) (int64, error)
	FindByID(ctx context.Context, id K) (T, error)
	Create(ctx context.Context, entity *T) error

	// 存在しない行はErrNotFound
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id K) error
}
