package usecase

import (
	"context"

	"catalog/internal/pagination"

	"go.uber.org/zap"
)

// listerは一覧用のstore
type lister[T any, F any] interface {
	Find(ctx context.Context, filter F, w pagination.Window) ([]T, error)
	Count(ctx context.Context, filter F) (int64, error)
}

// listPage runs the page-mode query: one count and one windowed find.
func listPage[T, R any, F any](
	ctx context.Context,
	log *zap.Logger,
	store lister[T, F],
	filter F,
	p pagination.PageParams,
	defaultLimit int,
	conv func(T) R,
) (pagination.Page[R], error) {
	p = p.WithDefaults(defaultLimit)
	if err := p.Validate(); err != nil {
		return pagination.Page[R]{}, badInput(err.Error())
	}

	total, err := store.Count(ctx, filter)
	if err != nil {
		return pagination.Page[R]{}, internal(ctx, log, "failed to count rows", err)
	}
	items, err := store.Find(ctx, filter, p.Window())
	if err != nil {
		return pagination.Page[R]{}, internal(ctx, log, "failed to list rows", err)
	}
	return pagination.NewPage(pagination.Map(items, conv), p, total), nil
}

// offsetモードは件数を数えない
func listOffset[T, R any, F any](
	ctx context.Context,
	log *zap.Logger,
	store lister[T, F],
	filter F,
	o pagination.OffsetParams,
	defaultLimit int,
	conv func(T) R,
) (pagination.List[R], error) {
	o = o.WithDefaults(defaultLimit)
	if err := o.Validate(); err != nil {
		return pagination.List[R]{}, badInput(err.Error())
	}

	items, err := store.Find(ctx, filter, o.Window())
	if err != nil {
		return pagination.List[R]{}, internal(ctx, log, "failed to list rows", err)
	}
	return pagination.NewList(pagination.Map(items, conv)), nil
}

func identity[T any](v T) T { return v }
