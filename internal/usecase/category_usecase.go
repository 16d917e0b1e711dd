package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"catalog/internal/domain/model"
	"catalog/internal/logger"
	"catalog/internal/pagination"
	repo "catalog/internal/repository"
	"catalog/internal/validator"

	"go.uber.org/zap"
)

type CategoryUsecase struct {
	categories   repo.CategoryRepository
	recorder     batchRecorder
	defaultLimit int
	log          *zap.Logger
}

func NewCategoryUsecase(
	categories repo.CategoryRepository,
	audit repo.AuditLogRepository,
	metrics BatchMetrics,
	defaultLimit int,
	log *zap.Logger,
) *CategoryUsecase {
	return &CategoryUsecase{
		categories:   categories,
		recorder:     batchRecorder{audit: audit, metrics: metrics, log: log},
		defaultLimit: defaultLimit,
		log:          log,
	}
}

type CategoryInput struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"isActive"`
	ParentID *int64 `json:"parentId"`
}

func (in CategoryInput) normalize() (CategoryInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = validator.NormalizeSlug(in.Slug)
	if err := validator.ValidateName("name", in.Name); err != nil {
		return in, invalidInput(err)
	}
	if err := validator.ValidateSlug(in.Slug); err != nil {
		return in, invalidInput(err)
	}
	if in.ParentID != nil {
		if err := validator.ValidateID("parentId", *in.ParentID); err != nil {
			return in, invalidInput(err)
		}
	}
	return in, nil
}

// order_sortは専用のバッチでのみ変わる
func mergeCategory(existing model.Category, in CategoryInput) model.Category {
	existing.Name = in.Name
	existing.Slug = in.Slug
	existing.IsActive = in.IsActive
	existing.ParentID = in.ParentID
	return existing
}

func categoryConflict(in CategoryInput) string {
	return fmt.Sprintf("category with slug %q already exists", in.Slug)
}

// 親が存在しなければ400（404ではない）
func (u *CategoryUsecase) checkParent(ctx context.Context, parentID *int64) error {
	if parentID == nil {
		return nil
	}
	ok, err := u.categories.Exists(ctx, *parentID)
	if err != nil {
		return internal(ctx, u.log, "failed to check parent category", err)
	}
	if !ok {
		return badInput(fmt.Sprintf("parent category %d does not exist", *parentID))
	}
	return nil
}

func (u *CategoryUsecase) ListPage(ctx context.Context, p pagination.PageParams) (pagination.Page[model.Category], error) {
	return listPage[model.Category, model.Category, repo.NoFilter](ctx, u.log, u.categories, repo.NoFilter{}, p, u.defaultLimit, identity[model.Category])
}

func (u *CategoryUsecase) ListPageShort(ctx context.Context, p pagination.PageParams) (pagination.Page[model.CategoryShort], error) {
	return listPage[model.Category, model.CategoryShort, repo.NoFilter](ctx, u.log, u.categories, repo.NoFilter{}, p, u.defaultLimit, model.Category.Short)
}

func (u *CategoryUsecase) ListOffset(ctx context.Context, o pagination.OffsetParams) (pagination.List[model.Category], error) {
	return listOffset[model.Category, model.Category, repo.NoFilter](ctx, u.log, u.categories, repo.NoFilter{}, o, u.defaultLimit, identity[model.Category])
}

func (u *CategoryUsecase) ListOffsetShort(ctx context.Context, o pagination.OffsetParams) (pagination.List[model.CategoryShort], error) {
	return listOffset[model.Category, model.CategoryShort, repo.NoFilter](ctx, u.log, u.categories, repo.NoFilter{}, o, u.defaultLimit, model.Category.Short)
}

func (u *CategoryUsecase) Get(ctx context.Context, id int64) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, badInput("invalid category id")
	}
	c, err := u.categories.FindByID(ctx, id)
	if err != nil {
		return model.Category{}, mutationError(ctx, u.log, err, fmt.Sprintf("category %d not found", id), "", "failed to get category")
	}
	return c, nil
}

func (u *CategoryUsecase) GetShort(ctx context.Context, id int64) (model.CategoryShort, error) {
	c, err := u.Get(ctx, id)
	if err != nil {
		return model.CategoryShort{}, err
	}
	return c.Short(), nil
}

func (u *CategoryUsecase) Create(ctx context.Context, in CategoryInput) (model.Category, error) {
	in, err := in.normalize()
	if err != nil {
		return model.Category{}, err
	}
	if err := u.checkParent(ctx, in.ParentID); err != nil {
		return model.Category{}, err
	}

	c := mergeCategory(model.Category{OrderSort: model.DefaultCategoryOrderSort}, in)
	if err := u.categories.Create(ctx, &c); err != nil {
		return model.Category{}, mutationError(ctx, u.log, err, "", categoryConflict(in), "failed to create category")
	}
	logger.FromContext(ctx, u.log).Info("category created", zap.Int64("category_id", c.ID))
	return c, nil
}

// 自己参照は禁止。A→B→Aのような循環は検出しない
func (u *CategoryUsecase) Update(ctx context.Context, id int64, in CategoryInput) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, badInput("invalid category id")
	}
	in, err := in.normalize()
	if err != nil {
		return model.Category{}, err
	}
	if in.ParentID != nil && *in.ParentID == id {
		return model.Category{}, badInput("category cannot be its own parent")
	}

	existing, err := u.categories.FindByID(ctx, id)
	if err != nil {
		return model.Category{}, mutationError(ctx, u.log, err, fmt.Sprintf("category %d not found", id), "", "failed to get category")
	}
	if err := u.checkParent(ctx, in.ParentID); err != nil {
		return model.Category{}, err
	}

	c := mergeCategory(existing, in)
	if err := u.categories.Save(ctx, &c); err != nil {
		return model.Category{}, mutationError(ctx, u.log, err, fmt.Sprintf("category %d not found", id), categoryConflict(in), "failed to update category")
	}
	return c, nil
}

// 子カテゴリのparent_idはNULLになる
func (u *CategoryUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return badInput("invalid category id")
	}
	if err := u.categories.Delete(ctx, id); err != nil {
		return mutationError(ctx, u.log, err, fmt.Sprintf("category %d not found", id), "", "failed to delete category")
	}
	return nil
}

func (u *CategoryUsecase) CheckAvailableSlug(ctx context.Context, slug string) (bool, error) {
	slug = validator.NormalizeSlug(slug)
	if err := validator.ValidateSlug(slug); err != nil {
		return false, invalidInput(err)
	}
	exists, err := u.categories.ExistsBySlug(ctx, slug)
	if err != nil {
		return false, internal(ctx, u.log, "failed to check category slug", err)
	}
	return !exists, nil
}

type OrderSortUpdate struct {
	ID        int64 `json:"id"`
	OrderSort int   `json:"orderSort"`
}

type OrderSortStatus struct {
	ID     int64 `json:"id"`
	Status bool  `json:"status"`
}

const opUpdateOrderSort = "update_order_sort"

// UpdateOrderSorts applies each item independently and in order.
func (u *CategoryUsecase) UpdateOrderSorts(ctx context.Context, items []OrderSortUpdate) ([]OrderSortStatus, error) {
	if len(items) == 0 {
		return nil, badInput("no categories provided for order sort update")
	}

	log := logger.FromContext(ctx, u.log)
	statuses := make([]OrderSortStatus, 0, len(items))
	for _, item := range items {
		ok := false
		switch err := u.categories.UpdateOrderSort(ctx, item.ID, item.OrderSort); {
		case err == nil:
			ok = true
		case errors.Is(err, repo.ErrNotFound):
		default:
			log.Warn("failed to update category order sort", zap.Int64("category_id", item.ID), zap.Error(err))
		}

		u.recorder.record(ctx, opUpdateOrderSort, ok, &auditEntry{
			action:       model.AuditActionUpdateOrderSort,
			resourceType: model.AuditResourceCategory,
			resourceID:   strconv.FormatInt(item.ID, 10),
			after:        item,
		})
		statuses = append(statuses, OrderSortStatus{ID: item.ID, Status: ok})
	}
	return statuses, nil
}
