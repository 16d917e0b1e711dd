package usecase

import (
	"context"
	"fmt"
	"strings"

	"catalog/internal/domain/model"
	"catalog/internal/logger"
	"catalog/internal/pagination"
	repo "catalog/internal/repository"
	"catalog/internal/validator"

	"go.uber.org/zap"
)

type BrandUsecase struct {
	brands       repo.BrandRepository
	defaultLimit int
	log          *zap.Logger
}

func NewBrandUsecase(brands repo.BrandRepository, defaultLimit int, log *zap.Logger) *BrandUsecase {
	return &BrandUsecase{brands: brands, defaultLimit: defaultLimit, log: log}
}

type BrandInput struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"isActive"`
}

// normalizeでslugを小文字にしてから検証する
func (in BrandInput) normalize() (BrandInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = validator.NormalizeSlug(in.Slug)
	if err := validator.ValidateName("name", in.Name); err != nil {
		return in, invalidInput(err)
	}
	if err := validator.ValidateSlug(in.Slug); err != nil {
		return in, invalidInput(err)
	}
	return in, nil
}

func mergeBrand(existing model.Brand, in BrandInput) model.Brand {
	existing.Name = in.Name
	existing.Slug = in.Slug
	existing.IsActive = in.IsActive
	return existing
}

func brandConflict(in BrandInput, err error) string {
	if repo.ConstraintName(err) == "idx_brands_slug" {
		return fmt.Sprintf("brand with slug %q already exists", in.Slug)
	}
	return fmt.Sprintf("brand with name %q already exists", in.Name)
}

func (u *BrandUsecase) ListPage(ctx context.Context, p pagination.PageParams) (pagination.Page[model.Brand], error) {
	return listPage[model.Brand, model.Brand, repo.NoFilter](ctx, u.log, u.brands, repo.NoFilter{}, p, u.defaultLimit, identity[model.Brand])
}

func (u *BrandUsecase) ListPageShort(ctx context.Context, p pagination.PageParams) (pagination.Page[model.BrandShort], error) {
	return listPage[model.Brand, model.BrandShort, repo.NoFilter](ctx, u.log, u.brands, repo.NoFilter{}, p, u.defaultLimit, model.Brand.Short)
}

func (u *BrandUsecase) ListOffset(ctx context.Context, o pagination.OffsetParams) (pagination.List[model.Brand], error) {
	return listOffset[model.Brand, model.Brand, repo.NoFilter](ctx, u.log, u.brands, repo.NoFilter{}, o, u.defaultLimit, identity[model.Brand])
}

func (u *BrandUsecase) ListOffsetShort(ctx context.Context, o pagination.OffsetParams) (pagination.List[model.BrandShort], error) {
	return listOffset[model.Brand, model.BrandShort, repo.NoFilter](ctx, u.log, u.brands, repo.NoFilter{}, o, u.defaultLimit, model.Brand.Short)
}

func (u *BrandUsecase) Get(ctx context.Context, id int64) (model.Brand, error) {
	if id <= 0 {
		return model.Brand{}, badInput("invalid brand id")
	}
	b, err := u.brands.FindByID(ctx, id)
	if err != nil {
		return model.Brand{}, mutationError(ctx, u.log, err, fmt.Sprintf("brand %d not found", id), "", "failed to get brand")
	}
	return b, nil
}

func (u *BrandUsecase) GetShort(ctx context.Context, id int64) (model.BrandShort, error) {
	b, err := u.Get(ctx, id)
	if err != nil {
		return model.BrandShort{}, err
	}
	return b.Short(), nil
}

func (u *BrandUsecase) Create(ctx context.Context, in BrandInput) (model.Brand, error) {
	in, err := in.normalize()
	if err != nil {
		return model.Brand{}, err
	}

	b := mergeBrand(model.Brand{}, in)
	if err := u.brands.Create(ctx, &b); err != nil {
		return model.Brand{}, mutationError(ctx, u.log, err, "", brandConflict(in, err), "failed to create brand")
	}
	logger.FromContext(ctx, u.log).Info("brand created", zap.Int64("brand_id", b.ID))
	return b, nil
}

func (u *BrandUsecase) Update(ctx context.Context, id int64, in BrandInput) (model.Brand, error) {
	if id <= 0 {
		return model.Brand{}, badInput("invalid brand id")
	}
	in, err := in.normalize()
	if err != nil {
		return model.Brand{}, err
	}

	existing, err := u.brands.FindByID(ctx, id)
	if err != nil {
		return model.Brand{}, mutationError(ctx, u.log, err, fmt.Sprintf("brand %d not found", id), "", "failed to get brand")
	}

	b := mergeBrand(existing, in)
	if err := u.brands.Save(ctx, &b); err != nil {
		return model.Brand{}, mutationError(ctx, u.log, err, fmt.Sprintf("brand %d not found", id), brandConflict(in, err), "failed to update brand")
	}
	return b, nil
}

// 商品から参照されている場合はbrand_idがNULLになる
func (u *BrandUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return badInput("invalid brand id")
	}
	if err := u.brands.Delete(ctx, id); err != nil {
		return mutationError(ctx, u.log, err, fmt.Sprintf("brand %d not found", id), "", "failed to delete brand")
	}
	return nil
}
