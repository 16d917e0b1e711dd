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

type ProductUsecase struct {
	products     repo.ProductRepository
	stocks       repo.StockRepository
	batch        *ProductBatchUsecase
	defaultLimit int
	log          *zap.Logger
}

// DI
func NewProductUsecase(
	products repo.ProductRepository,
	stocks repo.StockRepository,
	batch *ProductBatchUsecase,
	defaultLimit int,
	log *zap.Logger,
) *ProductUsecase {
	return &ProductUsecase{
		products:     products,
		stocks:       stocks,
		batch:        batch,
		defaultLimit: defaultLimit,
		log:          log,
	}
}

// 一覧の絞り込み。空のフィールドは条件にしない
type ProductListFilter struct {
	Query       string
	Status      *model.ProductStatus
	CategoryIDs []int64
	BrandIDs    []int64
	TagIDs      []int64
}

func (f ProductListFilter) toRepo() (repo.ProductFilter, error) {
	if f.Status != nil && !f.Status.Valid() {
		return repo.ProductFilter{}, badInput("invalid product status")
	}
	for _, err := range []error{
		validator.ValidateIDs("categoryIds", f.CategoryIDs),
		validator.ValidateIDs("brandIds", f.BrandIDs),
		validator.ValidateIDs("tagIds", f.TagIDs),
	} {
		if err != nil {
			return repo.ProductFilter{}, invalidInput(err)
		}
	}
	return repo.ProductFilter{
		Query:       strings.TrimSpace(f.Query),
		Status:      f.Status,
		CategoryIDs: f.CategoryIDs,
		BrandIDs:    f.BrandIDs,
		TagIDs:      f.TagIDs,
	}, nil
}

type ProductInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	BrandID     *int64 `json:"brandId"`
}

func (in ProductInput) normalize() (ProductInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = validator.NormalizeSlug(in.Slug)
	checks := []error{
		validator.ValidateName("name", in.Name),
		validator.ValidateSlug(in.Slug),
		validator.ValidateNotEmpty("description", in.Description),
		validator.ValidatePrice(in.Price),
	}
	if in.BrandID != nil {
		checks = append(checks, validator.ValidateID("brandId", *in.BrandID))
	}
	for _, err := range checks {
		if err != nil {
			return in, invalidInput(err)
		}
	}
	return in, nil
}

// statusと関連は触らない
func mergeProduct(existing model.Product, in ProductInput) model.Product {
	existing.Name = in.Name
	existing.Slug = in.Slug
	existing.Description = in.Description
	existing.Price = in.Price
	existing.BrandID = in.BrandID
	existing.Brand = nil
	return existing
}

func productConflict(in ProductInput) string {
	return fmt.Sprintf("product with slug %q already exists", in.Slug)
}

func (u *ProductUsecase) ListPage(ctx context.Context, f ProductListFilter, p pagination.PageParams) (pagination.Page[model.Product], error) {
	rf, err := f.toRepo()
	if err != nil {
		return pagination.Page[model.Product]{}, err
	}
	return listPage[model.Product, model.Product, repo.ProductFilter](ctx, u.log, u.products, rf, p, u.defaultLimit, identity[model.Product])
}

func (u *ProductUsecase) ListPageShort(ctx context.Context, f ProductListFilter, p pagination.PageParams) (pagination.Page[model.ProductShort], error) {
	rf, err := f.toRepo()
	if err != nil {
		return pagination.Page[model.ProductShort]{}, err
	}
	return listPage[model.Product, model.ProductShort, repo.ProductFilter](ctx, u.log, u.products, rf, p, u.defaultLimit, model.Product.Short)
}

func (u *ProductUsecase) ListOffset(ctx context.Context, f ProductListFilter, o pagination.OffsetParams) (pagination.List[model.Product], error) {
	rf, err := f.toRepo()
	if err != nil {
		return pagination.List[model.Product]{}, err
	}
	return listOffset[model.Product, model.Product, repo.ProductFilter](ctx, u.log, u.products, rf, o, u.defaultLimit, identity[model.Product])
}

func (u *ProductUsecase) ListOffsetShort(ctx context.Context, f ProductListFilter, o pagination.OffsetParams) (pagination.List[model.ProductShort], error) {
	rf, err := f.toRepo()
	if err != nil {
		return pagination.List[model.ProductShort]{}, err
	}
	return listOffset[model.Product, model.ProductShort, repo.ProductFilter](ctx, u.log, u.products, rf, o, u.defaultLimit, model.Product.Short)
}

func (u *ProductUsecase) Get(ctx context.Context, id model.ProductUUID) (model.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, mutationError(ctx, u.log, err, fmt.Sprintf("product %s not found", id), "", "failed to get product")
	}
	return p, nil
}

// GetByUUIDs returns the matching products without filtering or paging. Unknown ids are skipped.
func (u *ProductUsecase) GetByUUIDs(ctx context.Context, ids []model.ProductUUID) (pagination.List[model.Product], error) {
	if len(ids) == 0 {
		return pagination.List[model.Product]{}, badInput("no product uuids provided")
	}
	products, err := u.products.FindByUUIDs(ctx, ids)
	if err != nil {
		return pagination.List[model.Product]{}, internal(ctx, u.log, "failed to get products", err)
	}
	return pagination.NewList(products), nil
}

// 新規はDraftで作る
func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	in, err := in.normalize()
	if err != nil {
		return model.Product{}, err
	}

	p := mergeProduct(model.Product{
		UUID:   model.NewProductUUID(),
		Status: model.ProductStatusDraft,
	}, in)
	if err := u.products.Create(ctx, &p); err != nil {
		return model.Product{}, mutationError(ctx, u.log, err, "", productConflict(in), "failed to create product")
	}
	logger.FromContext(ctx, u.log).Info("product created", zap.Stringer("product_uuid", p.UUID))
	return u.Get(ctx, p.UUID)
}

func (u *ProductUsecase) Update(ctx context.Context, id model.ProductUUID, in ProductInput) (model.Product, error) {
	in, err := in.normalize()
	if err != nil {
		return model.Product{}, err
	}

	existing, err := u.products.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, mutationError(ctx, u.log, err, fmt.Sprintf("product %s not found", id), "", "failed to get product")
	}

	p := mergeProduct(existing, in)
	if err := u.products.Save(ctx, &p); err != nil {
		return model.Product{}, mutationError(ctx, u.log, err, fmt.Sprintf("product %s not found", id), productConflict(in), "failed to update product")
	}
	return u.Get(ctx, id)
}

// 物理削除はしない。Archivedに移す
func (u *ProductUsecase) Delete(ctx context.Context, id model.ProductUUID) (StatusBatchResult, error) {
	return u.batch.UpdateStatus(ctx, []model.ProductUUID{id}, model.ProductStatusArchived)
}

func (u *ProductUsecase) CheckAvailableSlug(ctx context.Context, slug string) (bool, error) {
	slug = validator.NormalizeSlug(slug)
	if err := validator.ValidateSlug(slug); err != nil {
		return false, invalidInput(err)
	}
	exists, err := u.products.ExistsBySlug(ctx, slug)
	if err != nil {
		return false, internal(ctx, u.log, "failed to check product slug", err)
	}
	return !exists, nil
}

func (u *ProductUsecase) Stocks(ctx context.Context, id model.ProductUUID) (pagination.List[model.Stock], error) {
	if _, err := u.Get(ctx, id); err != nil {
		return pagination.List[model.Stock]{}, err
	}
	stocks, err := u.stocks.ListByProduct(ctx, id)
	if err != nil {
		return pagination.List[model.Stock]{}, internal(ctx, u.log, "failed to get stocks", err)
	}
	return pagination.NewList(stocks), nil
}
