package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"catalog/internal/domain/model"
	"catalog/internal/pagination"
	repo "catalog/internal/repository"
	"catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mocks
// =====================

type TagRepoMock struct{ mock.Mock }

func (m *TagRepoMock) Find(ctx context.Context, f repo.NoFilter, w pagination.Window) ([]model.Tag, error) {
	args := m.Called(ctx, f, w)
	items, _ := args.Get(0).([]model.Tag)
	return items, args.Error(1)
}

func (m *TagRepoMock) Count(ctx context.Context, f repo.NoFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TagRepoMock) FindByID(ctx context.Context, id int64) (model.Tag, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(model.Tag)
	return t, args.Error(1)
}

func (m *TagRepoMock) Create(ctx context.Context, t *model.Tag) error {
	return m.Called(ctx, t).Error(0)
}

func (m *TagRepoMock) Save(ctx context.Context, t *model.Tag) error {
	return m.Called(ctx, t).Error(0)
}

func (m *TagRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *TagRepoMock) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type BrandRepoMock struct{ mock.Mock }

func (m *BrandRepoMock) Find(ctx context.Context, f repo.NoFilter, w pagination.Window) ([]model.Brand, error) {
	args := m.Called(ctx, f, w)
	items, _ := args.Get(0).([]model.Brand)
	return items, args.Error(1)
}

func (m *BrandRepoMock) Count(ctx context.Context, f repo.NoFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BrandRepoMock) FindByID(ctx context.Context, id int64) (model.Brand, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Brand)
	return b, args.Error(1)
}

func (m *BrandRepoMock) Create(ctx context.Context, b *model.Brand) error {
	return m.Called(ctx, b).Error(0)
}

func (m *BrandRepoMock) Save(ctx context.Context, b *model.Brand) error {
	return m.Called(ctx, b).Error(0)
}

func (m *BrandRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) Find(ctx context.Context, f repo.NoFilter, w pagination.Window) ([]model.Category, error) {
	args := m.Called(ctx, f, w)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *CategoryRepoMock) Count(ctx context.Context, f repo.NoFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CategoryRepoMock) Save(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CategoryRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CategoryRepoMock) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *CategoryRepoMock) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *CategoryRepoMock) UpdateOrderSort(ctx context.Context, id int64, orderSort int) error {
	return m.Called(ctx, id, orderSort).Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Find(ctx context.Context, f repo.ProductFilter, w pagination.Window) ([]model.Product, error) {
	args := m.Called(ctx, f, w)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Count(ctx context.Context, f repo.ProductFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id model.ProductUUID) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepoMock) Save(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id model.ProductUUID) error {
	panic("products are archived, not deleted")
}

func (m *ProductRepoMock) FindByUUIDs(ctx context.Context, ids []model.ProductUUID) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) UpdateStatus(ctx context.Context, ids []model.ProductUUID, status model.ProductStatus) (int64, error) {
	args := m.Called(ctx, ids, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) ListStatuses(ctx context.Context, ids []model.ProductUUID) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) UpdatePrice(ctx context.Context, id model.ProductUUID, price int64) error {
	return m.Called(ctx, id, price).Error(0)
}

func (m *ProductRepoMock) ReplaceCategories(ctx context.Context, p *model.Product, categories []model.Category) error {
	return m.Called(ctx, p, categories).Error(0)
}

func (m *ProductRepoMock) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

type StockRepoMock struct{ mock.Mock }

func (m *StockRepoMock) ListByProduct(ctx context.Context, id model.ProductUUID) ([]model.Stock, error) {
	args := m.Called(ctx, id)
	items, _ := args.Get(0).([]model.Stock)
	return items, args.Error(1)
}

func (m *StockRepoMock) Upsert(ctx context.Context, s *model.Stock) error {
	return m.Called(ctx, s).Error(0)
}

func (m *StockRepoMock) DeleteByKey(ctx context.Context, id model.ProductUUID, warehouseID int64) error {
	return m.Called(ctx, id, warehouseID).Error(0)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log *model.AuditLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *AuditRepoMock) List(ctx context.Context, f repo.AuditLogFilter, w pagination.Window) ([]model.AuditLog, error) {
	args := m.Called(ctx, f, w)
	items, _ := args.Get(0).([]model.AuditLog)
	return items, args.Error(1)
}

type BatchMetricsMock struct{ mock.Mock }

func (m *BatchMetricsMock) RecordBatchItem(operation string, ok bool) {
	m.Called(operation, ok)
}

// =====================
// helpers
// =====================

func assertHTTPError(t *testing.T, err error, status int, contains string) {
	t.Helper()
	require.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
	if contains != "" {
		assert.Contains(t, he.Message, contains)
	}
}

func assertBadInput(t *testing.T, err error, contains string) {
	t.Helper()
	assertHTTPError(t, err, http.StatusBadRequest, contains)
}

func mustUUID(t *testing.T, s string) model.ProductUUID {
	t.Helper()
	id, err := model.ParseProductUUID(s)
	require.NoError(t, err)
	return id
}

func int64Ptr(v int64) *int64 { return &v }
