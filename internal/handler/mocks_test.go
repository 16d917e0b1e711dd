package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog/internal/domain/model"
	"catalog/internal/pagination"
	repo "catalog/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mocks
// =====================

type tagRepoMock struct{ mock.Mock }

func (m *tagRepoMock) Find(ctx context.Context, f repo.NoFilter, w pagination.Window) ([]model.Tag, error) {
	args := m.Called(ctx, f, w)
	items, _ := args.Get(0).([]model.Tag)
	return items, args.Error(1)
}

func (m *tagRepoMock) Count(ctx context.Context, f repo.NoFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *tagRepoMock) FindByID(ctx context.Context, id int64) (model.Tag, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(model.Tag)
	return t, args.Error(1)
}

func (m *tagRepoMock) Create(ctx context.Context, t *model.Tag) error {
	return m.Called(ctx, t).Error(0)
}

func (m *tagRepoMock) Save(ctx context.Context, t *model.Tag) error {
	return m.Called(ctx, t).Error(0)
}

func (m *tagRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *tagRepoMock) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

var _ repo.TagRepository = (*tagRepoMock)(nil)

type brandRepoMock struct{ mock.Mock }

func (m *brandRepoMock) Find(ctx context.Context, f repo.NoFilter, w pagination.Window) ([]model.Brand, error) {
	args := m.Called(ctx, f, w)
	items, _ := args.Get(0).([]model.Brand)
	return items, args.Error(1)
}

func (m *brandRepoMock) Count(ctx context.Context, f repo.NoFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *brandRepoMock) FindByID(ctx context.Context, id int64) (model.Brand, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Brand)
	return b, args.Error(1)
}

func (m *brandRepoMock) Create(ctx context.Context, b *model.Brand) error {
	return m.Called(ctx, b).Error(0)
}

func (m *brandRepoMock) Save(ctx context.Context, b *model.Brand) error {
	return m.Called(ctx, b).Error(0)
}

func (m *brandRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.BrandRepository = (*brandRepoMock)(nil)

type categoryRepoMock struct{ mock.Mock }

func (m *categoryRepoMock) Find(ctx context.Context, f repo.NoFilter, w pagination.Window) ([]model.Category, error) {
	args := m.Called(ctx, f, w)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *categoryRepoMock) Count(ctx context.Context, f repo.NoFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *categoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *categoryRepoMock) Create(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *categoryRepoMock) Save(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *categoryRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *categoryRepoMock) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *categoryRepoMock) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *categoryRepoMock) UpdateOrderSort(ctx context.Context, id int64, orderSort int) error {
	return m.Called(ctx, id, orderSort).Error(0)
}

var _ repo.CategoryRepository = (*categoryRepoMock)(nil)

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) Find(ctx context.Context, f repo.ProductFilter, w pagination.Window) ([]model.Product, error) {
	args := m.Called(ctx, f, w)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) Count(ctx context.Context, f repo.ProductFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *productRepoMock) FindByID(ctx context.Context, id model.ProductUUID) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) Create(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *productRepoMock) Save(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *productRepoMock) Delete(ctx context.Context, id model.ProductUUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *productRepoMock) FindByUUIDs(ctx context.Context, ids []model.ProductUUID) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) UpdateStatus(ctx context.Context, ids []model.ProductUUID, status model.ProductStatus) (int64, error) {
	args := m.Called(ctx, ids, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *productRepoMock) ListStatuses(ctx context.Context, ids []model.ProductUUID) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) UpdatePrice(ctx context.Context, id model.ProductUUID, price int64) error {
	return m.Called(ctx, id, price).Error(0)
}

func (m *productRepoMock) ReplaceCategories(ctx context.Context, p *model.Product, categories []model.Category) error {
	return m.Called(ctx, p, categories).Error(0)
}

func (m *productRepoMock) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

var _ repo.ProductRepository = (*productRepoMock)(nil)

type stockRepoMock struct{ mock.Mock }

func (m *stockRepoMock) ListByProduct(ctx context.Context, id model.ProductUUID) ([]model.Stock, error) {
	args := m.Called(ctx, id)
	items, _ := args.Get(0).([]model.Stock)
	return items, args.Error(1)
}

func (m *stockRepoMock) Upsert(ctx context.Context, s *model.Stock) error {
	return m.Called(ctx, s).Error(0)
}

func (m *stockRepoMock) DeleteByKey(ctx context.Context, id model.ProductUUID, warehouseID int64) error {
	return m.Called(ctx, id, warehouseID).Error(0)
}

var _ repo.StockRepository = (*stockRepoMock)(nil)

type auditRepoMock struct{ mock.Mock }

func (m *auditRepoMock) Create(ctx context.Context, l *model.AuditLog) error {
	return m.Called(ctx, l).Error(0)
}

func (m *auditRepoMock) List(ctx context.Context, f repo.AuditLogFilter, w pagination.Window) ([]model.AuditLog, error) {
	args := m.Called(ctx, f, w)
	items, _ := args.Get(0).([]model.AuditLog)
	return items, args.Error(1)
}

var _ repo.AuditLogRepository = (*auditRepoMock)(nil)

// =====================
// helper
// =====================

type routes interface {
	RegisterRoutes(g *echo.Group)
}

func newTestEcho(h routes) *echo.Echo {
	e := echo.New()
	h.RegisterRoutes(e.Group("/api"))
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func mustUUID(t *testing.T, s string) model.ProductUUID {
	t.Helper()
	id, err := model.ParseProductUUID(s)
	require.NoError(t, err)
	return id
}
