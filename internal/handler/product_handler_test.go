package handler

import (
	"net/http"
	"testing"

	"catalog/internal/domain/model"
	"catalog/internal/pagination"
	repo "catalog/internal/repository"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const (
	uuidA = "0a8f9e1c2b3d4e5f6a7b8c9d0e1f2a3b"
	uuidB = "1b8f9e1c2b3d4e5f6a7b8c9d0e1f2a3c"
)

type productDeps struct {
	products   *productRepoMock
	categories *categoryRepoMock
	stocks     *stockRepoMock
	audit      *auditRepoMock
}

func newProductTestEcho() (*echo.Echo, productDeps) {
	d := productDeps{
		products:   new(productRepoMock),
		categories: new(categoryRepoMock),
		stocks:     new(stockRepoMock),
		audit:      new(auditRepoMock),
	}
	log := zap.NewNop()
	batch := usecase.NewProductBatchUsecase(d.products, d.categories, d.stocks, d.audit, nil, log)
	uc := usecase.NewProductUsecase(d.products, d.stocks, batch, 10, log)
	return newTestEcho(NewProductHandler(uc, batch)), d
}

func TestProductHandler_ListFilterFromQuery(t *testing.T) {
	e, d := newProductTestEcho()

	published := model.ProductStatusPublished
	want := repo.ProductFilter{
		Query:       "phone",
		Status:      &published,
		CategoryIDs: []int64{1, 2},
		BrandIDs:    []int64{3},
		TagIDs:      []int64{4, 5},
	}
	d.products.On("Count", mock.Anything, want).Return(int64(1), nil)
	d.products.On("Find", mock.Anything, want, pagination.Window{Offset: 5, Limit: 5}).
		Return([]model.Product{{UUID: mustUUID(t, uuidA), Name: "phone x"}}, nil)

	rec := doRequest(e, http.MethodGet,
		"/api/products?query=%20phone%20&status=2&categoryIds=1,2&brandIds[]=3&tagIds=4&tagIds=5&page=2&limit=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	page := decode[pagination.Page[model.Product]](t, rec)
	assert.Len(t, page.List, 1)
	assert.Equal(t, uuidA, page.List[0].UUID.String())
	assert.Equal(t, int64(1), page.Meta.Total)
	d.products.AssertExpectations(t)
}

func TestProductHandler_ListRejectsBadFilter(t *testing.T) {
	e, d := newProductTestEcho()

	for _, target := range []string{
		"/api/products?status=x",
		"/api/products?status=9",
		"/api/products/offset?categoryIds=a",
		"/api/products/offset/short?tagIds=0",
	} {
		rec := doRequest(e, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
	d.products.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductHandler_ByUUIDs(t *testing.T) {
	e, d := newProductTestEcho()
	ids := []model.ProductUUID{mustUUID(t, uuidA), mustUUID(t, uuidB)}
	d.products.On("FindByUUIDs", mock.Anything, ids).Return([]model.Product{{UUID: ids[1]}}, nil)

	rec := doRequest(e, http.MethodGet, "/api/products/by/uuids?uuid="+uuidA+","+uuidB, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	list := decode[pagination.List[model.Product]](t, rec)
	assert.Len(t, list.List, 1)

	rec = doRequest(e, http.MethodGet, "/api/products/by/uuids?uuid=nope", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/products/by/uuids", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_DetailNotFound(t *testing.T) {
	e, d := newProductTestEcho()
	d.products.On("FindByID", mock.Anything, mustUUID(t, uuidA)).Return(model.Product{}, repo.ErrNotFound)

	rec := doRequest(e, http.MethodGet, "/api/products/"+uuidA, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/products/xyz", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_Stocks(t *testing.T) {
	e, d := newProductTestEcho()
	id := mustUUID(t, uuidA)
	d.products.On("FindByID", mock.Anything, id).Return(model.Product{UUID: id}, nil)
	d.stocks.On("ListByProduct", mock.Anything, id).
		Return([]model.Stock{{ID: 1, ProductUUID: id, WarehouseID: 2, Quantity: 5}}, nil)

	rec := doRequest(e, http.MethodGet, "/api/products/"+uuidA+"/stocks", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	list := decode[pagination.List[model.Stock]](t, rec)
	assert.Equal(t, int64(5), list.List[0].Quantity)
}

func TestProductHandler_DeleteArchives(t *testing.T) {
	e, d := newProductTestEcho()
	id := mustUUID(t, uuidA)
	ids := []model.ProductUUID{id}
	d.products.On("UpdateStatus", mock.Anything, ids, model.ProductStatusArchived).Return(int64(1), nil)
	d.products.On("ListStatuses", mock.Anything, ids).
		Return([]model.Product{{UUID: id, Status: model.ProductStatusArchived}}, nil)
	d.audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	rec := doRequest(e, http.MethodDelete, "/api/products/"+uuidA, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"statuses":{"uuids":["`+uuidA+`"],"status":true}}`, rec.Body.String())
	d.products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductHandler_BatchStatus(t *testing.T) {
	e, d := newProductTestEcho()
	ids := []model.ProductUUID{mustUUID(t, uuidA)}
	d.products.On("UpdateStatus", mock.Anything, ids, model.ProductStatusPublished).Return(int64(0), nil)

	rec := doRequest(e, http.MethodPost, "/api/products/batch/status", `{"status":2,"uuids":["`+uuidA+`"]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/products/batch/status", `{"status":0,"uuids":["`+uuidA+`"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/products/batch/status", `{"status":7,"uuids":["`+uuidA+`"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/products/batch/status", `{"status":2,"uuids":["bad"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid body", decode[ErrorResponse](t, rec).Error)

	d.products.AssertNumberOfCalls(t, "UpdateStatus", 1)
}

func TestProductHandler_BatchPrices_PartialFailure(t *testing.T) {
	e, d := newProductTestEcho()
	a, b := mustUUID(t, uuidA), mustUUID(t, uuidB)
	d.products.On("UpdatePrice", mock.Anything, a, int64(1200)).Return(nil)
	d.products.On("UpdatePrice", mock.Anything, b, int64(900)).Return(repo.ErrNotFound)
	d.audit.On("Create", mock.Anything, mock.MatchedBy(func(l *model.AuditLog) bool {
		return l.Action == model.AuditActionUpdatePrice && l.ResourceID == uuidA
	})).Return(nil).Once()

	body := `{"prices":[{"productUuid":"` + uuidA + `","price":1200},{"productUuid":"` + uuidB + `","price":900},{"productUuid":"` + uuidA + `","price":-1}]}`
	rec := doRequest(e, http.MethodPost, "/api/products/batch/prices", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decode[StatusesResponse[usecase.ProductItemStatus]](t, rec)
	assert.Equal(t, []usecase.ProductItemStatus{
		{ProductUUID: a, Status: true},
		{ProductUUID: b, Status: false},
		{ProductUUID: a, Status: false},
	}, got.Statuses)
	d.audit.AssertExpectations(t)
}

func TestProductHandler_BatchStocks(t *testing.T) {
	e, d := newProductTestEcho()
	a := mustUUID(t, uuidA)
	d.products.On("FindByID", mock.Anything, a).Return(model.Product{UUID: a}, nil)
	d.stocks.On("DeleteByKey", mock.Anything, a, int64(1)).Return(nil)
	d.stocks.On("Upsert", mock.Anything, &model.Stock{ProductUUID: a, WarehouseID: 2, Quantity: 30}).Return(nil)
	d.audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := `{"stocks":[{"productUuid":"` + uuidA + `","warehouseId":1,"count":-1},{"productUuid":"` + uuidA + `","warehouseId":2,"count":30}]}`
	rec := doRequest(e, http.MethodPost, "/api/products/batch/stocks", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decode[StatusesResponse[usecase.StockItemStatus]](t, rec)
	assert.Len(t, got.Statuses, 2)
	assert.True(t, got.Statuses[0].Status)
	assert.True(t, got.Statuses[1].Status)
	d.stocks.AssertExpectations(t)
}

func TestProductHandler_CheckAvailableSlug(t *testing.T) {
	e, d := newProductTestEcho()
	d.products.On("ExistsBySlug", mock.Anything, "blue-shirt").Return(true, nil)

	rec := doRequest(e, http.MethodPost, "/api/products/check-available-slug", `{"slug":"Blue-Shirt"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":false}`, rec.Body.String())
}

func productWithUUID(id model.ProductUUID) any {
	return mock.MatchedBy(func(p *model.Product) bool { return p.UUID == id })
}

// 既に属している商品は外れ、属していない商品は追加される
func TestProductHandler_BatchCategory_Toggle(t *testing.T) {
	e, d := newProductTestEcho()
	a, b := mustUUID(t, uuidA), mustUUID(t, uuidB)
	shirts := model.Category{ID: 3, Name: "Shirts", Slug: "shirts"}
	sale := model.Category{ID: 4, Name: "Sale", Slug: "sale"}

	d.categories.On("FindByID", mock.Anything, int64(3)).Return(shirts, nil)
	d.products.On("FindByID", mock.Anything, a).Return(model.Product{UUID: a}, nil)
	d.products.On("FindByID", mock.Anything, b).Return(model.Product{UUID: b, Categories: []model.Category{shirts, sale}}, nil)
	d.products.On("ReplaceCategories", mock.Anything, productWithUUID(a), []model.Category{shirts}).Return(nil).Once()
	d.products.On("ReplaceCategories", mock.Anything, productWithUUID(b), []model.Category{sale}).Return(nil).Once()
	d.audit.On("Create", mock.Anything, mock.MatchedBy(func(l *model.AuditLog) bool {
		return l.Action == model.AuditActionToggleCategory && l.ResourceType == model.AuditResourceProduct
	})).Return(nil).Twice()

	body := `{"list":[{"productUuids":["` + uuidA + `","` + uuidB + `"],"categoryId":3}]}`
	rec := doRequest(e, http.MethodPost, "/api/products/batch/category", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decode[StatusesResponse[usecase.ProductItemStatus]](t, rec)
	assert.Equal(t, []usecase.ProductItemStatus{
		{ProductUUID: a, Status: true},
		{ProductUUID: b, Status: true},
	}, got.Statuses)
	d.products.AssertExpectations(t)
	d.audit.AssertExpectations(t)
}

func TestProductHandler_BatchCategory_Detach(t *testing.T) {
	e, d := newProductTestEcho()
	a, b := mustUUID(t, uuidA), mustUUID(t, uuidB)
	shirts := model.Category{ID: 3, Name: "Shirts", Slug: "shirts"}

	d.categories.On("FindByID", mock.Anything, int64(3)).Return(shirts, nil)
	d.categories.On("FindByID", mock.Anything, int64(8)).Return(model.Category{}, repo.ErrNotFound)
	d.products.On("FindByID", mock.Anything, a).Return(model.Product{UUID: a, Categories: []model.Category{shirts}}, nil)
	d.products.On("FindByID", mock.Anything, b).Return(model.Product{}, repo.ErrNotFound)
	d.products.On("ReplaceCategories", mock.Anything, productWithUUID(a), []model.Category{}).Return(nil).Once()
	d.audit.On("Create", mock.Anything, mock.MatchedBy(func(l *model.AuditLog) bool {
		return l.Action == model.AuditActionDetachCategory && l.ResourceID == uuidA
	})).Return(nil).Once()

	// DELETEでもJSONボディを読む
	body := `{"list":[{"productUuids":["` + uuidA + `","` + uuidB + `"],"categoryId":3},{"productUuids":["` + uuidA + `"],"categoryId":8}]}`
	rec := doRequest(e, http.MethodDelete, "/api/products/batch/category", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decode[StatusesResponse[usecase.ProductItemStatus]](t, rec)
	assert.Equal(t, []usecase.ProductItemStatus{
		{ProductUUID: a, Status: true},
		{ProductUUID: b, Status: false},
		{ProductUUID: a, Status: false},
	}, got.Statuses)
	d.products.AssertExpectations(t)
	d.audit.AssertExpectations(t)
}

func TestProductHandler_BatchCategory_Invalid(t *testing.T) {
	e, d := newProductTestEcho()

	rec := doRequest(e, http.MethodPost, "/api/products/batch/category", `{"list":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/api/products/batch/category", `{"list":[{"productUuids":[],"categoryId":3}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/products/batch/category", `{"list":[{"productUuids":["`+uuidA+`"],"categoryId":0}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	d.categories.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
