package handler

import (
	"net/http"
	"strconv"

	"catalog/internal/domain/model"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UpdateStatusRequest struct {
	Status model.ProductStatus  `json:"status"`
	UUIDs  []model.ProductUUID `json:"uuids"`
}

type UpdatePricesRequest struct {
	Prices []usecase.PriceUpdate `json:"prices"`
}

type UpdateStocksRequest struct {
	Stocks []usecase.StockUpdate `json:"stocks"`
}

type CategoryToggleRequest struct {
	List []usecase.CategoryToggle `json:"list"`
}

// /products の管理API
type ProductHandler struct {
	uc    *usecase.ProductUsecase
	batch *usecase.ProductBatchUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, batch *usecase.ProductBatchUsecase) *ProductHandler {
	return &ProductHandler{uc: uc, batch: batch}
}

func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	products := g.Group("/products")
	products.GET("", h.list)
	products.GET("/short", h.listShort)
	products.GET("/offset", h.listOffset)
	products.GET("/offset/short", h.listOffsetShort)
	products.GET("/by/uuids", h.byUUIDs)
	products.GET("/:uuid", h.detail)
	products.GET("/:uuid/stocks", h.stocks)
	products.POST("", h.create)
	products.PUT("/:uuid", h.update)
	products.DELETE("/:uuid", h.delete)

	products.POST("/batch/status", h.updateStatus)
	products.POST("/batch/prices", h.updatePrices)
	products.POST("/batch/stocks", h.updateStocks)
	products.POST("/batch/category", h.attachCategory)
	products.DELETE("/batch/category", h.detachCategory)
	products.POST("/check-available-slug", h.checkAvailableSlug)
}

// 一覧の絞り込み条件をqueryから読む
func productFilter(c echo.Context) (usecase.ProductListFilter, error) {
	f := usecase.ProductListFilter{Query: c.QueryParam("query")}

	if v := c.QueryParam("status"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, errInvalidStatus
		}
		status := model.ProductStatus(n)
		f.Status = &status
	}

	var err error
	if f.CategoryIDs, err = queryIDs(c, "categoryIds"); err != nil {
		return f, err
	}
	if f.BrandIDs, err = queryIDs(c, "brandIds"); err != nil {
		return f, err
	}
	if f.TagIDs, err = queryIDs(c, "tagIds"); err != nil {
		return f, err
	}
	return f, nil
}

func (h *ProductHandler) list(c echo.Context) error {
	f, err := productFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	p, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, err := h.uc.ListPage(c.Request().Context(), f, p)
	return respond(c, page, err)
}

func (h *ProductHandler) listShort(c echo.Context) error {
	f, err := productFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	p, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, err := h.uc.ListPageShort(c.Request().Context(), f, p)
	return respond(c, page, err)
}

func (h *ProductHandler) listOffset(c echo.Context) error {
	f, err := productFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	o, err := offsetParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.uc.ListOffset(c.Request().Context(), f, o)
	return respond(c, list, err)
}

func (h *ProductHandler) listOffsetShort(c echo.Context) error {
	f, err := productFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	o, err := offsetParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.uc.ListOffsetShort(c.Request().Context(), f, o)
	return respond(c, list, err)
}

// ?uuid=..&uuid=.. の形
func (h *ProductHandler) byUUIDs(c echo.Context) error {
	ids, err := model.ParseProductUUIDs(queryValues(c, "uuid"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.uc.GetByUUIDs(c.Request().Context(), ids)
	return respond(c, list, err)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	p, err := h.uc.Get(c.Request().Context(), id)
	return respond(c, p, err)
}

func (h *ProductHandler) stocks(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.uc.Stocks(c.Request().Context(), id)
	return respond(c, list, err)
}

func (h *ProductHandler) create(c echo.Context) error {
	in, err := bindData[usecase.ProductInput](c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	p, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	in, err := bindData[usecase.ProductInput](c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	p, err := h.uc.Update(c.Request().Context(), id, in)
	return respond(c, p, err)
}

// Archivedへの変更。bulk statusと同じレスポンス
func (h *ProductHandler) delete(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	res, err := h.uc.Delete(c.Request().Context(), id)
	return respond(c, res, err)
}

func (h *ProductHandler) checkAvailableSlug(c echo.Context) error {
	var req CheckSlugRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	ok, err := h.uc.CheckAvailableSlug(c.Request().Context(), req.Slug)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: ok})
}

func (h *ProductHandler) updateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if !req.Status.Valid() {
		return badRequest(c, errInvalidStatus.Error())
	}
	res, err := h.batch.UpdateStatus(c.Request().Context(), req.UUIDs, req.Status)
	return respond(c, res, err)
}

func (h *ProductHandler) updatePrices(c echo.Context) error {
	var req UpdatePricesRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	statuses, err := h.batch.UpdatePrices(c.Request().Context(), req.Prices)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, StatusesResponse[usecase.ProductItemStatus]{Statuses: statuses})
}

func (h *ProductHandler) updateStocks(c echo.Context) error {
	var req UpdateStocksRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	statuses, err := h.batch.UpdateStocks(c.Request().Context(), req.Stocks)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, StatusesResponse[usecase.StockItemStatus]{Statuses: statuses})
}

func (h *ProductHandler) attachCategory(c echo.Context) error {
	var req CategoryToggleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	statuses, err := h.batch.AttachCategory(c.Request().Context(), req.List)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, StatusesResponse[usecase.ProductItemStatus]{Statuses: statuses})
}

func (h *ProductHandler) detachCategory(c echo.Context) error {
	var req CategoryToggleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	statuses, err := h.batch.DetachCategory(c.Request().Context(), req.List)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, StatusesResponse[usecase.ProductItemStatus]{Statuses: statuses})
}
