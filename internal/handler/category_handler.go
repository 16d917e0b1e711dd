package handler

import (
	"fmt"
	"net/http"

	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CheckSlugRequest struct {
	Slug string `json:"slug"`
}

type OrderSortRequest struct {
	List []usecase.OrderSortUpdate `json:"list"`
}

type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(g *echo.Group) {
	categories := g.Group("/categories")
	categories.GET("", h.list)
	categories.GET("/short", h.listShort)
	categories.GET("/offset", h.listOffset)
	categories.GET("/offset/short", h.listOffsetShort)
	categories.GET("/:id", h.detail)
	categories.GET("/:id/short", h.detailShort)
	categories.POST("", h.create)
	categories.PUT("/:id", h.update)
	categories.DELETE("/:id", h.delete)
	categories.POST("/check-available-slug", h.checkAvailableSlug)
	categories.POST("/batch/order-sort", h.updateOrderSorts)
}

func (h *CategoryHandler) list(c echo.Context) error {
	p, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, err := h.uc.ListPage(c.Request().Context(), p)
	return respond(c, page, err)
}

func (h *CategoryHandler) listShort(c echo.Context) error {
	p, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, err := h.uc.ListPageShort(c.Request().Context(), p)
	return respond(c, page, err)
}

func (h *CategoryHandler) listOffset(c echo.Context) error {
	o, err := offsetParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.uc.ListOffset(c.Request().Context(), o)
	return respond(c, list, err)
}

func (h *CategoryHandler) listOffsetShort(c echo.Context) error {
	o, err := offsetParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.uc.ListOffsetShort(c.Request().Context(), o)
	return respond(c, list, err)
}

func (h *CategoryHandler) detail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	category, err := h.uc.Get(c.Request().Context(), id)
	return respond(c, category, err)
}

func (h *CategoryHandler) detailShort(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	category, err := h.uc.GetShort(c.Request().Context(), id)
	return respond(c, category, err)
}

func (h *CategoryHandler) create(c echo.Context) error {
	in, err := bindData[usecase.CategoryInput](c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	category, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	in, err := bindData[usecase.CategoryInput](c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	category, err := h.uc.Update(c.Request().Context(), id, in)
	return respond(c, category, err)
}

func (h *CategoryHandler) delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Category with ID %d successfully removed", id)})
}

func (h *CategoryHandler) checkAvailableSlug(c echo.Context) error {
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

func (h *CategoryHandler) updateOrderSorts(c echo.Context) error {
	var req OrderSortRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	statuses, err := h.uc.UpdateOrderSorts(c.Request().Context(), req.List)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ListResponse[usecase.OrderSortStatus]{List: statuses})
}
