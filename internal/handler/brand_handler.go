package handler

import (
	"fmt"
	"net/http"

	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type BrandHandler struct {
	uc *usecase.BrandUsecase
}

func NewBrandHandler(uc *usecase.BrandUsecase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

func (h *BrandHandler) RegisterRoutes(g *echo.Group) {
	brands := g.Group("/brands")
	brands.GET("", h.list)
	brands.GET("/short", h.listShort)
	brands.GET("/offset", h.listOffset)
	brands.GET("/offset/short", h.listOffsetShort)
	brands.GET("/:id", h.detail)
	brands.GET("/:id/short", h.detailShort)
	brands.POST("", h.create)
	brands.PUT("/:id", h.update)
	brands.DELETE("/:id", h.delete)
}

func (h *BrandHandler) list(c echo.Context) error {
	p, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, err := h.uc.ListPage(c.Request().Context(), p)
	return respond(c, page, err)
}

func (h *BrandHandler) listShort(c echo.Context) error {
	p, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, err := h.uc.ListPageShort(c.Request().Context(), p)
	return respond(c, page, err)
}

func (h *BrandHandler) listOffset(c echo.Context) error {
	o, err := offsetParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.uc.ListOffset(c.Request().Context(), o)
	return respond(c, list, err)
}

func (h *BrandHandler) listOffsetShort(c echo.Context) error {
	o, err := offsetParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.uc.ListOffsetShort(c.Request().Context(), o)
	return respond(c, list, err)
}

func (h *BrandHandler) detail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	brand, err := h.uc.Get(c.Request().Context(), id)
	return respond(c, brand, err)
}

func (h *BrandHandler) detailShort(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	brand, err := h.uc.GetShort(c.Request().Context(), id)
	return respond(c, brand, err)
}

func (h *BrandHandler) create(c echo.Context) error {
	in, err := bindData[usecase.BrandInput](c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	brand, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, brand)
}

func (h *BrandHandler) update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	in, err := bindData[usecase.BrandInput](c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	brand, err := h.uc.Update(c.Request().Context(), id, in)
	return respond(c, brand, err)
}

func (h *BrandHandler) delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Brand with ID %d successfully removed", id)})
}
