package handler

import (
	"fmt"
	"net/http"

	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CheckTagNamesRequest struct {
	Name []string `json:"name"`
}

type TagHandler struct {
	uc *usecase.TagUsecase
}

// DI
func NewTagHandler(uc *usecase.TagUsecase) *TagHandler {
	return &TagHandler{uc: uc}
}

func (h *TagHandler) RegisterRoutes(g *echo.Group) {
	tags := g.Group("/tags")
	tags.GET("", h.list)
	tags.GET("/short", h.listShort)
	tags.GET("/offset", h.listOffset)
	tags.GET("/offset/short", h.listOffsetShort)
	tags.GET("/:id", h.detail)
	tags.POST("", h.create)
	tags.PUT("/:id", h.update)
	tags.DELETE("/:id", h.delete)
	tags.POST("/check-available-names", h.checkAvailableNames)
}

func (h *TagHandler) list(c echo.Context) error {
	p, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, err := h.uc.ListPage(c.Request().Context(), p)
	return respond(c, page, err)
}

func (h *TagHandler) listShort(c echo.Context) error {
	p, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, err := h.uc.ListPageShort(c.Request().Context(), p)
	return respond(c, page, err)
}

func (h *TagHandler) listOffset(c echo.Context) error {
	o, err := offsetParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.uc.ListOffset(c.Request().Context(), o)
	return respond(c, list, err)
}

func (h *TagHandler) listOffsetShort(c echo.Context) error {
	o, err := offsetParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.uc.ListOffsetShort(c.Request().Context(), o)
	return respond(c, list, err)
}

func (h *TagHandler) detail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	tag, err := h.uc.Get(c.Request().Context(), id)
	return respond(c, tag, err)
}

func (h *TagHandler) create(c echo.Context) error {
	in, err := bindData[usecase.TagInput](c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	tag, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	in, err := bindData[usecase.TagInput](c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	tag, err := h.uc.Update(c.Request().Context(), id, in)
	return respond(c, tag, err)
}

func (h *TagHandler) delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Tag with ID %d successfully removed", id)})
}

func (h *TagHandler) checkAvailableNames(c echo.Context) error {
	var req CheckTagNamesRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	list, err := h.uc.CheckAvailableNames(c.Request().Context(), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ListResponse[bool]{List: list})
}
