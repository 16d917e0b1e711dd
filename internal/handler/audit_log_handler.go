package handler

import (
	"fmt"
	"time"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuditLogHandler struct {
	uc *usecase.AuditLogUsecase
}

func NewAuditLogHandler(uc *usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{uc: uc}
}

func (h *AuditLogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/audit-logs", h.list)
}

// GET /audit-logs?action=&resourceType=&resourceId=&from=&to=&offset=&limit=
func (h *AuditLogHandler) list(c echo.Context) error {
	o, err := offsetParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var f repo.AuditLogFilter
	if v := c.QueryParam("action"); v != "" {
		action := model.AuditAction(v)
		f.Action = &action
	}
	if v := c.QueryParam("resourceType"); v != "" {
		rt := model.AuditResourceType(v)
		f.ResourceType = &rt
	}
	f.ResourceID = c.QueryParam("resourceId")
	if f.CreatedFrom, err = queryTime(c, "from"); err != nil {
		return badRequest(c, err.Error())
	}
	if f.CreatedTo, err = queryTime(c, "to"); err != nil {
		return badRequest(c, err.Error())
	}

	list, err := h.uc.List(c.Request().Context(), f, o)
	return respond(c, list, err)
}

// RFC3339。空ならnil
func queryTime(c echo.Context, key string) (*time.Time, error) {
	v := c.QueryParam(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("%s must be an RFC3339 timestamp", key)
	}
	return &t, nil
}
