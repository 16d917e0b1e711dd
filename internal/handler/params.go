package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"catalog/internal/domain/model"
	"catalog/internal/pagination"

	"github.com/labstack/echo/v4"
)

// dataRequestは作成/更新の {"data": {...}} 形式
type dataRequest[T any] struct {
	Data *T `json:"data"`
}

func bindData[T any](c echo.Context) (T, error) {
	var req dataRequest[T]
	var zero T
	if err := c.Bind(&req); err != nil {
		return zero, errors.New("invalid body")
	}
	if req.Data == nil {
		return zero, errors.New("data is required")
	}
	return *req.Data, nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func pathUUID(c echo.Context) (model.ProductUUID, error) {
	return model.ParseProductUUID(c.Param("uuid"))
}

func pageParams(c echo.Context) (pagination.PageParams, error) {
	return pagination.ParsePage(c.QueryParam("page"), c.QueryParam("limit"))
}

func offsetParams(c echo.Context) (pagination.OffsetParams, error) {
	return pagination.ParseOffset(c.QueryParam("offset"), c.QueryParam("limit"))
}

// queryValues accepts repeated keys, the "key[]" form and comma separated values.
func queryValues(c echo.Context, key string) []string {
	q := c.QueryParams()
	var out []string
	for _, raw := range append(q[key], q[key+"[]"]...) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func queryIDs(c echo.Context, key string) ([]int64, error) {
	values := queryValues(c, key)
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must contain only integers", key)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

var errInvalidStatus = errors.New("status must be one of 0, 1, 2, 3")
