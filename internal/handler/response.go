package handler

import (
	"net/http"

	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponseは可用性チェックの結果
type StatusResponse struct {
	Status bool `json:"status"`
}

// StatusesResponse wraps the per-item report of a batch operator.
type StatusesResponse[T any] struct {
	Statuses []T `json:"statuses"`
}

// ListResponseは件数メタを持たない一覧
type ListResponse[T any] struct {
	List []T `json:"list"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondはusecaseの結果をそのまま200で返す
func respond[T any](c echo.Context, v T, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}
