package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"catalog/internal/logger"
	repo "catalog/internal/repository"
	"catalog/internal/validator"

	"go.uber.org/zap"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

func badInput(message string) error {
	return NewHTTPError(http.StatusBadRequest, message)
}

func notFound(message string) error {
	return NewHTTPError(http.StatusNotFound, message)
}

func conflict(message string) error {
	return NewHTTPError(http.StatusConflict, message)
}

// invalidInputはvalidatorのエラーを400にする
func invalidInput(err error) error {
	return badInput(validator.Message(err))
}

// internal logs the cause and hides it from the caller.
func internal(ctx context.Context, log *zap.Logger, message string, err error) error {
	logger.FromContext(ctx, log).Error(message, zap.Error(err))
	return NewHTTPError(http.StatusInternalServerError, message)
}

// mutationErrorは作成/更新/削除の失敗を分類する
func mutationError(ctx context.Context, log *zap.Logger, err error, notFoundMsg, conflictMsg, action string) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return notFound(notFoundMsg)
	case errors.Is(err, repo.ErrDuplicate):
		return conflict(conflictMsg)
	case errors.Is(err, repo.ErrForeignKey):
		return badInput("referenced resource does not exist")
	case errors.Is(err, repo.ErrCheckViolation):
		return badInput(fmt.Sprintf("constraint %s violated", repo.ConstraintName(err)))
	default:
		return internal(ctx, log, action, err)
	}
}
