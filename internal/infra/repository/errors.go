package repository

import (
	"errors"

	repo "catalog/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQLのSQLSTATE
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translateError maps gorm/pgx errors onto the repository sentinels. Unknown errors pass through.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return &repo.ConstraintError{Err: repo.ErrDuplicate, Constraint: pgErr.ConstraintName, Detail: pgErr.Detail}
	case pgForeignKeyViolation:
		return &repo.ConstraintError{Err: repo.ErrForeignKey, Constraint: pgErr.ConstraintName, Detail: pgErr.Detail}
	case pgCheckViolation:
		return &repo.ConstraintError{Err: repo.ErrCheckViolation, Constraint: pgErr.ConstraintName, Detail: pgErr.Detail}
	}
	return err
}
