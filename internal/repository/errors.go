package repository

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	// 制約違反。ConstraintErrorに包んで返す
	ErrDuplicate      = errors.New("duplicate key")
	ErrForeignKey     = errors.New("foreign key violation")
	ErrCheckViolation = errors.New("check constraint violation")
)

// ConstraintError carries the name of the violated constraint next to one of the sentinels above.
type ConstraintError struct {
	Err        error
	Constraint string
	Detail     string
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Constraint)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// ConstraintName returns the violated constraint of err, or "" when err is not a ConstraintError.
func ConstraintName(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint
	}
	return ""
}
