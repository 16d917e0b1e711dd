// Package pagination implements the page and offset windows shared by every list endpoint.
package pagination

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidPage   = errors.New("page must be an integer of at least 1")
	ErrInvalidOffset = errors.New("offset must be an integer of at least 0")
	ErrInvalidLimit  = errors.New("limit must be an integer of at least 1")
)

// Windowはstoreに渡すskip/take
type Window struct {
	Offset int
	Limit  int
}

// PageParams addresses a page by number. Zero values mean "not supplied".
type PageParams struct {
	Page  int
	Limit int
}

// OffsetParams addresses rows by offset. A zero Limit means "not supplied".
type OffsetParams struct {
	Offset int
	Limit  int
}

// WithDefaults fills unset fields.
func (p PageParams) WithDefaults(defaultLimit int) PageParams {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}
	return p
}

func (p PageParams) Validate() error {
	if p.Page < 1 {
		return ErrInvalidPage
	}
	if p.Limit < 1 {
		return ErrInvalidLimit
	}
	return nil
}

// Windowはskip=(page-1)*limit
func (p PageParams) Window() Window {
	return Window{Offset: (p.Page - 1) * p.Limit, Limit: p.Limit}
}

func (p OffsetParams) WithDefaults(defaultLimit int) OffsetParams {
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}
	return p
}

func (p OffsetParams) Validate() error {
	if p.Offset < 0 {
		return ErrInvalidOffset
	}
	if p.Limit < 1 {
		return ErrInvalidLimit
	}
	return nil
}

func (p OffsetParams) Window() Window {
	return Window{Offset: p.Offset, Limit: p.Limit}
}

// Meta is the envelope returned with every page-mode list.
type Meta struct {
	PerPage         int   `json:"perPage"`
	CurrentPage     int   `json:"currentPage"`
	Total           int64 `json:"total"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewMeta computes the envelope for p, which must already be valid.
func NewMeta(p PageParams, total int64) Meta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Meta{
		PerPage:         p.Limit,
		CurrentPage:     p.Page,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1,
	}
}

// Page is the page-mode response body.
type Page[T any] struct {
	List []T `json:"list"`
	Meta Meta `json:"meta"`
}

// List is the offset-mode response body. It never carries a Meta.
type List[T any] struct {
	List []T `json:"list"`
}

func NewPage[T any](items []T, p PageParams, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{List: items, Meta: NewMeta(p, total)}
}

func NewList[T any](items []T) List[T] {
	if items == nil {
		items = []T{}
	}
	return List[T]{List: items}
}

// Map converts every item with fn.
func Map[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}

// ParsePage reads raw query values. Empty strings stay zero so defaults can be applied later.
func ParsePage(page, limit string) (PageParams, error) {
	var p PageParams
	var err error
	if p.Page, err = parseMin(page, 1, ErrInvalidPage); err != nil {
		return PageParams{}, err
	}
	if p.Limit, err = parseMin(limit, 1, ErrInvalidLimit); err != nil {
		return PageParams{}, err
	}
	return p, nil
}

// ParseOffset reads raw query values for offset mode.
func ParseOffset(offset, limit string) (OffsetParams, error) {
	var p OffsetParams
	var err error
	if p.Offset, err = parseMin(offset, 0, ErrInvalidOffset); err != nil {
		return OffsetParams{}, err
	}
	if p.Limit, err = parseMin(limit, 1, ErrInvalidLimit); err != nil {
		return OffsetParams{}, err
	}
	return p, nil
}

func parseMin(raw string, min int, sentinel error) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", sentinel, raw)
	}
	if v < min {
		return 0, sentinel
	}
	return v, nil
}
