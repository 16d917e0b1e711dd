package repository

import (
	"catalog/internal/domain/model"
)

type BrandRepository interface {
	CRUD[model.Brand, int64, NoFilter]
}
