package repository

import (
	"context"

	"catalog/internal/domain/model"
)

type TagRepository interface {
	CRUD[model.Tag, int64, NoFilter]
	ExistsByName(ctx context.Context, name string) (bool, error)
}
