package usecase

import (
	"context"
	"fmt"
	"strings"

	"catalog/internal/domain/model"
	"catalog/internal/logger"
	"catalog/internal/pagination"
	repo "catalog/internal/repository"
	"catalog/internal/validator"

	"go.uber.org/zap"
)

type TagUsecase struct {
	tags         repo.TagRepository
	defaultLimit int
	log          *zap.Logger
}

// DI
func NewTagUsecase(tags repo.TagRepository, defaultLimit int, log *zap.Logger) *TagUsecase {
	return &TagUsecase{tags: tags, defaultLimit: defaultLimit, log: log}
}

type TagInput struct {
	Name string `json:"name"`
}

func (in TagInput) validate() error {
	if err := validator.ValidateName("name", in.Name); err != nil {
		return invalidInput(err)
	}
	return nil
}

// mergeTagは入力のフィールドだけを既存行に反映する
func mergeTag(existing model.Tag, in TagInput) model.Tag {
	existing.Name = strings.TrimSpace(in.Name)
	return existing
}

func (u *TagUsecase) ListPage(ctx context.Context, p pagination.PageParams) (pagination.Page[model.Tag], error) {
	return listPage[model.Tag, model.Tag, repo.NoFilter](ctx, u.log, u.tags, repo.NoFilter{}, p, u.defaultLimit, identity[model.Tag])
}

func (u *TagUsecase) ListPageShort(ctx context.Context, p pagination.PageParams) (pagination.Page[model.TagShort], error) {
	return listPage[model.Tag, model.TagShort, repo.NoFilter](ctx, u.log, u.tags, repo.NoFilter{}, p, u.defaultLimit, model.Tag.Short)
}

func (u *TagUsecase) ListOffset(ctx context.Context, o pagination.OffsetParams) (pagination.List[model.Tag], error) {
	return listOffset[model.Tag, model.Tag, repo.NoFilter](ctx, u.log, u.tags, repo.NoFilter{}, o, u.defaultLimit, identity[model.Tag])
}

func (u *TagUsecase) ListOffsetShort(ctx context.Context, o pagination.OffsetParams) (pagination.List[model.TagShort], error) {
	return listOffset[model.Tag, model.TagShort, repo.NoFilter](ctx, u.log, u.tags, repo.NoFilter{}, o, u.defaultLimit, model.Tag.Short)
}

func (u *TagUsecase) Get(ctx context.Context, id int64) (model.Tag, error) {
	if id <= 0 {
		return model.Tag{}, badInput("invalid tag id")
	}
	t, err := u.tags.FindByID(ctx, id)
	if err != nil {
		return model.Tag{}, mutationError(ctx, u.log, err, fmt.Sprintf("tag %d not found", id), "", "failed to get tag")
	}
	return t, nil
}

func (u *TagUsecase) Create(ctx context.Context, in TagInput) (model.Tag, error) {
	if err := in.validate(); err != nil {
		return model.Tag{}, err
	}

	t := mergeTag(model.Tag{}, in)
	if err := u.tags.Create(ctx, &t); err != nil {
		return model.Tag{}, mutationError(ctx, u.log, err, "", fmt.Sprintf("tag with name %q already exists", t.Name), "failed to create tag")
	}
	logger.FromContext(ctx, u.log).Info("tag created", zap.Int64("tag_id", t.ID))
	return t, nil
}

func (u *TagUsecase) Update(ctx context.Context, id int64, in TagInput) (model.Tag, error) {
	if id <= 0 {
		return model.Tag{}, badInput("invalid tag id")
	}
	if err := in.validate(); err != nil {
		return model.Tag{}, err
	}

	existing, err := u.tags.FindByID(ctx, id)
	if err != nil {
		return model.Tag{}, mutationError(ctx, u.log, err, fmt.Sprintf("tag %d not found", id), "", "failed to get tag")
	}

	t := mergeTag(existing, in)
	if err := u.tags.Save(ctx, &t); err != nil {
		return model.Tag{}, mutationError(ctx, u.log, err, fmt.Sprintf("tag %d not found", id), fmt.Sprintf("tag with name %q already exists", t.Name), "failed to update tag")
	}
	return t, nil
}

func (u *TagUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return badInput("invalid tag id")
	}
	if err := u.tags.Delete(ctx, id); err != nil {
		return mutationError(ctx, u.log, err, fmt.Sprintf("tag %d not found", id), "", "failed to delete tag")
	}
	return nil
}

// CheckAvailableNames reports, in input order, whether each name is still free. Names are checked one by one.
func (u *TagUsecase) CheckAvailableNames(ctx context.Context, names []string) ([]bool, error) {
	if err := validator.ValidateCheckNames(names); err != nil {
		return nil, invalidInput(err)
	}

	out := make([]bool, 0, len(names))
	for _, name := range names {
		exists, err := u.tags.ExistsByName(ctx, strings.TrimSpace(name))
		if err != nil {
			return nil, internal(ctx, u.log, "failed to check tag names", err)
		}
		out = append(out, !exists)
	}
	return out, nil
}
