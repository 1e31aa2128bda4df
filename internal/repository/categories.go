package repository

import (
	"context"
	"log/slog"

	"github.com/hirestack/resume-intake/gen/ent"
	"github.com/hirestack/resume-intake/gen/ent/category"
	"github.com/hirestack/resume-intake/internal/entity"
	"github.com/hirestack/resume-intake/internal/utils"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	GetOrCreate(ctx context.Context, name string) (*entity.Category, error)
}

type categoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCategoryRepository(client *ent.Client, logger *slog.Logger) CategoryRepository {
	return &categoryRepository{
		client: client,
		logger: logger,
	}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := r.client.Category.
		Query().
		Order(category.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Category, len(categories))
	for i, cat := range categories {
		result[i] = utils.ToCategory(cat)
	}
	return result, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	cat, err := r.client.Category.Query().
		Where(category.Name(name)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToCategory(cat), nil
}

// GetOrCreate returns the category row for a classifier label, creating
// it on first sight. Labels come from a fixed table so the set stays small.
func (r *categoryRepository) GetOrCreate(ctx context.Context, name string) (*entity.Category, error) {
	cat, err := r.client.Category.Query().
		Where(category.Name(name)).
		Only(ctx)
	if err == nil {
		return utils.ToCategory(cat), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	cat, err = r.client.Category.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		// lost a race with a concurrent insert; read it back
		if ent.IsConstraintError(err) {
			cat, rerr := r.client.Category.Query().
				Where(category.Name(name)).
				Only(ctx)
			if rerr != nil {
				return nil, rerr
			}
			return utils.ToCategory(cat), nil
		}
		r.logger.Error("failed to create category", "name", name, "error", err)
		return nil, err
	}
	return utils.ToCategory(cat), nil
}
