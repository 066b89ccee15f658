package models

import "context"

type CategoriesRepository struct {
	records records[Category, *Category]
}

func NewCategoriesRepository(store Store, attempts int) *CategoriesRepository {
	return &CategoriesRepository{
		records: records[Category, *Category]{coll: store.Categories(), attempts: attempts, name: "category"},
	}
}

func (r *CategoriesRepository) CreateCategory(ctx context.Context, category *Category) error {
	return r.records.create(ctx, category)
}

func (r *CategoriesRepository) GetAllCategories(ctx context.Context) ([]Category, error) {
	return r.records.all(ctx)
}

func (r *CategoriesRepository) GetCategory(ctx context.Context, id int) (*Category, error) {
	return r.records.get(ctx, id)
}

func (r *CategoriesRepository) UpdateCategory(ctx context.Context, id int, category *Category) error {
	return r.records.replace(ctx, id, category)
}

// DeleteCategory leaves products pointing at the category untouched.
func (r *CategoriesRepository) DeleteCategory(ctx context.Context, id int) error {
	return r.records.delete(ctx, id)
}
