package models

import "context"

type ProductsRepository struct {
	records records[Product, *Product]
}

func NewProductsRepository(store Store, attempts int) *ProductsRepository {
	return &ProductsRepository{
		records: records[Product, *Product]{coll: store.Products(), attempts: attempts, name: "product"},
	}
}

// CreateProduct numbers the variations 1..n before storing the product.
func (r *ProductsRepository) CreateProduct(ctx context.Context, product *Product) error {
	if product.HasVariations && product.Variations != nil {
		NumberVariations(product.Variations)
	}
	return r.records.create(ctx, product)
}

func (r *ProductsRepository) GetAllProducts(ctx context.Context) ([]Product, error) {
	return r.records.all(ctx)
}

func (r *ProductsRepository) GetProduct(ctx context.Context, id int) (*Product, error) {
	return r.records.get(ctx, id)
}

// UpdateProduct stores the product exactly as given, variation ids included.
func (r *ProductsRepository) UpdateProduct(ctx context.Context, id int, product *Product) error {
	return r.records.replace(ctx, id, product)
}

func (r *ProductsRepository) DeleteProduct(ctx context.Context, id int) error {
	return r.records.delete(ctx, id)
}
