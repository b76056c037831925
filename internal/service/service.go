package service

import (
	"context"

	"garabato-api/internal/model"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// GetAll retrieves the full product collection.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by id.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Create adds a new product with a server-assigned id and timestamps.
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)

	// Update replaces the replaceable fields of an existing product.
	Update(ctx context.Context, id int, req *model.UpdateProductRequest) (*model.Product, error)

	// Delete removes a product by id.
	Delete(ctx context.Context, id int) error
}
