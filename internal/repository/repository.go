package repository

import (
	"context"

	"garabato-api/internal/model"
)

// CatalogRepository defines the interface for catalogue data access operations.
type CatalogRepository interface {
	// GetAll retrieves every product in stored order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its id.
	// Returns (nil, nil) when no product matches.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Create appends a new product, assigning the next id and both
	// timestamps, and persists the catalogue.
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)

	// Update applies the non-nil fields of the request to the matching
	// product, refreshes updated_at and persists the catalogue.
	// Returns model.ErrProductNotFound when no product matches.
	Update(ctx context.Context, id int, req *model.UpdateProductRequest) (*model.Product, error)

	// Delete removes the product with the given id and persists the
	// catalogue. Returns model.ErrProductNotFound when no product matches.
	Delete(ctx context.Context, id int) error
}
