package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"garabato-api/internal/model"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// catalogRepository stores the catalogue as a single indented JSON array.
// Every operation reads the whole file and mutations write it back wholesale.
// mu serialises each load-modify-save sequence, so concurrent writers inside
// this process cannot drop each other's writes or reuse an id. Nothing guards
// against a second process writing the same file.
type catalogRepository struct {
	path   string
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewCatalogRepository creates a JSON-file-backed catalogue repository.
// The backing file must already exist; it is never auto-created.
func NewCatalogRepository(path string, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		path:   path,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

// load reads and parses the whole backing file. Callers must hold mu.
func (r *catalogRepository) load() ([]model.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.Error().Err(err).Str("file", r.path).Msg("failed to read catalogue file")
		return nil, fmt.Errorf("failed to read catalogue file %s: %w", r.path, err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		r.logger.Error().Err(err).Str("file", r.path).Msg("failed to parse catalogue file")
		return nil, fmt.Errorf("failed to parse catalogue file %s: %w", r.path, err)
	}

	return products, nil
}

// save serialises the whole catalogue back to the backing file, indented so
// the file stays readable. Callers must hold mu.
func (r *catalogRepository) save(products []model.Product) error {
	data, err := json.MarshalIndent(products, "", "    ")
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to serialise catalogue")
		return fmt.Errorf("failed to serialise catalogue: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		r.logger.Error().Err(err).Str("file", r.path).Msg("failed to write catalogue file")
		return fmt.Errorf("failed to write catalogue file %s: %w", r.path, err)
	}

	return nil
}

// GetAll retrieves every product in stored order.
func (r *catalogRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// GetByID retrieves the first product matching id, or (nil, nil).
func (r *catalogRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}

	r.logger.Debug().Int("product_id", id).Msg("product not found")
	return nil, nil
}

// Create appends a new product and persists the catalogue. The id is
// max(existing ids) + 1, computed under the lock so it cannot be reused by a
// concurrent create.
func (r *catalogRepository) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}

	maxID := 0
	for i := range products {
		if products[i].ID > maxID {
			maxID = products[i].ID
		}
	}

	subcategory := req.Subcategory
	if subcategory == nil {
		subcategory = []model.Subcategory{}
	}

	now := time.Now().UTC()
	product := model.Product{
		ID:          maxID + 1,
		Name:        req.Name,
		Currency:    req.Currency,
		Subcategory: subcategory,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	products = append(products, product)
	if err := r.save(products); err != nil {
		return nil, err
	}

	r.logger.Info().Int("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return &product, nil
}

// Update applies the non-nil request fields to the matching product and
// persists the catalogue. id and created_at never change.
func (r *catalogRepository) Update(ctx context.Context, id int, req *model.UpdateProductRequest) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}

		if req.Name != nil {
			products[i].Name = *req.Name
		}
		if req.Currency != nil {
			products[i].Currency = *req.Currency
		}
		if req.Subcategory != nil {
			products[i].Subcategory = *req.Subcategory
		}
		products[i].UpdatedAt = time.Now().UTC()

		if err := r.save(products); err != nil {
			return nil, err
		}

		r.logger.Info().Int("product_id", id).Msg("product updated")
		p := products[i]
		return &p, nil
	}

	r.logger.Debug().Int("product_id", id).Msg("product not found for update")
	return nil, model.ErrProductNotFound
}

// Delete removes the product with the given id and persists the catalogue.
func (r *catalogRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}

		products = append(products[:i], products[i+1:]...)
		if err := r.save(products); err != nil {
			return err
		}

		r.logger.Info().Int("product_id", id).Msg("product deleted")
		return nil
	}

	r.logger.Debug().Int("product_id", id).Msg("product not found for delete")
	return model.ErrProductNotFound
}
