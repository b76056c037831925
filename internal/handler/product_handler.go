package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"garabato-api/internal/model"
	"garabato-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /products/.
//
//	@Summary		List products
//	@Description	Returns the full product catalogue
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}	model.Product
//	@Router			/products/ [get]
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load products", h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /products/{id}.
//
//	@Summary		Get a product
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Product id"
//	@Success		200	{object}	model.Product
//	@Failure		404	{object}	handler.MessageResponse
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /products/. Admin-only.
//
//	@Summary		Add a product
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			X-Admin-Username	header		string						true	"Admin username"
//	@Param			X-Admin-Password	header		string						true	"Admin password"
//	@Param			body				body		model.CreateProductRequest	true	"Product fields"
//	@Success		201					{object}	handler.MessageResponse
//	@Failure		403					{object}	handler.MessageResponse
//	@Router			/products/ [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save product", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "Product added", ID: product.ID})
}

// Update handles PUT /products/{id}. Admin-only.
//
//	@Summary		Update a product
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			X-Admin-Username	header		string						true	"Admin username"
//	@Param			X-Admin-Password	header		string						true	"Admin password"
//	@Param			id					path		int							true	"Product id"
//	@Param			body				body		model.UpdateProductRequest	true	"Replaceable fields"
//	@Success		200					{object}	handler.MessageResponse
//	@Failure		403					{object}	handler.MessageResponse
//	@Failure		404					{object}	handler.MessageResponse
//	@Router			/products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found", h.logger)
		return
	}

	var req model.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", h.logger)
		return
	}

	if _, err := h.service.Update(r.Context(), id, &req); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Product updated successfully"})
}

// Delete handles DELETE /products/{id}. Admin-only.
//
//	@Summary		Delete a product
//	@Tags			products
//	@Produce		json
//	@Param			X-Admin-Username	header		string	true	"Admin username"
//	@Param			X-Admin-Password	header		string	true	"Admin password"
//	@Param			id					path		int		true	"Product id"
//	@Success		200					{object}	handler.MessageResponse
//	@Failure		403					{object}	handler.MessageResponse
//	@Failure		404					{object}	handler.MessageResponse
//	@Router			/products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}
