package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"garabato-api/internal/paypal"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// PayPalHandler handles payment HTTP requests.
type PayPalHandler struct {
	gateway paypal.Gateway
	logger  zerolog.Logger
}

// NewPayPalHandler creates a new payment handler.
func NewPayPalHandler(gateway paypal.Gateway, logger zerolog.Logger) *PayPalHandler {
	return &PayPalHandler{
		gateway: gateway,
		logger:  logger.With().Str("handler", "paypal").Logger(),
	}
}

// CreateOrderRequest is the POST /paypal/create-order body.
type CreateOrderRequest struct {
	Products []paypal.OrderProduct `json:"products" validate:"required,min=1"`
}

// CreateOrder handles POST /paypal/create-order.
//
//	@Summary		Create a payment order
//	@Description	Builds a provider order from the submitted line items and returns the provider's order object
//	@Tags			paypal
//	@Accept			json
//	@Produce		json
//	@Param			body	body		handler.CreateOrderRequest	true	"Line items"
//	@Success		200		{object}	object
//	@Failure		400		{object}	handler.MessageResponse
//	@Failure		500		{object}	handler.MessageResponse
//	@Router			/paypal/create-order [post]
func (h *PayPalHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", h.logger)
		return
	}

	// Reject an empty order before any provider traffic.
	if err := validateStruct(req); err != nil {
		writeError(w, http.StatusBadRequest, "No products sent", h.logger)
		return
	}

	result, err := h.gateway.CreateOrder(r.Context(), req.Products)
	if err != nil {
		if errors.Is(err, paypal.ErrTokenUnavailable) {
			writeError(w, http.StatusInternalServerError, "Error getting PayPal token", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Error creating PayPal order", h.logger)
		return
	}

	if result.Status == http.StatusCreated {
		writeRaw(w, http.StatusOK, result.Body)
		return
	}

	h.logger.Warn().Int("provider_status", result.Status).Msg("provider rejected order creation")
	writeJSON(w, result.Status, MessageResponse{Message: "Error creating PayPal order", Error: result.Body})
}

// CaptureOrder handles POST /paypal/capture-order/{order_id}.
//
//	@Summary		Capture a payment order
//	@Tags			paypal
//	@Produce		json
//	@Param			order_id	path		string	true	"Provider order id"
//	@Success		200			{object}	object
//	@Failure		500			{object}	handler.MessageResponse
//	@Router			/paypal/capture-order/{order_id} [post]
func (h *PayPalHandler) CaptureOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	result, err := h.gateway.CaptureOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, paypal.ErrTokenUnavailable) {
			writeError(w, http.StatusInternalServerError, "Error getting PayPal token", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Error capturing payment", h.logger)
		return
	}

	if result.Status == http.StatusCreated {
		writeRaw(w, http.StatusOK, result.Body)
		return
	}

	h.logger.Warn().Int("provider_status", result.Status).Str("order_id", orderID).Msg("provider rejected capture")
	writeJSON(w, result.Status, MessageResponse{Message: "Error capturing payment", Error: result.Body})
}
