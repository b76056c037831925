package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"garabato-api/internal/config"
	"garabato-api/internal/handler"
	"garabato-api/internal/model"
	"garabato-api/internal/paypal"
	"garabato-api/internal/repository"
	"garabato-api/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGateway satisfies paypal.Gateway without network traffic.
type stubGateway struct {
	result      *paypal.Result
	err         error
	createCalls int
}

func (s *stubGateway) CreateOrder(_ context.Context, _ []paypal.OrderProduct) (*paypal.Result, error) {
	s.createCalls++
	return s.result, s.err
}

func (s *stubGateway) CaptureOrder(_ context.Context, _ string) (*paypal.Result, error) {
	return s.result, s.err
}

var adminCfg = config.AdminConfig{Username: "admin", Password: "secret"}

func newTestApp(t *testing.T, gateway paypal.Gateway) (http.Handler, string) {
	t.Helper()

	seed := []model.Product{
		{
			ID:       1,
			Name:     "Botanical prints",
			Currency: "USD",
			Subcategory: []model.Subcategory{
				{Name: "A4 print", Price: 18},
			},
			CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	path := filepath.Join(t.TempDir(), "products.json")
	data, err := json.MarshalIndent(seed, "", "    ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	logger := zerolog.Nop()
	repo := repository.NewCatalogRepository(path, logger)
	productHandler := handler.NewProductHandler(service.NewProductService(repo, logger), logger)
	paypalHandler := handler.NewPayPalHandler(gateway, logger)

	return New(productHandler, paypalHandler, adminCfg, logger), path
}

func adminRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("X-Admin-Username", "admin")
	req.Header.Set("X-Admin-Password", "secret")
	return req
}

func do(app http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func TestRouter_ListProducts(t *testing.T) {
	app, _ := newTestApp(t, &stubGateway{})

	w := do(app, httptest.NewRequest(http.MethodGet, "/products/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var products []model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Botanical prints", products[0].Name)
}

func TestRouter_CreateThenGetRoundTrip(t *testing.T) {
	app, _ := newTestApp(t, &stubGateway{})

	body := `{
		"name": "Tote bag",
		"currency": "USD",
		"subcategory": [{"name": "Cotton tote", "img": "https://example.com/tote.jpg", "description": "Canvas", "price": 14.5}]
	}`
	w := do(app, adminRequest(http.MethodPost, "/products/", body))
	require.Equal(t, http.StatusCreated, w.Code)

	var created handler.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Product added", created.Message)
	assert.Equal(t, 2, created.ID, "id is max(existing) + 1")

	w = do(app, httptest.NewRequest(http.MethodGet, "/products/2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var product model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, "Tote bag", product.Name)
	assert.Equal(t, "USD", product.Currency)
	require.Len(t, product.Subcategory, 1)
	assert.Equal(t, "Cotton tote", product.Subcategory[0].Name)
	assert.True(t, product.CreatedAt.Equal(product.UpdatedAt))
}

func TestRouter_MutationsRequireAdmin(t *testing.T) {
	app, path := newTestApp(t, &stubGateway{})

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	tests := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodPost, "/products/", `{"name": "Sneaky"}`},
		{http.MethodPut, "/products/1", `{"name": "Sneaky"}`},
		{http.MethodDelete, "/products/1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("X-Admin-Username", "admin")
			req.Header.Set("X-Admin-Password", "nope")

			w := do(app, req)
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.JSONEq(t, `{"message": "Access denied"}`, w.Body.String())
		})
	}

	// No rejected request may touch the file.
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// Reads stay open without credentials.
	w := do(app, httptest.NewRequest(http.MethodGet, "/products/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_UpdateMissingProduct(t *testing.T) {
	app, path := newTestApp(t, &stubGateway{})

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	w := do(app, adminRequest(http.MethodPut, "/products/999", `{"name": "ghost"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRouter_DeleteIsIdempotentInEffect(t *testing.T) {
	app, _ := newTestApp(t, &stubGateway{})

	w := do(app, adminRequest(http.MethodDelete, "/products/1", ""))
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(app, adminRequest(http.MethodDelete, "/products/1", ""))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_PayPalRoutes(t *testing.T) {
	gateway := &stubGateway{
		result: &paypal.Result{Status: http.StatusCreated, Body: []byte(`{"id":"ORDER-1"}`)},
	}
	app, _ := newTestApp(t, gateway)

	t.Run("Empty order never reaches the gateway", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/paypal/create-order",
			strings.NewReader(`{"products": []}`))
		w := do(app, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No products sent")
		assert.Zero(t, gateway.createCalls)
	})

	t.Run("Order passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/paypal/create-order",
			strings.NewReader(`{"products": [{"name": "Widget", "price": 10, "quantity": 2}]}`))
		w := do(app, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"id":"ORDER-1"}`, w.Body.String())
	})

	t.Run("Capture passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/paypal/capture-order/ORDER-1", nil)
		w := do(app, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"id":"ORDER-1"}`, w.Body.String())
	})
}

func TestRouter_Health(t *testing.T) {
	app, _ := newTestApp(t, &stubGateway{})

	w := do(app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "healthy"}`, w.Body.String())
}
