package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"garabato-api/internal/config"

	"github.com/rs/zerolog"
)

const (
	orderIntent   = "CAPTURE"
	orderCurrency = "USD"
	returnURL     = "http://senoragarabato.com/success"
	cancelURL     = "http://senoragarabato.com/store"
)

// ErrTokenUnavailable is returned when the client-credentials exchange with
// the provider fails for any reason.
var ErrTokenUnavailable = errors.New("paypal token unavailable")

// OrderProduct is a client-submitted line item. It only lives for the
// duration of one order-creation request and is never persisted.
type OrderProduct struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Result carries the provider's response verbatim. Provider-side failures are
// surfaced to the caller with the provider's own status and body; they are
// not errors at this level.
type Result struct {
	Status int
	Body   json.RawMessage
}

// Gateway is the order-creation/capture surface the HTTP handlers depend on.
type Gateway interface {
	CreateOrder(ctx context.Context, products []OrderProduct) (*Result, error)
	CaptureOrder(ctx context.Context, orderID string) (*Result, error)
}

// Client talks to the PayPal REST API. A fresh access token is fetched for
// every order-related call; nothing is cached or retried.
type Client struct {
	baseURL  string
	clientID string
	secret   string
	http     *http.Client
	logger   zerolog.Logger
}

// NewClient creates a new provider client from configuration.
func NewClient(cfg config.PayPalConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.APIURL, "/"),
		clientID: cfg.ClientID,
		secret:   cfg.Secret,
		http:     &http.Client{Timeout: 30 * time.Second},
		logger:   logger.With().Str("client", "paypal").Logger(),
	}
}

// getToken performs the client-credentials exchange and returns a bearer
// token. Any failure collapses into ErrTokenUnavailable.
func (c *Client) getToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.clientID, c.secret)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("token request failed")
		return "", fmt.Errorf("%w: %v", ErrTokenUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode).Msg("token request rejected")
		return "", ErrTokenUnavailable
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenUnavailable, err)
	}
	if payload.AccessToken == "" {
		return "", ErrTokenUnavailable
	}

	return payload.AccessToken, nil
}

// CreateOrder builds a provider order payload from the submitted line items
// and submits it. The provider's response is returned verbatim, whatever its
// status.
func (c *Client) CreateOrder(ctx context.Context, products []OrderProduct) (*Result, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(buildOrderPayload(products))
	if err != nil {
		return nil, fmt.Errorf("failed to encode order payload: %w", err)
	}

	return c.post(ctx, c.baseURL+"/v2/checkout/orders", token, bytes.NewReader(body))
}

// CaptureOrder submits a capture request for an existing order. Duplicate
// captures are not deduplicated here; the provider decides.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*Result, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/v2/checkout/orders/" + url.PathEscape(orderID) + "/capture"
	return c.post(ctx, endpoint, token, nil)
}

// post submits a JSON request with the bearer token and reads the provider's
// raw response.
func (c *Client) post(ctx context.Context, endpoint, token string, body io.Reader) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("provider request failed")
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("provider response")
	return &Result{Status: resp.StatusCode, Body: raw}, nil
}

type moneyValue struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type orderItem struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Quantity    string     `json:"quantity"`
	UnitAmount  moneyValue `json:"unit_amount"`
}

type amountBreakdown struct {
	ItemTotal moneyValue `json:"item_total"`
}

type purchaseAmount struct {
	CurrencyCode string          `json:"currency_code"`
	Value        string          `json:"value"`
	Breakdown    amountBreakdown `json:"breakdown"`
}

type purchaseUnit struct {
	Amount purchaseAmount `json:"amount"`
	Items  []orderItem    `json:"items"`
}

type appContext struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

type orderPayload struct {
	Intent             string         `json:"intent"`
	PurchaseUnits      []purchaseUnit `json:"purchase_units"`
	ApplicationContext appContext     `json:"application_context"`
}

// buildOrderPayload turns client-submitted line items into a single purchase
// unit with an itemised breakdown. The item total and the purchase-unit
// amount are always the same sum of unit_price * quantity.
func buildOrderPayload(products []OrderProduct) orderPayload {
	items := make([]orderItem, 0, len(products))
	total := 0.0

	for _, p := range products {
		name := p.Name
		if name == "" {
			name = "Unnamed product"
		}
		quantity := p.Quantity
		if quantity == 0 {
			quantity = 1
		}

		total += p.Price * float64(quantity)
		items = append(items, orderItem{
			Name:        name,
			Description: p.Description,
			Quantity:    strconv.Itoa(quantity),
			UnitAmount:  moneyValue{CurrencyCode: orderCurrency, Value: money(p.Price)},
		})
	}

	value := money(total)
	return orderPayload{
		Intent: orderIntent,
		PurchaseUnits: []purchaseUnit{{
			Amount: purchaseAmount{
				CurrencyCode: orderCurrency,
				Value:        value,
				Breakdown: amountBreakdown{
					ItemTotal: moneyValue{CurrencyCode: orderCurrency, Value: value},
				},
			},
			Items: items,
		}},
		ApplicationContext: appContext{ReturnURL: returnURL, CancelURL: cancelURL},
	}
}

// money formats an amount the way the provider expects USD values.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
