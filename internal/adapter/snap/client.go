package snap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rizkypra/storefront/internal/domain/model"
)

const (
	sandboxBaseURL    = "https://app.sandbox.midtrans.com"
	productionBaseURL = "https://app.midtrans.com"

	// Snap truncates item names beyond this length server-side; the
	// sanitize flag trims them client-side instead of failing the call.
	maxItemNameLen = 50
)

// ErrEmptyToken indicates the gateway answered without a session token.
var ErrEmptyToken = errors.New("gateway returned empty token")

// Transaction describes a payment session request: order identity, amount,
// the item breakdown shown in the payment widget and customer contacts.
type Transaction struct {
	OrderCode   string
	GrossAmount int64
	Items       []Item
	Customer    Customer
}

// Item is one line of the transaction breakdown.
type Item struct {
	ID       string
	Price    int64
	Quantity int
	Name     string
}

// Customer carries contact details forwarded to the payment widget.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Client exposes payment session token issuance.
type Client interface {
	CreateTransaction(ctx context.Context, txn Transaction) (string, error)
}

// Config holds gateway credentials and behaviour flags.
type Config struct {
	ServerKey  string
	Production bool
	Sanitize   bool
	Enable3DS  bool

	// BaseURL overrides the gateway endpoint; used by tests.
	BaseURL string
}

// HTTPClient implements Client against the Snap HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	serverKey  string
	sanitize   bool
	enable3DS  bool
	httpClient *http.Client
	logger     *slog.Logger
}

type itemPayload struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

type addressPayload struct {
	Address string `json:"address"`
}

type requestPayload struct {
	TransactionDetails struct {
		OrderID     string `json:"order_id"`
		GrossAmount int64  `json:"gross_amount"`
	} `json:"transaction_details"`
	ItemDetails     []itemPayload `json:"item_details"`
	CustomerDetails struct {
		FirstName       string         `json:"first_name"`
		Email           string         `json:"email,omitempty"`
		Phone           string         `json:"phone"`
		BillingAddress  addressPayload `json:"billing_address"`
		ShippingAddress addressPayload `json:"shipping_address"`
	} `json:"customer_details"`
	CreditCard struct {
		Secure bool `json:"secure"`
	} `json:"credit_card"`
}

// responsePayload mirrors the Snap API answer.
type responsePayload struct {
	Token         string   `json:"token"`
	RedirectURL   string   `json:"redirect_url"`
	ErrorMessages []string `json:"error_messages"`
}

// NewHTTPClient creates a Snap client with a default timeout. A missing
// server key is a configuration error.
func NewHTTPClient(cfg Config, logger *slog.Logger) (*HTTPClient, error) {
	if cfg.ServerKey == "" {
		return nil, fmt.Errorf("snap server key is not set")
	}

	base := cfg.BaseURL
	if base == "" {
		if cfg.Production {
			base = productionBaseURL
		} else {
			base = sandboxBaseURL
		}
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse snap url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("snap url must be absolute")
	}

	return &HTTPClient{
		baseURL:   parsed,
		serverKey: cfg.ServerKey,
		sanitize:  cfg.Sanitize,
		enable3DS: cfg.Enable3DS,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateTransaction requests a payment session token for the order.
func (c *HTTPClient) CreateTransaction(ctx context.Context, txn Transaction) (string, error) {
	endpoint := *c.baseURL
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + "/snap/v1/transactions"

	var payload requestPayload
	payload.TransactionDetails.OrderID = txn.OrderCode
	payload.TransactionDetails.GrossAmount = txn.GrossAmount
	payload.CustomerDetails.FirstName = txn.Customer.Name
	payload.CustomerDetails.Email = txn.Customer.Email
	payload.CustomerDetails.Phone = txn.Customer.Phone
	payload.CustomerDetails.BillingAddress = addressPayload{Address: txn.Customer.Address}
	payload.CustomerDetails.ShippingAddress = addressPayload{Address: txn.Customer.Address}
	payload.CreditCard.Secure = c.enable3DS

	payload.ItemDetails = make([]itemPayload, 0, len(txn.Items))
	for _, item := range txn.Items {
		name := item.Name
		if c.sanitize {
			name = sanitizeItemName(name)
		}
		payload.ItemDetails = append(payload.ItemDetails, itemPayload{
			ID:       item.ID,
			Price:    item.Price,
			Quantity: item.Quantity,
			Name:     name,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.serverKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var data responsePayload
		if err := json.Unmarshal(raw, &data); err != nil {
			return "", err
		}
		if data.Token == "" {
			return "", ErrEmptyToken
		}
		return data.Token, nil
	default:
		var data responsePayload
		_ = json.Unmarshal(raw, &data)
		c.logger.Error("snap request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("order", txn.OrderCode),
			slog.String("errors", strings.Join(data.ErrorMessages, "; ")),
		)
		if len(data.ErrorMessages) > 0 {
			return "", fmt.Errorf("snap error: %s", data.ErrorMessages[0])
		}
		return "", fmt.Errorf("snap error: %s", resp.Status)
	}
}

// ShippingItem builds the synthetic line item carrying the flat shipping fee.
func ShippingItem(fee int64) Item {
	return Item{ID: "shipping", Price: fee, Quantity: 1, Name: "Shipping Cost"}
}

// ItemsFromOrder maps order lines plus the shipping fee to the gateway
// breakdown so the widget total matches the persisted total.
func ItemsFromOrder(items []model.OrderItem, shippingFee int64) []Item {
	result := make([]Item, 0, len(items)+1)
	for _, it := range items {
		result = append(result, Item{
			ID:       fmt.Sprintf("%d", it.ProductID),
			Price:    it.Price,
			Quantity: it.Quantity,
			Name:     it.Name,
		})
	}
	return append(result, ShippingItem(shippingFee))
}

func sanitizeItemName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) > maxItemNameLen {
		cut := maxItemNameLen
		// Back up to a rune boundary so multibyte names are not split
		// mid-character.
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	return name
}
