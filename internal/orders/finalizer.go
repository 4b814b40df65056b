package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skyburst/storefront-backend/internal/checkout"
	"github.com/skyburst/storefront-backend/pkg/config"
	pkgerrors "github.com/skyburst/storefront-backend/pkg/errors"
	"github.com/skyburst/storefront-backend/pkg/types"
)

const errorBodyReadLimit int64 = 1024

var errBaseURLRequired = errors.New("orders api base url is required")

// Finalizer writes purchase records to the storefront orders API once a
// payment has been captured.
type Finalizer struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional finalizer behavior.
type Option func(*Finalizer)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Finalizer) {
		if client != nil {
			f.httpClient = client
		}
	}
}

// NewFinalizer builds the orders API client from config.
func NewFinalizer(cfg config.OrdersAPIConfig, opts ...Option) (*Finalizer, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errBaseURLRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	finalizer := &Finalizer{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(finalizer)
		}
	}

	return finalizer, nil
}

type purchaseRequest struct {
	UserID            uuid.UUID     `json:"userId"`
	ShippingAddressID uuid.UUID     `json:"shippingAddressId"`
	Amounts           types.Amounts `json:"amounts"`
}

// MakePurchase posts the frozen pricing snapshot as a purchase record.
// The charge has already landed by the time this runs, so any failure
// here is surfaced to the caller for reconciliation rather than retried.
func (f *Finalizer) MakePurchase(ctx context.Context, in checkout.FinalizeInput) error {
	if in.UserID == uuid.Nil || in.ShippingAddressID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user and shipping address are required")
	}

	payload, err := json.Marshal(purchaseRequest{
		UserID:            in.UserID,
		ShippingAddressID: in.ShippingAddressID,
		Amounts:           in.Amounts,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal purchase request")
	}

	url := fmt.Sprintf("%s/purchases", f.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build purchase request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute purchase request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return pkgerrors.Wrap(pkgerrors.CodeDependency,
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))),
			"purchase request failed")
	}
	return nil
}
