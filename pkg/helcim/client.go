package helcim

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

	"github.com/shopspring/decimal"

	"github.com/skyburst/storefront-backend/pkg/config"
	pkgerrors "github.com/skyburst/storefront-backend/pkg/errors"
	"github.com/skyburst/storefront-backend/pkg/logger"
)

const (
	testEnv = "test"
	liveEnv = "live"

	defaultBaseURL        = "https://api.helcim.com/v2"
	errorBodyReadLimit    = int64(1024)
	defaultRequestTimeout = 15 * time.Second
)

var (
	errAPITokenRequired = errors.New("helcim api token is required")
	errInvalidEnv       = fmt.Errorf("helcim environment must be %q or %q", testEnv, liveEnv)
	errLoggerRequired   = errors.New("helcim logger is required")
)

// Client wraps the HelcimPay checkout API with centralized auth, logging,
// and error mapping.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiToken    string
	environment string
	logger      *logger.Logger
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient initializes the Helcim wrapper and validates the credentials.
func NewClient(ctx context.Context, cfg config.HelcimConfig, logg *logger.Logger, opts ...Option) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	env, err := normalizeEnv(cfg.Environment())
	if err != nil {
		return nil, err
	}

	apiToken := strings.TrimSpace(cfg.APIToken)
	if apiToken == "" {
		return nil, errAPITokenRequired
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	c := &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		apiToken:    apiToken,
		environment: env,
		logger:      logg,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	logg.Info(ctx, fmt.Sprintf("helcim client initialized (%s)", env))
	return c, nil
}

// Environment reports the normalized Helcim environment.
func (c *Client) Environment() string {
	if c == nil {
		return ""
	}
	return c.environment
}

// InitializeParams describes one checkout session request.
type InitializeParams struct {
	AmountCents   int
	Currency      string
	InvoiceNumber string
}

// InitializeResponse carries the tokens scoping one payment attempt.
type InitializeResponse struct {
	CheckoutToken string `json:"checkoutToken"`
	SecretToken   string `json:"secretToken"`
}

// Initialize requests a checkout token for a hosted-payment attempt.
func (c *Client) Initialize(ctx context.Context, params InitializeParams) (*InitializeResponse, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "helcim client not configured")
	}
	if params.AmountCents <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment amount must be positive")
	}

	currency := strings.ToUpper(strings.TrimSpace(params.Currency))
	if currency == "" {
		currency = "USD"
	}

	body := map[string]any{
		"paymentType": "purchase",
		"amount":      decimal.NewFromInt(int64(params.AmountCents)).Shift(-2).InexactFloat64(),
		"currency":    currency,
	}
	if params.InvoiceNumber != "" {
		body["invoiceNumber"] = params.InvoiceNumber
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal initialize request")
	}

	c.log(ctx, "request", "initialize", map[string]any{
		"amount_cents": params.AmountCents,
		"currency":     currency,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/helcim-pay/initialize", bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build initialize request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-token", c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx, "error", "initialize", map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute initialize request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		err := fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
		c.log(ctx, "error", "initialize", map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(codeForStatus(resp.StatusCode), err, "helcim initialize failed")
	}

	var decoded InitializeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode initialize response")
	}
	if strings.TrimSpace(decoded.CheckoutToken) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "helcim returned an empty checkout token")
	}

	c.log(ctx, "response", "initialize", map[string]any{
		"checkout_token": decoded.CheckoutToken,
	})
	return &decoded, nil
}

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": op,
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = c.redact(k, v)
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.logger.Error(ctx, fmt.Sprintf("helcim %s", op), errors.New(fmt.Sprint(fields["error"])))
	default:
		c.logger.Info(ctx, fmt.Sprintf("helcim %s", phase))
	}
}

func (c *Client) redact(key string, value any) any {
	lower := strings.ToLower(key)
	for _, sensitive := range []string{"card", "cvv", "secret", "api_token"} {
		if strings.Contains(lower, sensitive) {
			return "[REDACTED]"
		}
	}
	return value
}

func codeForStatus(status int) pkgerrors.Code {
	switch {
	case status == http.StatusBadRequest:
		return pkgerrors.CodeValidation
	case status == http.StatusNotFound:
		return pkgerrors.CodeNotFound
	case status == http.StatusConflict:
		return pkgerrors.CodeConflict
	case status >= 400 && status < 500:
		return pkgerrors.CodeValidation
	default:
		return pkgerrors.CodeDependency
	}
}

func normalizeEnv(raw string) (string, error) {
	env := strings.TrimSpace(strings.ToLower(raw))
	if env == "" {
		env = testEnv
	}
	switch env {
	case testEnv, liveEnv:
		return env, nil
	default:
		return "", errInvalidEnv
	}
}
