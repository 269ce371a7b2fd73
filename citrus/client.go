package citrus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alovak/citruspay-go/citrus/models"
	"github.com/alovak/citruspay-go/instrument"
	"golang.org/x/exp/slog"
)

// Client performs the gateway's HTTP operations for one merchant. It is
// stateless; concurrent calls are safe as long as they use different
// transactions.
type Client struct {
	merchant *Merchant
	base     string
	http     *http.Client
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (10s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithBaseURL overrides the environment-derived gateway URL. Intended for
// tests and local gateway stubs.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.base = strings.TrimRight(base, "/") }
}

// NewClient builds a gateway client for the merchant. The gateway URL is
// derived from the merchant's environment unless overridden.
func NewClient(m *Merchant, opts ...Option) *Client {
	c := &Client{
		merchant: m,
		base:     m.Environment().BaseURL(),
		http:     &http.Client{Timeout: 10 * time.Second},
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.With(slog.String("component", "citrus"), slog.String("env", m.Environment().String()))

	return c
}

// Pay submits a built payload on the MOTO authorize endpoint and returns
// the gateway's redirect URL.
func (c *Client) Pay(ctx context.Context, p *Payload) (string, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	target := c.base + "/service/moto/authorize/struct/" + c.merchant.VanityURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build authorize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	status, respBody, err := c.do(req, "authorize")
	if err != nil {
		return "", err
	}

	redirect, err := Interpret(status, respBody)
	if err != nil {
		return "", err
	}

	c.logger.Info("payment authorized", slog.String("txn", p.MerchantTxnID))

	return redirect, nil
}

// PaymentURL builds the MOTO payload for the transaction and submits it in
// one call.
func (c *Client) PaymentURL(ctx context.Context, user models.User, ins instrument.Instrument, txn *models.Transaction) (string, error) {
	p, err := c.merchant.BuildPayload(txn, user, ins, FlowMOTO)
	if err != nil {
		return "", err
	}

	return c.Pay(ctx, p)
}

// postForm sends a form-encoded POST and returns status and body. Network
// failures, including context cancellation, surface as *TransportError.
func (c *Client) postForm(ctx context.Context, op, path string, form url.Values) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, op)
}

func (c *Client) do(req *http.Request, op string) (int, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.Debug("gateway call", slog.String("op", op), slog.Int("status", resp.StatusCode))

	return resp.StatusCode, body, nil
}
