package payments

import (
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

	"github.com/drilledtools/backend/internal/config"
)

// ErrGatewayUnavailable wraps any failure talking to the payment provider so
// callers can surface it as 502 instead of swallowing it.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// Intent is the client-usable handle for an in-progress payment.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway is the slice of the payment provider this system depends on.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}

type stripeIntentResult struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type StripeClient struct {
	httpClient *http.Client
	baseAPIURL string
	secretKey  string
}

func NewStripeClient(cfg *config.Config) *StripeClient {
	return &StripeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseAPIURL: cfg.StripeAPIURL,
		secretKey:  cfg.StripeSecretKey,
	}
}

// CreateIntent creates a payment intent for amount in minor currency units.
// No purchase state is touched here; reconciliation happens through the
// explicit confirmation step.
func (c *StripeClient) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseAPIURL+"/v1/payment_intents",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create intent request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrGatewayUnavailable, resp.StatusCode, string(b))
	}

	var result stripeIntentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrGatewayUnavailable, err)
	}
	if result.ClientSecret == "" {
		return nil, fmt.Errorf("%w: response missing client secret", ErrGatewayUnavailable)
	}

	return &Intent{
		ID:           result.ID,
		ClientSecret: result.ClientSecret,
	}, nil
}
