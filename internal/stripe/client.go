package stripe

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the Stripe Checkout Sessions API. Requests are
// form-encoded and authenticated with the secret key, per Stripe's REST
// conventions.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// Session is the subset of a checkout session the lifecycle cares about.
// payment_status and status are distinct: a session can be complete without
// being paid (deferred payment methods), so both are kept.
type Session struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"payment_status"`
	Status        string            `json:"status"`
	Metadata      map[string]string `json:"metadata"`
}

// APIError is Stripe's error envelope.
type APIError struct {
	ErrorDetail struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CheckoutParams describes the single line item and correlation metadata for
// a hosted checkout session.
type CheckoutParams struct {
	ProductName   string
	Price         float64
	Currency      string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	DraftID       string
	TypeName      string
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// MinorUnits converts a decimal price to integer minor-currency units. This
// single rounding point is the only floating-point currency arithmetic in
// the system.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (c *Client) CreateCheckoutSession(params CheckoutParams) (*Session, error) {
	currency := params.Currency
	if currency == "" {
		currency = "eur"
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	form.Set("line_items[0][price_data][currency]", currency)
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(MinorUnits(params.Price), 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("metadata[draft_id]", params.DraftID)
	form.Set("metadata[certificate_type]", params.TypeName)
	if params.CustomerEmail != "" {
		form.Set("customer_email", params.CustomerEmail)
	}

	return c.postSession("/checkout/sessions", form)
}

func (c *Client) RetrieveSession(sessionID string) (*Session, error) {
	req, err := http.NewRequest("GET", c.baseURL+"/checkout/sessions/"+sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to retrieve session: %s", apiErrorMessage(resp.StatusCode, body))
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &session, nil
}

// ExpireSession voids an open checkout session. A session that is already
// expired or gone counts as success: the desired end state holds either way.
func (c *Client) ExpireSession(sessionID string) error {
	req, err := http.NewRequest("POST", c.baseURL+"/checkout/sessions/"+sessionID+"/expire", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		code := apiErr.ErrorDetail.Code
		msg := strings.ToLower(apiErr.ErrorDetail.Message)
		if code == "resource_missing" || strings.Contains(msg, "expired") || strings.Contains(msg, "complete") {
			return nil
		}
	}

	return fmt.Errorf("failed to expire session: %s", apiErrorMessage(resp.StatusCode, body))
}

// RetryWithBackoff executes a function with exponential backoff retry logic.
func (c *Client) RetryWithBackoff(fn func() error, maxRetries int) error {
	backoffs := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if i < len(backoffs) {
			time.Sleep(backoffs[i])
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}

func (c *Client) postSession(path string, form url.Values) (*Session, error) {
	req, err := http.NewRequest("POST", c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to create checkout session: %s", apiErrorMessage(resp.StatusCode, body))
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w, body: %s", err, string(body))
	}

	if session.ID == "" {
		return nil, fmt.Errorf("session id is empty in response, body: %s", string(body))
	}

	return &session, nil
}

func apiErrorMessage(status int, body []byte) string {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.ErrorDetail.Message != "" {
		return fmt.Sprintf("status %d: %s", status, apiErr.ErrorDetail.Message)
	}
	return fmt.Sprintf("status %d, body: %s", status, string(body))
}
