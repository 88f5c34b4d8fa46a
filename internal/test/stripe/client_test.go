package stripe_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"luxcert-backend/internal/stripe"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{100, 10000},
		{49.5, 4950},
		{0.01, 1},
		{150.00, 15000},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, stripe.MinorUnits(tc.price), "price %v", tc.price)
	}
}

func TestClient_CreateCheckoutSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "eur", r.PostForm.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "Premium Certification", r.PostForm.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "15000", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "1", r.PostForm.Get("line_items[0][quantity]"))
		assert.Equal(t, "CERT-42", r.PostForm.Get("metadata[draft_id]"))
		assert.Equal(t, "customer@example.com", r.PostForm.Get("customer_email"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_abc","url":"https://checkout.test/pay/cs_test_abc","status":"open","payment_status":"unpaid"}`))
	}))
	defer server.Close()

	client := stripe.NewClient(server.URL, "sk_test_123")
	session, err := client.CreateCheckoutSession(stripe.CheckoutParams{
		ProductName:   "Premium Certification",
		Price:         150.00,
		CustomerEmail: "customer@example.com",
		SuccessURL:    "https://app.test/payment/success",
		CancelURL:     "https://app.test/payment/cancelled",
		DraftID:       "CERT-42",
		TypeName:      "Premium Certification",
	})

	assert.NoError(t, err)
	assert.Equal(t, "cs_test_abc", session.ID)
	assert.Equal(t, "https://checkout.test/pay/cs_test_abc", session.URL)
}

func TestClient_CreateCheckoutSession_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"parameter_missing","message":"Missing required param: line_items.","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	client := stripe.NewClient(server.URL, "sk_test_123")
	_, err := client.CreateCheckoutSession(stripe.CheckoutParams{ProductName: "x", Price: 1})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Missing required param")
}

func TestClient_RetrieveSession(t *testing.T) {
	cases := []struct {
		name          string
		paymentStatus string
		status        string
	}{
		{"paid and complete", "paid", "complete"},
		{"unpaid but complete", "unpaid", "complete"},
		{"paid but open", "paid", "open"},
		{"unpaid and expired", "unpaid", "expired"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "GET", r.Method)
				assert.Equal(t, "/checkout/sessions/cs_test_abc", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"id":"cs_test_abc","payment_status":"` + tc.paymentStatus +
					`","status":"` + tc.status + `","metadata":{"draft_id":"CERT-42"}}`))
			}))
			defer server.Close()

			client := stripe.NewClient(server.URL, "sk_test_123")
			session, err := client.RetrieveSession("cs_test_abc")

			assert.NoError(t, err)
			assert.Equal(t, tc.paymentStatus, session.PaymentStatus)
			assert.Equal(t, tc.status, session.Status)
			assert.Equal(t, "CERT-42", session.Metadata["draft_id"])
		})
	}
}

func TestClient_ExpireSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/checkout/sessions/cs_test_abc/expire", r.URL.Path)
		w.Write([]byte(`{"id":"cs_test_abc","status":"expired"}`))
	}))
	defer server.Close()

	client := stripe.NewClient(server.URL, "sk_test_123")
	assert.NoError(t, client.ExpireSession("cs_test_abc"))
}

func TestClient_ExpireSession_AlreadyGoneIsSuccess(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing", `{"error":{"code":"resource_missing","message":"No such checkout session"}}`},
		{"already expired", `{"error":{"code":"checkout_session_invalid_state","message":"This session is already expired."}}`},
		{"already complete", `{"error":{"code":"checkout_session_invalid_state","message":"This session is complete."}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := stripe.NewClient(server.URL, "sk_test_123")
			assert.NoError(t, client.ExpireSession("cs_test_abc"))
		})
	}
}

func TestClient_ExpireSession_OtherErrorFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":"api_key_invalid","message":"Invalid API Key provided"}}`))
	}))
	defer server.Close()

	client := stripe.NewClient(server.URL, "sk_bad")
	err := client.ExpireSession("cs_test_abc")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API Key")
}

func TestClient_RetryWithBackoff(t *testing.T) {
	client := stripe.NewClient("https://api.test.com/v1", "sk_test_123")

	callCount := 0
	err := client.RetryWithBackoff(func() error {
		callCount++
		if callCount < 2 {
			return assert.AnError
		}
		return nil
	}, 3)

	assert.NoError(t, err)
	assert.Equal(t, 2, callCount)
}
