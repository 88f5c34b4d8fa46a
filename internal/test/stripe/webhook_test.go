package stripe_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"luxcert-backend/internal/stripe"
)

func signPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestConstructEvent_ValidSignature(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_test_abc"}}}`)
	header := signPayload(payload, "whsec_test", time.Now())

	event, err := stripe.ConstructEvent(payload, header, "whsec_test")

	assert.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, "checkout.session.completed", event.Type)
	assert.Contains(t, string(event.Data.Object), "cs_test_abc")
}

func TestConstructEvent_WrongSecret(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	header := signPayload(payload, "whsec_other", time.Now())

	_, err := stripe.ConstructEvent(payload, header, "whsec_test")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "signature verification failed")
}

func TestConstructEvent_TamperedPayload(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	header := signPayload(payload, "whsec_test", time.Now())

	tampered := []byte(`{"id":"evt_2","type":"checkout.session.completed"}`)
	_, err := stripe.ConstructEvent(tampered, header, "whsec_test")

	assert.Error(t, err)
}

func TestConstructEvent_StaleTimestamp(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	header := signPayload(payload, "whsec_test", time.Now().Add(-10*time.Minute))

	_, err := stripe.ConstructEvent(payload, header, "whsec_test")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tolerance")
}

func TestConstructEvent_MissingHeader(t *testing.T) {
	_, err := stripe.ConstructEvent([]byte(`{}`), "", "whsec_test")
	assert.Error(t, err)

	_, err = stripe.ConstructEvent([]byte(`{}`), "garbage", "whsec_test")
	assert.Error(t, err)
}
