package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

// Placeholder values shipped in example configs. Treated as "not
// configured" so a copied .env never talks to the real gateway.
const (
	PlaceholderKeyID     = "your_razorpay_key_id_here"
	PlaceholderKeySecret = "your_razorpay_key_secret_here"
)

const requestTimeout = 10 * time.Second

type RazorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
	enabled   bool
}

// NewRazorpayGatewayFromEnv resolves gateway availability once at
// process start: both keys must be set and neither may be a
// placeholder. An unconfigured gateway is still a valid value, it just
// reports Available() == false.
func NewRazorpayGatewayFromEnv() *RazorpayGateway {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")

	g := &RazorpayGateway{keyID: keyID, keySecret: keySecret}

	if keyID == "" || keySecret == "" {
		log.Println("⚠️  Razorpay keys not set, online payment disabled")
		return g
	}
	if keyID == PlaceholderKeyID || keySecret == PlaceholderKeySecret {
		log.Println("⚠️  Razorpay keys are placeholders, online payment disabled")
		return g
	}

	g.client = razorpay.NewClient(keyID, keySecret)
	g.enabled = true
	return g
}

func (g *RazorpayGateway) Available() bool {
	return g.enabled
}

func (g *RazorpayGateway) Key() string {
	return g.keyID
}

// CreateIntent creates a Razorpay order for the given amount in paise.
// The round trip is bounded by requestTimeout; a timed-out call counts
// as gateway unavailable.
func (g *RazorpayGateway) CreateIntent(ctx context.Context, amount int64, currency, receipt string) (*Intent, error) {
	if !g.enabled {
		return nil, ErrGatewayUnavailable
	}

	data := map[string]interface{}{
		"amount":          amount,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	type orderResult struct {
		body map[string]interface{}
		err  error
	}

	ch := make(chan orderResult, 1)
	go func() {
		body, err := g.client.Order.Create(data, nil)
		ch <- orderResult{body, err}
	}()

	var body map[string]interface{}
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, res.err)
		}
		body = res.body
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: order response missing id", ErrGatewayUnavailable)
	}

	return &Intent{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

// VerifySignature checks the confirmation against the key secret:
// HMAC-SHA256 over "<order_id>|<payment_id>", hex encoded, compared in
// constant time.
func (g *RazorpayGateway) VerifySignature(conf Confirmation) error {
	if !g.enabled {
		return errors.New("gateway not configured")
	}
	return verifySignature(conf, g.keySecret)
}

func verifySignature(conf Confirmation, secret string) error {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(conf.OrderID + "|" + conf.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(conf.Signature)) {
		return ErrSignatureInvalid
	}
	return nil
}

// SignConfirmation produces the signature the gateway would send for an
// order/payment pair. Used by tests and local sandboxing.
func SignConfirmation(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
