package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/cart"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/payment"

	"github.com/shopspring/decimal"
)

// --------------------------------------------------
// Mock Gateway
// --------------------------------------------------

type createCall struct {
	amount   int64
	currency string
	receipt  string
}

type MockGateway struct {
	available bool
	key       string
	intentID  string
	createErr error
	verifyErr error

	createCalls []createCall
}

func (m *MockGateway) Available() bool { return m.available }
func (m *MockGateway) Key() string     { return m.key }

func (m *MockGateway) CreateIntent(ctx context.Context, amount int64, currency, receipt string) (*payment.Intent, error) {
	m.createCalls = append(m.createCalls, createCall{amount, currency, receipt})
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &payment.Intent{
		ID:       m.intentID,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

func (m *MockGateway) VerifySignature(conf payment.Confirmation) error {
	return m.verifyErr
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func shirtCart() cart.Cart {
	return cart.Cart{
		"7": {Name: "Shirt", Price: decimal.RequireFromString("499.00"), Quantity: 2},
	}
}

func newCheckout(t *testing.T, c cart.Cart, gateway payment.Gateway, upi payment.UPIConfig) (*Service, cart.Store) {
	t.Helper()

	store := cart.NewInMemoryStore()
	if c != nil {
		if err := store.Save(context.Background(), "sid", c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return NewService(store, gateway, upi), store
}

func cartLen(t *testing.T, store cart.Store) int {
	t.Helper()

	c, err := store.Get(context.Background(), "sid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return len(c)
}

// --------------------------------------------------
// Payment page
// --------------------------------------------------

func TestPaymentPageEmptyCart(t *testing.T) {
	service, _ := newCheckout(t, nil, &MockGateway{}, payment.UPIConfig{})

	_, err := service.PaymentPage(context.Background(), "sid", "")
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestPaymentPageWithGateway(t *testing.T) {
	gw := &MockGateway{available: true, key: "rzp_test_123", intentID: "order_live_1"}
	service, _ := newCheckout(t, shirtCart(), gw, payment.UPIConfig{})

	page, err := service.PaymentPage(context.Background(), "sid", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !page.Total.Equal(decimal.RequireFromString("998.00")) {
		t.Fatalf("expected total 998.00, got %s", page.Total)
	}
	if page.Amount != 99800 {
		t.Fatalf("expected amount 99800, got %d", page.Amount)
	}

	if len(gw.createCalls) != 1 {
		t.Fatalf("expected one intent creation, got %d", len(gw.createCalls))
	}
	call := gw.createCalls[0]
	if call.amount != 99800 || call.currency != "INR" {
		t.Fatalf("expected intent for 99800 INR, got %d %s", call.amount, call.currency)
	}
	if !strings.HasPrefix(call.receipt, "order_guest_") {
		t.Fatalf("expected guest receipt, got %q", call.receipt)
	}

	if page.OrderID != "order_live_1" {
		t.Fatalf("expected intent id echoed, got %q", page.OrderID)
	}
	if !page.GatewayEnabled || page.GatewayKey != "rzp_test_123" {
		t.Fatalf("expected gateway enabled with public key, got %+v", page)
	}
}

func TestPaymentPageUsesUserIDInReceipt(t *testing.T) {
	gw := &MockGateway{available: true, intentID: "order_live_1"}
	service, _ := newCheckout(t, shirtCart(), gw, payment.UPIConfig{})

	if _, err := service.PaymentPage(context.Background(), "sid", "user-42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gw.createCalls[0].receipt; !strings.HasPrefix(got, "order_user-42_") {
		t.Fatalf("expected receipt keyed by user id, got %q", got)
	}
}

func TestPaymentPageGatewayUnconfigured(t *testing.T) {
	// Placeholder keys resolve to an unavailable real gateway.
	t.Setenv("RAZORPAY_KEY_ID", payment.PlaceholderKeyID)
	t.Setenv("RAZORPAY_KEY_SECRET", payment.PlaceholderKeySecret)
	gw := payment.NewRazorpayGatewayFromEnv()

	upi := payment.UPIConfig{PayeeID: "shop@okaxis", MerchantName: "My Shop"}
	service, _ := newCheckout(t, shirtCart(), gw, upi)

	page, err := service.PaymentPage(context.Background(), "sid", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.GatewayEnabled {
		t.Fatalf("expected gateway disabled with placeholder keys")
	}
	if page.OrderID != "" {
		t.Fatalf("expected no order id, got %q", page.OrderID)
	}
	if page.QRImage == "" || page.PaymentURI == "" {
		t.Fatalf("expected QR fields populated when payee id is configured")
	}
	if page.PayeeID != "shop@okaxis" {
		t.Fatalf("expected configured payee id, got %q", page.PayeeID)
	}
}

func TestPaymentPageDegradesWhenCreateFails(t *testing.T) {
	gw := &MockGateway{available: true, createErr: payment.ErrGatewayUnavailable}
	service, store := newCheckout(t, shirtCart(), gw, payment.UPIConfig{})

	page, err := service.PaymentPage(context.Background(), "sid", "")
	if err != nil {
		t.Fatalf("expected degrade, not error, got %v", err)
	}

	if page.GatewayEnabled {
		t.Fatalf("expected gateway_enabled false after create failure")
	}
	if page.Warning == "" {
		t.Fatalf("expected a user-visible warning after create failure")
	}
	if page.Amount != 99800 {
		t.Fatalf("page must stay usable, got amount %d", page.Amount)
	}

	// degrade never touches the cart
	if cartLen(t, store) != 1 {
		t.Fatalf("cart must be untouched by the payment page")
	}
}

func TestPaymentPageNoUPIConfigured(t *testing.T) {
	service, _ := newCheckout(t, shirtCart(), &MockGateway{}, payment.UPIConfig{PayeeID: payment.PlaceholderUPIID})

	page, err := service.PaymentPage(context.Background(), "sid", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.QRImage != "" || page.PaymentURI != "" {
		t.Fatalf("expected no QR fields without a real payee id")
	}
	if page.PayeeID != payment.FallbackPayeeID {
		t.Fatalf("expected fallback payee id, got %q", page.PayeeID)
	}
}

// --------------------------------------------------
// Submission: COD
// --------------------------------------------------

func TestSubmitCODClearsCart(t *testing.T) {
	service, store := newCheckout(t, shirtCart(), &MockGateway{}, payment.UPIConfig{})

	result, err := service.Submit(context.Background(), "sid", MethodCOD, payment.Confirmation{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Method != MethodCOD {
		t.Fatalf("expected cod result, got %s", result.Method)
	}
	if cartLen(t, store) != 0 {
		t.Fatalf("expected cart cleared after cod")
	}
}

func TestSubmitUnrecognizedMethodDefaultsToCOD(t *testing.T) {
	service, store := newCheckout(t, shirtCart(), &MockGateway{}, payment.UPIConfig{})

	result, err := service.Submit(context.Background(), "sid", ParseMethod("bitcoin"), payment.Confirmation{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Method != MethodCOD {
		t.Fatalf("expected unrecognized method to default to cod, got %s", result.Method)
	}
	if cartLen(t, store) != 0 {
		t.Fatalf("expected cart cleared")
	}
}

// --------------------------------------------------
// Submission: UPI
// --------------------------------------------------

func validConfirmation() payment.Confirmation {
	return payment.Confirmation{
		PaymentID: "pay_xyz",
		OrderID:   "order_abc",
		Signature: "sig",
	}
}

func TestSubmitUPISuccessClearsCart(t *testing.T) {
	gw := &MockGateway{available: true}
	service, store := newCheckout(t, shirtCart(), gw, payment.UPIConfig{})

	result, err := service.Submit(context.Background(), "sid", MethodUPI, validConfirmation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Method != MethodUPI {
		t.Fatalf("expected upi result, got %s", result.Method)
	}
	if cartLen(t, store) != 0 {
		t.Fatalf("expected cart cleared after verified payment")
	}
}

func TestSubmitUPIInvalidSignature(t *testing.T) {
	gw := &MockGateway{available: true, verifyErr: payment.ErrSignatureInvalid}
	service, store := newCheckout(t, shirtCart(), gw, payment.UPIConfig{})

	_, err := service.Submit(context.Background(), "sid", MethodUPI, validConfirmation())
	if !errors.Is(err, payment.ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
	if cartLen(t, store) != 1 {
		t.Fatalf("cart must be untouched after failed verification")
	}
}

func TestSubmitUPIVerificationError(t *testing.T) {
	underlying := errors.New("gateway timeout")
	gw := &MockGateway{available: true, verifyErr: underlying}
	service, store := newCheckout(t, shirtCart(), gw, payment.UPIConfig{})

	_, err := service.Submit(context.Background(), "sid", MethodUPI, validConfirmation())

	var verr *payment.VerificationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected VerificationError, got %v", err)
	}
	if !errors.Is(err, underlying) {
		t.Fatalf("expected underlying cause to be preserved")
	}
	if errors.Is(err, payment.ErrSignatureInvalid) {
		t.Fatalf("VerificationError must not be classified as SignatureInvalid")
	}
	if cartLen(t, store) != 1 {
		t.Fatalf("cart must be untouched after verification error")
	}
}

func TestSubmitUPIMissingFields(t *testing.T) {
	gw := &MockGateway{available: true}

	complete := validConfirmation()
	cases := []payment.Confirmation{
		{OrderID: complete.OrderID, Signature: complete.Signature},
		{PaymentID: complete.PaymentID, Signature: complete.Signature},
		{PaymentID: complete.PaymentID, OrderID: complete.OrderID},
	}

	for _, conf := range cases {
		service, store := newCheckout(t, shirtCart(), gw, payment.UPIConfig{})

		_, err := service.Submit(context.Background(), "sid", MethodUPI, conf)
		if !errors.Is(err, ErrConfirmationIncomplete) {
			t.Fatalf("expected ErrConfirmationIncomplete for %+v, got %v", conf, err)
		}
		if cartLen(t, store) != 1 {
			t.Fatalf("cart must be untouched when confirmation is incomplete")
		}
	}
}

func TestSubmitUPIGatewayNotConfigured(t *testing.T) {
	gw := &MockGateway{available: false}
	service, store := newCheckout(t, shirtCart(), gw, payment.UPIConfig{})

	_, err := service.Submit(context.Background(), "sid", MethodUPI, validConfirmation())
	if !errors.Is(err, ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
	if cartLen(t, store) != 1 {
		t.Fatalf("cart must be untouched when gateway is not configured")
	}
}

func TestSubmitFailureThenRetrySucceeds(t *testing.T) {
	gw := &MockGateway{available: true, verifyErr: payment.ErrSignatureInvalid}
	service, store := newCheckout(t, shirtCart(), gw, payment.UPIConfig{})

	if _, err := service.Submit(context.Background(), "sid", MethodUPI, validConfirmation()); err == nil {
		t.Fatalf("expected first submission to fail")
	}

	// Customer switches to COD after the failure.
	if _, err := service.Submit(context.Background(), "sid", MethodCOD, payment.Confirmation{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cartLen(t, store) != 0 {
		t.Fatalf("expected cart cleared by the retry")
	}
}
