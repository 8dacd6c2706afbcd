package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/cart"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/payment"

	"github.com/gin-gonic/gin"
)

func setupCheckoutRouter(t *testing.T, c cart.Cart, gateway payment.Gateway) (*gin.Engine, cart.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service, store := newCheckout(t, c, gateway, payment.UPIConfig{})
	handler := NewHandler(service)

	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set("sessionID", "sid")
		ctx.Next()
	})
	r.GET("/payment", handler.PaymentPage)
	r.POST("/payment/success", handler.PaymentSuccess)
	r.GET("/payment/success", handler.PaymentSuccessGet)

	return r, store
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentPageEmptyCartRedirects(t *testing.T) {
	r, _ := setupCheckoutRouter(t, nil, &MockGateway{})

	req := httptest.NewRequest(http.MethodGet, "/payment", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["redirect"] != "/cart" {
		t.Fatalf("expected redirect to /cart, got %q", resp["redirect"])
	}
}

func TestPaymentPageContextFields(t *testing.T) {
	gw := &MockGateway{available: true, key: "rzp_test_123", intentID: "order_live_1"}
	r, _ := setupCheckoutRouter(t, shirtCart(), gw)

	req := httptest.NewRequest(http.MethodGet, "/payment", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	if resp["amount"].(float64) != 99800 {
		t.Fatalf("expected amount 99800, got %v", resp["amount"])
	}
	if resp["order_id"] != "order_live_1" {
		t.Fatalf("expected order_id echoed, got %v", resp["order_id"])
	}
	if resp["gateway_enabled"] != true {
		t.Fatalf("expected gateway_enabled true")
	}
	if resp["qr_image"] != nil {
		t.Fatalf("expected qr_image null without a payee id, got %v", resp["qr_image"])
	}
	if resp["payment_uri"] != nil {
		t.Fatalf("expected payment_uri null without a payee id, got %v", resp["payment_uri"])
	}
	if resp["payee_id"] != payment.FallbackPayeeID {
		t.Fatalf("expected fallback payee_id, got %v", resp["payee_id"])
	}
}

func TestSubmitWithoutMethodDefaultsToCOD(t *testing.T) {
	r, store := setupCheckoutRouter(t, shirtCart(), &MockGateway{})

	w := postForm(r, "/payment/success", url.Values{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["payment_method"] != "cod" {
		t.Fatalf("expected payment_method cod, got %q", resp["payment_method"])
	}

	remaining, _ := store.Get(context.Background(), "sid")
	if len(remaining) != 0 {
		t.Fatalf("expected cart cleared")
	}
}

func TestSubmitUPIMissingDetails(t *testing.T) {
	gw := &MockGateway{available: true}
	r, store := setupCheckoutRouter(t, shirtCart(), gw)

	w := postForm(r, "/payment/success", url.Values{
		"payment_method":      {"upi"},
		"razorpay_payment_id": {"pay_xyz"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["redirect"] != "/payment" {
		t.Fatalf("expected redirect back to /payment, got %q", resp["redirect"])
	}

	remaining, _ := store.Get(context.Background(), "sid")
	if len(remaining) != 1 {
		t.Fatalf("expected cart untouched")
	}
}

func TestSubmitUPIVerified(t *testing.T) {
	gw := &MockGateway{available: true}
	r, store := setupCheckoutRouter(t, shirtCart(), gw)

	w := postForm(r, "/payment/success", url.Values{
		"payment_method":      {"upi"},
		"razorpay_payment_id": {"pay_xyz"},
		"razorpay_order_id":   {"order_abc"},
		"razorpay_signature":  {"sig"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["payment_method"] != "upi" {
		t.Fatalf("expected payment_method upi, got %q", resp["payment_method"])
	}

	remaining, _ := store.Get(context.Background(), "sid")
	if len(remaining) != 0 {
		t.Fatalf("expected cart cleared")
	}
}

func TestSubmitUPIForgedSignature(t *testing.T) {
	gw := &MockGateway{available: true, verifyErr: payment.ErrSignatureInvalid}
	r, store := setupCheckoutRouter(t, shirtCart(), gw)

	w := postForm(r, "/payment/success", url.Values{
		"payment_method":      {"upi"},
		"razorpay_payment_id": {"pay_xyz"},
		"razorpay_order_id":   {"order_abc"},
		"razorpay_signature":  {"forged"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	remaining, _ := store.Get(context.Background(), "sid")
	if len(remaining) != 1 {
		t.Fatalf("expected cart untouched after forged signature")
	}
}

func TestGetOnSuccessURLRedirects(t *testing.T) {
	r, _ := setupCheckoutRouter(t, shirtCart(), &MockGateway{})

	req := httptest.NewRequest(http.MethodGet, "/payment/success", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/payment" {
		t.Fatalf("expected redirect to /payment, got %q", loc)
	}
}
