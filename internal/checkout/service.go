package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/cart"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/payment"
)

var (
	ErrCartEmpty              = errors.New("cart is empty")
	ErrConfirmationIncomplete = errors.New("payment details missing")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
)

type Service struct {
	store   cart.Store
	gateway payment.Gateway
	upi     payment.UPIConfig
}

func NewService(store cart.Store, gateway payment.Gateway, upi payment.UPIConfig) *Service {
	return &Service{store: store, gateway: gateway, upi: upi}
}

// --------------------------------------------------
// Payment page
// --------------------------------------------------

// PaymentPage prepares the rendering context for the payment view.
// Both optional capabilities degrade independently: a dead gateway or a
// failed QR encode still yields a usable page offering COD.
func (s *Service) PaymentPage(ctx context.Context, sessionID, userID string) (*PageContext, error) {
	current, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(current) == 0 {
		return nil, ErrCartEmpty
	}

	total := current.Total()

	page := &PageContext{
		Total:   total,
		Amount:  cart.MinorUnits(total),
		PayeeID: payment.FallbackPayeeID,
	}

	// UPI QR fallback, best effort
	if s.upi.Configured() {
		page.PayeeID = s.upi.PayeeID
		page.PaymentURI = s.upi.PaymentURI(total)

		img, err := payment.QRDataURI(page.PaymentURI)
		if err != nil {
			log.Printf("⚠️  QR generation failed: %v", err)
			page.PaymentURI = ""
		} else {
			page.QRImage = img
		}
	}

	// Online payment via the gateway, degrade on any failure
	if s.gateway.Available() {
		if userID == "" {
			userID = "guest"
		}
		receipt := fmt.Sprintf("order_%s_%s", userID, total)

		intent, err := s.gateway.CreateIntent(ctx, page.Amount, "INR", receipt)
		if err != nil {
			log.Printf("⚠️  gateway order creation failed: %v", err)
			page.Warning = fmt.Sprintf("Payment gateway error: %v. Using simple payment method.", err)
		} else {
			page.OrderID = intent.ID
			page.GatewayKey = s.gateway.Key()
			page.GatewayEnabled = true
		}
	}

	return page, nil
}

// --------------------------------------------------
// Payment submission
// --------------------------------------------------

// Submit finishes checkout for the chosen method. The cart is cleared
// exactly when a payment path concludes successfully; every failure
// leaves it untouched so the customer can retry or switch method.
func (s *Service) Submit(ctx context.Context, sessionID string, method Method, conf payment.Confirmation) (*Result, error) {
	switch method {
	case MethodUPI:
		return s.submitUPI(ctx, sessionID, conf)
	default:
		return s.submitCOD(ctx, sessionID)
	}
}

func (s *Service) submitCOD(ctx context.Context, sessionID string) (*Result, error) {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	return &Result{
		Method:  MethodCOD,
		Message: "Order placed successfully! You will pay cash on delivery.",
	}, nil
}

func (s *Service) submitUPI(ctx context.Context, sessionID string, conf payment.Confirmation) (*Result, error) {
	if conf.PaymentID == "" || conf.OrderID == "" || conf.Signature == "" {
		return nil, ErrConfirmationIncomplete
	}
	if !s.gateway.Available() {
		return nil, ErrGatewayNotConfigured
	}

	if err := s.gateway.VerifySignature(conf); err != nil {
		if errors.Is(err, payment.ErrSignatureInvalid) {
			return nil, payment.ErrSignatureInvalid
		}
		return nil, &payment.VerificationError{Err: err}
	}

	if err := s.store.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	return &Result{
		Method:  MethodUPI,
		Message: "Payment successful! Your order has been placed.",
	}, nil
}
