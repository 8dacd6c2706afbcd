package checkout

import "github.com/shopspring/decimal"

// Method is how the customer chose to pay.
type Method string

const (
	MethodCOD Method = "cod"
	MethodUPI Method = "upi"
)

// ParseMethod maps the submitted payment_method field to a Method.
// Missing or unrecognized values fall back to cash on delivery. This is
// a documented policy, not an accident: COD needs no verification, so
// it is the safe terminal for malformed input.
func ParseMethod(value string) Method {
	if value == string(MethodUPI) {
		return MethodUPI
	}
	return MethodCOD
}

// PageContext is everything the payment page needs to render. Optional
// fields are empty strings; the handler serializes those as null.
type PageContext struct {
	Total          decimal.Decimal
	Amount         int64
	OrderID        string
	GatewayKey     string
	GatewayEnabled bool
	QRImage        string
	PaymentURI     string
	PayeeID        string
	Warning        string
}

// Result is a completed checkout.
type Result struct {
	Method  Method
	Message string
}
