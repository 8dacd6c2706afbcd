package payment

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"os"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

// PlaceholderUPIID is the sample payee id from example configs.
const PlaceholderUPIID = "your-upi-id@paytm"

// FallbackPayeeID is shown in the payment context when no real payee
// id is configured.
const FallbackPayeeID = "your-upi@paytm"

const qrImageSize = 256

// UPIConfig drives the direct-transfer fallback.
type UPIConfig struct {
	PayeeID      string
	MerchantName string
}

func UPIConfigFromEnv() UPIConfig {
	name := os.Getenv("MERCHANT_NAME")
	if name == "" {
		name = "Ecommerce"
	}
	return UPIConfig{
		PayeeID:      os.Getenv("UPI_ID"),
		MerchantName: name,
	}
}

// Configured reports whether a real payee id is set.
func (c UPIConfig) Configured() bool {
	return c.PayeeID != "" && c.PayeeID != PlaceholderUPIID
}

// PaymentURI builds the upi:// deep link a banking app can open.
func (c UPIConfig) PaymentURI(total decimal.Decimal) string {
	return fmt.Sprintf(
		"upi://pay?pa=%s&pn=%s&am=%s&cu=INR&tn=Order Payment",
		c.PayeeID,
		url.PathEscape(c.MerchantName),
		total.StringFixed(2),
	)
}

// QRDataURI encodes the payment URI as a PNG data URI for inline
// rendering. Errors are for the caller to swallow: a missing QR image
// must never abort checkout.
func QRDataURI(uri string) (string, error) {
	png, err := qrcode.Encode(uri, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
