package checkout

import (
	"errors"
	"net/http"

	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/payment"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// nullable turns the zero string into JSON null.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// --------------------------------------------------
// Payment page
// --------------------------------------------------
func (h *Handler) PaymentPage(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	userID := c.GetString("userID")

	page, err := h.service.PaymentPage(c.Request.Context(), sessionID, userID)
	if err != nil {
		if errors.Is(err, ErrCartEmpty) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":    "Your cart is empty!",
				"redirect": "/cart",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"total":           page.Total,
		"amount":          page.Amount,
		"order_id":        nullable(page.OrderID),
		"gateway_key":     nullable(page.GatewayKey),
		"gateway_enabled": page.GatewayEnabled,
		"qr_image":        nullable(page.QRImage),
		"payment_uri":     nullable(page.PaymentURI),
		"payee_id":        page.PayeeID,
	}
	if page.Warning != "" {
		resp["warning"] = page.Warning
	}

	c.JSON(http.StatusOK, resp)
}

// --------------------------------------------------
// Payment submission
// --------------------------------------------------
func (h *Handler) PaymentSuccess(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	method := ParseMethod(c.PostForm("payment_method"))
	conf := payment.Confirmation{
		PaymentID: c.PostForm("razorpay_payment_id"),
		OrderID:   c.PostForm("razorpay_order_id"),
		Signature: c.PostForm("razorpay_signature"),
	}

	result, err := h.service.Submit(c.Request.Context(), sessionID, method, conf)
	if err != nil {
		h.renderSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payment_method": string(result.Method),
		"message":        result.Message,
	})
}

func (h *Handler) renderSubmitError(c *gin.Context, err error) {
	var verr *payment.VerificationError

	switch {
	case errors.Is(err, ErrConfirmationIncomplete):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Payment details missing. Please try again.",
			"redirect": "/payment",
		})
	case errors.Is(err, ErrGatewayNotConfigured):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Payment gateway not configured. Please use Cash on Delivery.",
			"redirect": "/payment",
		})
	case errors.Is(err, payment.ErrSignatureInvalid):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Payment verification failed! Please try again.",
			"redirect": "/payment",
		})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    verr.Error(),
			"redirect": "/payment",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// --------------------------------------------------
// GET on the success URL goes back to the payment page
// --------------------------------------------------
func (h *Handler) PaymentSuccessGet(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/payment")
}
