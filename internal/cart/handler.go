package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/catalog"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func sessionID(c *gin.Context) string {
	return c.GetString("sessionID")
}

// --------------------------------------------------
// Add to cart
// --------------------------------------------------
func (h *Handler) AddToCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	// Quantity comes from the form, default 1
	quantity := 1
	if q := c.PostForm("quantity"); q != "" {
		if parsed, err := strconv.Atoi(q); err == nil {
			quantity = parsed
		}
	}

	updated, err := h.service.AddItem(c.Request.Context(), sessionID(c), productID, quantity)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entry := updated[strconv.Itoa(productID)]
	message := entry.Name + " added to your cart!"
	if quantity > 1 {
		message = strconv.Itoa(ClampQuantity(quantity)) + " x " + entry.Name + " added to your cart!"
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":     updated,
		"message":  message,
		"redirect": "/cart",
	})
}

// --------------------------------------------------
// View cart
// --------------------------------------------------
func (h *Handler) ViewCart(c *gin.Context) {
	current, err := h.service.View(c.Request.Context(), sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":  current,
		"total": current.Total(),
	})
}

// --------------------------------------------------
// Remove from cart
// --------------------------------------------------
func (h *Handler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	updated, err := h.service.RemoveItem(c.Request.Context(), sessionID(c), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":     updated,
		"redirect": "/cart",
	})
}

// --------------------------------------------------
// Checkout summary (cart + total before payment)
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	current, err := h.service.View(c.Request.Context(), sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":  current,
		"total": current.Total(),
	})
}
