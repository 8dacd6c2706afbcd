package router

import (
	"time"

	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/auth"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/cart"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/catalog"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/checkout"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers collects everything the route table needs.
type Handlers struct {
	Auth     *auth.Handler
	Catalog  *catalog.Handler
	Cart     *cart.Handler
	Checkout *checkout.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", h.Auth.Signup)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", h.Auth.Logout)
	}

	// ───────────────────────── CATALOG ─────────────────────────
	r.GET("/products", h.Catalog.ListProducts)
	r.GET("/products/:id", h.Catalog.GetProduct)

	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		admin.POST("/products", h.Catalog.CreateProduct)
		admin.DELETE("/products/:id", h.Catalog.DeleteProduct)
	}

	// ───────────────────────── CART ─────────────────────────
	carts := r.Group("/")
	carts.Use(middleware.SessionMiddleware())
	{
		carts.GET("/cart", h.Cart.ViewCart)
		carts.POST("/cart/add/:id", h.Cart.AddToCart)
		carts.POST("/cart/remove/:id", h.Cart.RemoveFromCart)
		carts.GET("/checkout", h.Cart.Checkout)
	}

	// ───────────────────────── PAYMENT ─────────────────────────
	pay := r.Group("/")
	pay.Use(
		middleware.SessionMiddleware(),
		middleware.OptionalAuth(),
	)
	{
		pay.GET("/payment", h.Checkout.PaymentPage)
		pay.POST("/payment/success", h.Checkout.PaymentSuccess)
		pay.GET("/payment/success", h.Checkout.PaymentSuccessGet)
	}

	return r
}
