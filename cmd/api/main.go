package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/auth"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/cart"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/catalog"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/checkout"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/db"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/payment"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/router"
	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/storage"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const cartTTL = 7 * 24 * time.Hour

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── CART STORE ─────────────────────────
	var cartStore cart.Store = cart.NewInMemoryStore()

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatal("❌ Invalid REDIS_URL:", err)
		}

		rdb := redis.NewClient(opts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("❌ Redis connection failed:", err)
		}

		cartStore = cart.NewRedisStore(rdb, cartTTL)
		log.Println("✅ Carts backed by Redis")
	} else {
		log.Println("⚠️  REDIS_URL not set, carts held in memory")
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var imageStorage catalog.Storage
	if storage.Configured() {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		imageStorage = r2Client
	} else {
		log.Println("⚠️  Image storage not configured, product uploads disabled")
	}

	// ───────────────────────── PAYMENT ─────────────────────────
	gateway := payment.NewRazorpayGatewayFromEnv()
	if gateway.Available() {
		log.Println("✅ Razorpay gateway configured")
	}

	upiConfig := payment.UPIConfigFromEnv()
	if upiConfig.Configured() {
		log.Println("✅ UPI QR fallback configured for", upiConfig.PayeeID)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(auth.NewPostgresUserRepository(pgDB))

	catalogService := catalog.NewService(catalog.NewPostgresRepository(pgDB), imageStorage)

	cartService := cart.NewService(cartStore, catalogService)

	checkoutService := checkout.NewService(cartStore, gateway, upiConfig)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Auth:     auth.NewHandler(authService),
		Catalog:  catalog.NewHandler(catalogService),
		Cart:     cart.NewHandler(cartService),
		Checkout: checkout.NewHandler(checkoutService),
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
