package routes

import (
	"time"

	"github.com/drilledtools/backend/internal/config"
	"github.com/drilledtools/backend/internal/handlers"
	"github.com/drilledtools/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

// Setup wires the single authoritative route set.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	userHandler *handlers.UserHandler,
	itemHandler *handlers.ItemHandler,
	purchaseHandler *handlers.PurchaseHandler,
	paymentHandler *handlers.PaymentHandler,
	reviewHandler *handlers.ReviewHandler,
	healthHandler *handlers.HealthHandler,
) {
	// 120 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	authed := middleware.JWTProtected(cfg)
	admin := middleware.AdminRequired(db, cfg)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello From Drilled Tools")
	})
	app.Get("/health", healthHandler.Check)

	// Users
	app.Put("/user/admin/:email", authed, admin, userHandler.Promote)
	app.Put("/user/:email", userHandler.Upsert)
	app.Get("/user", authed, userHandler.List)
	app.Get("/user/:email", authed, userHandler.Get)
	app.Delete("/user/:email", authed, admin, userHandler.Delete)
	app.Get("/admin/:email", userHandler.AdminProbe)

	// Catalog
	app.Get("/items", itemHandler.List)
	app.Get("/items/:id", itemHandler.Get)
	app.Post("/items", authed, admin, itemHandler.Create)
	app.Put("/items/:id", authed, admin, itemHandler.Update)
	app.Delete("/items/:id", authed, admin, itemHandler.Delete)

	// Payments
	app.Post("/create-payment-intent", authed, paymentHandler.CreateIntent)

	// Purchases
	app.Get("/purchased", authed, purchaseHandler.List)
	app.Get("/purchased/:id", authed, purchaseHandler.Get)
	app.Post("/purchased", authed, purchaseHandler.Create)
	app.Patch("/purchased/:id", authed, purchaseHandler.ConfirmPayment)
	app.Post("/purchased/:id", authed, admin, purchaseHandler.ConfirmDelivery)
	app.Delete("/purchased/:id", authed, purchaseHandler.Delete)
	app.Get("/purchases", authed, admin, purchaseHandler.ListAll)

	// Reviews
	app.Get("/reviews", reviewHandler.List)
	app.Post("/reviews", authed, reviewHandler.Create)
}
