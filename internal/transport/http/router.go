package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/session"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/transport/http/handler"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/transport/http/middleware"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Order   *handler.OrderHandler
}

func RegisterRoutes(app *fiber.App, h *Handlers, sessions *session.Manager) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/logout", h.Auth.Logout)

	api := app.Group("/api", middleware.NewSessionMiddleware(sessions))
	api.Get("/me", h.Auth.GetMe)

	product := api.Group("/products")
	product.Get("", h.Product.ListProducts)
	product.Get("/:id", h.Product.FindByID)

	admin := product.Group("", middleware.NewRequireAdminMiddleware())
	admin.Post("", h.Product.Create)
	admin.Post("/import", h.Product.ImportCSV)
	admin.Put("/:id", h.Product.Update)
	admin.Put("/:id/stock", h.Product.SetStock)
	admin.Delete("/:id", h.Product.Delete)

	cart := api.Group("/cart")
	cart.Get("", h.Order.GetCart)
	cart.Post("/items", h.Order.AddItem)
	cart.Delete("/items/:id", h.Order.RemoveItem)
	cart.Delete("", h.Order.ClearCart)
	cart.Post("/checkout", h.Order.Checkout)

	order := api.Group("/orders")
	order.Get("", h.Order.ListOrders)
	order.Get("/:id", h.Order.GetOrder)
}
