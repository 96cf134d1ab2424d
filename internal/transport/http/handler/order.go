package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/service"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/transport/http/middleware"
	"github.com/saitejaboorla/Online-Grocery-Bolt/pkg/utils"
)

type OrderHandler struct {
	orders   service.OrderService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewOrderHandler(orders service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		validate: validator.New(),
		logger:   logger,
	}
}

type AddItemInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

func (h *OrderHandler) GetCart(c *fiber.Ctx) error {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "customerId parsing error"})
	}

	cart, err := h.orders.GetCart(c.UserContext(), customerID)
	if err != nil {
		h.logger.Warn("get cart failed", zap.Int64("customer_id", customerID), zap.Error(err))
		return serviceError(c, err)
	}

	return c.JSON(cart)
}

func (h *OrderHandler) AddItem(c *fiber.Ctx) error {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "customerId parsing error"})
	}

	input := new(AddItemInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": utils.FormatValidationError(err),
		})
	}

	cart, err := h.orders.AddItem(c.UserContext(), customerID, input.ProductID, input.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}

		h.logger.Warn("add item failed",
			zap.Int64("customer_id", customerID),
			zap.Int64("product_id", input.ProductID),
			zap.Error(err),
		)

		return serviceError(c, err)
	}

	return c.JSON(cart)
}

func (h *OrderHandler) RemoveItem(c *fiber.Ctx) error {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "customerId parsing error"})
	}

	productID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id is invalid"})
	}

	cart, err := h.orders.RemoveItem(c.UserContext(), customerID, productID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "cart not found"})
		case errors.Is(err, service.ErrItemNotInCart):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not in cart"})
		}

		h.logger.Warn("remove item failed",
			zap.Int64("customer_id", customerID),
			zap.Int64("product_id", productID),
			zap.Error(err),
		)

		return serviceError(c, err)
	}

	return c.JSON(cart)
}

func (h *OrderHandler) ClearCart(c *fiber.Ctx) error {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "customerId parsing error"})
	}

	if err := h.orders.ClearCart(c.UserContext(), customerID); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "cart not found"})
		}

		h.logger.Warn("clear cart failed", zap.Int64("customer_id", customerID), zap.Error(err))
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "customerId parsing error"})
	}

	order, err := h.orders.Checkout(c.UserContext(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "cart not found"})
		case errors.Is(err, service.ErrCartEmpty):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cart is empty"})
		case errors.Is(err, service.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "insufficient stock"})
		case errors.Is(err, service.ErrProductNotFound):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "product no longer available"})
		}

		h.logger.Warn("checkout failed", zap.Int64("customer_id", customerID), zap.Error(err))
		return serviceError(c, err)
	}

	return c.JSON(order)
}

func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "customerId parsing error"})
	}

	orders, err := h.orders.ListOrders(c.UserContext(), customerID)
	if err != nil {
		h.logger.Warn("list orders failed", zap.Int64("customer_id", customerID), zap.Error(err))
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"items": orders})
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "customerId parsing error"})
	}

	orderID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Id is invalid"})
	}

	order, err := h.orders.GetOrder(c.UserContext(), customerID, orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
		}

		h.logger.Warn("get order failed",
			zap.Int64("customer_id", customerID),
			zap.Int64("order_id", orderID),
			zap.Error(err),
		)

		return serviceError(c, err)
	}

	return c.JSON(order)
}
