package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/repository"
)

type OrderService interface {
	// GetCart returns the customer's Cart order, creating one when none
	// exists. Items come back with their product populated.
	GetCart(ctx context.Context, customerID int64) (*domain.Order, error)
	AddItem(ctx context.Context, customerID, productID, quantity int64) (*domain.Order, error)
	RemoveItem(ctx context.Context, customerID, productID int64) (*domain.Order, error)
	ClearCart(ctx context.Context, customerID int64) error
	// Checkout turns the Cart order into a Placed one, decrementing
	// stock per line.
	Checkout(ctx context.Context, customerID int64) (*domain.Order, error)
	ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error)
	GetOrder(ctx context.Context, customerID, orderID int64) (*domain.Order, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	itemRepo     repository.OrderItemRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	logger       *zap.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	logger *zap.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (s *orderService) GetCart(ctx context.Context, customerID int64) (*domain.Order, error) {
	cart, err := s.findOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, cart)
}

func (s *orderService) findOrCreateCart(ctx context.Context, customerID int64) (*domain.Order, error) {
	found, err := s.orderRepo.FindCartByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart, ok := found.Get(); ok {
		return &cart, nil
	}

	return s.orderRepo.Save(ctx, &domain.Order{
		CustomerID: customerID,
		Status:     domain.OrderStatusCart,
	})
}

// populate attaches order items and their products.
func (s *orderService) populate(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items, err := s.itemRepo.FindByOrderID(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		found, err := s.productRepo.FindByID(ctx, items[i].ProductID)
		if err != nil {
			return nil, err
		}
		if product, ok := found.Get(); ok {
			items[i].Product = &product
		}
	}

	order.Items = items
	return order, nil
}

func cartTotal(items []domain.OrderItem) int64 {
	return lo.SumBy(items, func(i domain.OrderItem) int64 {
		return i.Subtotal()
	})
}

func (s *orderService) refreshTotal(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items, err := s.itemRepo.FindByOrderID(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}

	order.TotalAmount = cartTotal(items)
	if _, err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return s.populate(ctx, order)
}

func (s *orderService) AddItem(ctx context.Context, customerID, productID, quantity int64) (*domain.Order, error) {
	foundProduct, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	product, ok := foundProduct.Get()
	if !ok {
		return nil, ErrProductNotFound
	}

	cart, err := s.findOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.itemRepo.FindByOrderAndProduct(ctx, cart.OrderID, productID)
	if err != nil {
		return nil, err
	}

	if item, ok := existing.Get(); ok {
		// Quantity bump keeps the original price snapshot.
		item.Quantity += quantity
		if _, err := s.itemRepo.Update(ctx, &item); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.itemRepo.Save(ctx, &domain.OrderItem{
			OrderID:      cart.OrderID,
			ProductID:    productID,
			Quantity:     quantity,
			PriceAtOrder: product.Price,
		}); err != nil {
			return nil, err
		}
	}

	return s.refreshTotal(ctx, cart)
}

func (s *orderService) RemoveItem(ctx context.Context, customerID, productID int64) (*domain.Order, error) {
	found, err := s.orderRepo.FindCartByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	cart, ok := found.Get()
	if !ok {
		return nil, ErrOrderNotFound
	}

	existing, err := s.itemRepo.FindByOrderAndProduct(ctx, cart.OrderID, productID)
	if err != nil {
		return nil, err
	}
	item, ok := existing.Get()
	if !ok {
		return nil, ErrItemNotInCart
	}

	if _, err := s.itemRepo.Delete(ctx, item.OrderItemID); err != nil {
		return nil, err
	}

	return s.refreshTotal(ctx, &cart)
}

func (s *orderService) ClearCart(ctx context.Context, customerID int64) error {
	found, err := s.orderRepo.FindCartByCustomerID(ctx, customerID)
	if err != nil {
		return err
	}
	cart, ok := found.Get()
	if !ok {
		return ErrOrderNotFound
	}

	if _, err := s.itemRepo.DeleteByOrderID(ctx, cart.OrderID); err != nil {
		return err
	}

	cart.TotalAmount = 0
	_, err = s.orderRepo.Update(ctx, &cart)
	return err
}

func (s *orderService) Checkout(ctx context.Context, customerID int64) (*domain.Order, error) {
	found, err := s.orderRepo.FindCartByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	cart, ok := found.Get()
	if !ok {
		return nil, ErrOrderNotFound
	}

	items, err := s.itemRepo.FindByOrderID(ctx, cart.OrderID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	// Stock is decremented line by line, each as its own statement.
	// Concurrent checkouts can transiently oversell; per-statement
	// atomicity is the storage layer's contract.
	for _, item := range items {
		foundProduct, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		product, ok := foundProduct.Get()
		if !ok {
			return nil, ErrProductNotFound
		}
		if product.Stock < item.Quantity {
			s.logger.Warn("insufficient stock at checkout",
				zap.Int64("product_id", product.ProductID),
				zap.Int64("stock", product.Stock),
				zap.Int64("requested", item.Quantity))
			return nil, ErrInsufficientStock
		}

		if _, err := s.productRepo.UpdateStock(ctx, product.ProductID, product.Stock-item.Quantity); err != nil {
			return nil, err
		}
	}

	cart.Status = domain.OrderStatusPlaced
	cart.OrderDate = time.Now().UTC()
	cart.TotalAmount = cartTotal(items)
	if _, err := s.orderRepo.Update(ctx, &cart); err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.Int64("order_id", cart.OrderID),
		zap.Int64("customer_id", customerID),
		zap.Int64("total_amount", cart.TotalAmount))
	return s.populate(ctx, &cart)
}

func (s *orderService) ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error) {
	return s.orderRepo.FindByCustomerID(ctx, customerID)
}

func (s *orderService) GetOrder(ctx context.Context, customerID, orderID int64) (*domain.Order, error) {
	found, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order, ok := found.Get()
	if !ok || order.CustomerID != customerID {
		return nil, ErrOrderNotFound
	}

	foundCustomer, err := s.customerRepo.FindByID(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer, ok := foundCustomer.Get(); ok {
		order.Customer = &customer
	}

	return s.populate(ctx, &order)
}
