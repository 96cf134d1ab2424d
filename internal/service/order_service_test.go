package service_test

import (
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/service"
)

func (s *ServiceSuite) createProduct(name string, price, stock int64) *domain.Product {
	s.T().Helper()

	product, err := s.CatalogService.CreateProduct(s.Ctx, &domain.Product{
		Name:  name,
		Price: price,
		Stock: stock,
	})
	s.Require().NoError(err)
	return product
}

func (s *ServiceSuite) TestGetCart_CreatesOnFirstUse() {
	customer := s.register("cart@example.com")

	cart, err := s.OrderService.GetCart(s.Ctx, customer.ID)
	s.Require().NoError(err)
	s.Require().NotZero(cart.OrderID)
	s.Require().Equal(domain.OrderStatusCart, cart.Status)
	s.Require().Empty(cart.Items)

	again, err := s.OrderService.GetCart(s.Ctx, customer.ID)
	s.Require().NoError(err)
	s.Require().Equal(cart.OrderID, again.OrderID)
}

func (s *ServiceSuite) TestAddItem_SnapshotsPrice() {
	customer := s.register("snapshot@example.com")
	product := s.createProduct("Olive Oil", 999, 50)

	cart, err := s.OrderService.AddItem(s.Ctx, customer.ID, product.ProductID, 2)
	s.Require().NoError(err)
	s.Require().Len(cart.Items, 1)
	s.Require().Equal(int64(999), cart.Items[0].PriceAtOrder)
	s.Require().Equal(int64(1998), cart.TotalAmount)

	// A later price change must not touch lines already in the cart.
	product.Price = 1299
	_, err = s.CatalogService.UpdateProduct(s.Ctx, product)
	s.Require().NoError(err)

	cart, err = s.OrderService.AddItem(s.Ctx, customer.ID, product.ProductID, 1)
	s.Require().NoError(err)
	s.Require().Len(cart.Items, 1)
	s.Require().Equal(int64(3), cart.Items[0].Quantity)
	s.Require().Equal(int64(999), cart.Items[0].PriceAtOrder)
	s.Require().Equal(int64(2997), cart.TotalAmount)
}

func (s *ServiceSuite) TestAddItem_UnknownProduct() {
	customer := s.register("unknown@example.com")

	_, err := s.OrderService.AddItem(s.Ctx, customer.ID, 99999, 1)
	s.Require().ErrorIs(err, service.ErrProductNotFound)
}

func (s *ServiceSuite) TestRemoveItem() {
	customer := s.register("remove@example.com")
	first := s.createProduct("Keep Me", 500, 10)
	second := s.createProduct("Drop Me", 300, 10)

	_, err := s.OrderService.AddItem(s.Ctx, customer.ID, first.ProductID, 1)
	s.Require().NoError(err)
	_, err = s.OrderService.AddItem(s.Ctx, customer.ID, second.ProductID, 2)
	s.Require().NoError(err)

	cart, err := s.OrderService.RemoveItem(s.Ctx, customer.ID, second.ProductID)
	s.Require().NoError(err)
	s.Require().Len(cart.Items, 1)
	s.Require().Equal(first.ProductID, cart.Items[0].ProductID)
	s.Require().Equal(int64(500), cart.TotalAmount)

	_, err = s.OrderService.RemoveItem(s.Ctx, customer.ID, second.ProductID)
	s.Require().ErrorIs(err, service.ErrItemNotInCart)
}

func (s *ServiceSuite) TestClearCart() {
	customer := s.register("clear@example.com")
	product := s.createProduct("Filler", 100, 10)

	_, err := s.OrderService.AddItem(s.Ctx, customer.ID, product.ProductID, 3)
	s.Require().NoError(err)

	s.Require().NoError(s.OrderService.ClearCart(s.Ctx, customer.ID))

	cart, err := s.OrderService.GetCart(s.Ctx, customer.ID)
	s.Require().NoError(err)
	s.Require().Empty(cart.Items)
	s.Require().Zero(cart.TotalAmount)
}

func (s *ServiceSuite) TestCheckout_Success() {
	customer := s.register("checkout@example.com")
	product := s.createProduct("Rice Bag", 999, 10)

	_, err := s.OrderService.AddItem(s.Ctx, customer.ID, product.ProductID, 2)
	s.Require().NoError(err)

	order, err := s.OrderService.Checkout(s.Ctx, customer.ID)
	s.Require().NoError(err)
	s.Require().Equal(domain.OrderStatusPlaced, order.Status)
	s.Require().Equal(int64(1998), order.TotalAmount)

	// Stock dropped by the ordered quantity.
	got, err := s.CatalogService.GetProduct(s.Ctx, product.ProductID)
	s.Require().NoError(err)
	s.Require().Equal(int64(8), got.Stock)

	// The customer starts over with a fresh cart.
	cart, err := s.OrderService.GetCart(s.Ctx, customer.ID)
	s.Require().NoError(err)
	s.Require().NotEqual(order.OrderID, cart.OrderID)
	s.Require().Empty(cart.Items)

	orders, err := s.OrderService.ListOrders(s.Ctx, customer.ID)
	s.Require().NoError(err)
	s.Require().NotEmpty(orders)
}

func (s *ServiceSuite) TestCheckout_EmptyCart() {
	customer := s.register("empty@example.com")

	_, err := s.OrderService.GetCart(s.Ctx, customer.ID)
	s.Require().NoError(err)

	_, err = s.OrderService.Checkout(s.Ctx, customer.ID)
	s.Require().ErrorIs(err, service.ErrCartEmpty)
}

func (s *ServiceSuite) TestCheckout_InsufficientStock() {
	customer := s.register("nostock@example.com")
	product := s.createProduct("Scarce", 100, 1)

	_, err := s.OrderService.AddItem(s.Ctx, customer.ID, product.ProductID, 5)
	s.Require().NoError(err)

	_, err = s.OrderService.Checkout(s.Ctx, customer.ID)
	s.Require().ErrorIs(err, service.ErrInsufficientStock)

	// Stock is untouched and the cart survives for correction.
	got, err := s.CatalogService.GetProduct(s.Ctx, product.ProductID)
	s.Require().NoError(err)
	s.Require().Equal(int64(1), got.Stock)

	cart, err := s.OrderService.GetCart(s.Ctx, customer.ID)
	s.Require().NoError(err)
	s.Require().Len(cart.Items, 1)
}

func (s *ServiceSuite) TestGetOrder_OwnershipEnforced() {
	owner := s.register("owner@example.com")
	other := s.register("other@example.com")
	product := s.createProduct("Private", 100, 10)

	_, err := s.OrderService.AddItem(s.Ctx, owner.ID, product.ProductID, 1)
	s.Require().NoError(err)

	order, err := s.OrderService.Checkout(s.Ctx, owner.ID)
	s.Require().NoError(err)

	got, err := s.OrderService.GetOrder(s.Ctx, owner.ID, order.OrderID)
	s.Require().NoError(err)
	s.Require().Equal(order.OrderID, got.OrderID)
	s.Require().Len(got.Items, 1)
	s.Require().NotNil(got.Items[0].Product)
	s.Require().NotNil(got.Customer)
	s.Require().Equal(owner.ID, got.Customer.ID)

	_, err = s.OrderService.GetOrder(s.Ctx, other.ID, order.OrderID)
	s.Require().ErrorIs(err, service.ErrOrderNotFound)
}
