package repository

import (
	"context"
	"time"

	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/storage"
)

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (mo.Option[domain.Order], error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]domain.Order, error)
	// FindCartByCustomerID returns the customer's current Cart-status
	// order; at most one exists per customer.
	FindCartByCustomerID(ctx context.Context, customerID int64) (mo.Option[domain.Order], error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type orderRepo struct {
	base
}

func NewOrderRepository(pool *storage.Pool, logger *zap.Logger) OrderRepository {
	return &orderRepo{base{pool: pool, logger: logger}}
}

const orderColumns = `order_id, customer_id, order_date, status, total_amount`

func scanOrder(row scanner) (domain.Order, error) {
	var (
		o      domain.Order
		status string
	)
	if err := row.Scan(&o.OrderID, &o.CustomerID, &o.OrderDate, &status, &o.TotalAmount); err != nil {
		return o, err
	}

	var err error
	if o.Status, err = domain.ParseOrderStatus(status); err != nil {
		return o, err
	}
	return o, nil
}

func (r *orderRepo) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
		INSERT INTO orders (customer_id, order_date, status, total_amount)
		VALUES (?, ?, ?, ?)
	`

	orderDate := order.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now().UTC()
	}

	id, err := insertRow(ctx, r.base, "order", query,
		order.CustomerID, orderDate, string(order.Status), order.TotalAmount)
	if err != nil {
		return nil, err
	}

	order.OrderID = id
	order.OrderDate = orderDate
	return order, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id int64) (mo.Option[domain.Order], error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = ?`
	return queryOne(ctx, r.base, "error finding order by ID", query, scanOrder, id)
}

func (r *orderRepo) FindByCustomerID(ctx context.Context, customerID int64) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = ? ORDER BY order_date DESC`
	return queryAll(ctx, r.base, "error finding orders by customer ID", query, scanOrder, customerID)
}

func (r *orderRepo) FindCartByCustomerID(ctx context.Context, customerID int64) (mo.Option[domain.Order], error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = ? AND status = ?`
	return queryOne(ctx, r.base, "error finding cart by customer ID", query, scanOrder,
		customerID, string(domain.OrderStatusCart))
}

func (r *orderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY order_date DESC`
	return queryAll(ctx, r.base, "error finding all orders", query, scanOrder)
}

func (r *orderRepo) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
		UPDATE orders
		SET customer_id = ?, order_date = ?, status = ?, total_amount = ?
		WHERE order_id = ?
	`

	n, err := execute(ctx, r.base, "error updating order", query,
		order.CustomerID, order.OrderDate, string(order.Status), order.TotalAmount, order.OrderID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, storage.NewDatabaseError("updating order failed, no rows affected", nil)
	}
	return order, nil
}

func (r *orderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := execute(ctx, r.base, "error deleting order", `DELETE FROM orders WHERE order_id = ?`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
