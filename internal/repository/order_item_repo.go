package repository

import (
	"context"

	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/storage"
)

type OrderItemRepository interface {
	Save(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error)
	FindByID(ctx context.Context, id int64) (mo.Option[domain.OrderItem], error)
	FindByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	FindByOrderAndProduct(ctx context.Context, orderID, productID int64) (mo.Option[domain.OrderItem], error)
	Update(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// DeleteByOrderID removes every line of an order, used when a cart
	// or order is cleared. False means there was nothing to remove.
	DeleteByOrderID(ctx context.Context, orderID int64) (bool, error)
}

type orderItemRepo struct {
	base
}

func NewOrderItemRepository(pool *storage.Pool, logger *zap.Logger) OrderItemRepository {
	return &orderItemRepo{base{pool: pool, logger: logger}}
}

const orderItemColumns = `order_item_id, order_id, product_id, quantity, price_at_order`

func scanOrderItem(row scanner) (domain.OrderItem, error) {
	var i domain.OrderItem
	err := row.Scan(&i.OrderItemID, &i.OrderID, &i.ProductID, &i.Quantity, &i.PriceAtOrder)
	return i, err
}

func (r *orderItemRepo) Save(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	query := `
		INSERT INTO order_item (order_id, product_id, quantity, price_at_order)
		VALUES (?, ?, ?, ?)
	`

	id, err := insertRow(ctx, r.base, "order item", query,
		item.OrderID, item.ProductID, item.Quantity, item.PriceAtOrder)
	if err != nil {
		return nil, err
	}

	item.OrderItemID = id
	return item, nil
}

func (r *orderItemRepo) FindByID(ctx context.Context, id int64) (mo.Option[domain.OrderItem], error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_item WHERE order_item_id = ?`
	return queryOne(ctx, r.base, "error finding order item by ID", query, scanOrderItem, id)
}

func (r *orderItemRepo) FindByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_item WHERE order_id = ? ORDER BY order_item_id`
	return queryAll(ctx, r.base, "error finding order items by order ID", query, scanOrderItem, orderID)
}

func (r *orderItemRepo) FindByOrderAndProduct(ctx context.Context, orderID, productID int64) (mo.Option[domain.OrderItem], error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_item WHERE order_id = ? AND product_id = ?`
	return queryOne(ctx, r.base, "error finding order item by order and product", query, scanOrderItem,
		orderID, productID)
}

func (r *orderItemRepo) Update(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	query := `
		UPDATE order_item
		SET order_id = ?, product_id = ?, quantity = ?, price_at_order = ?
		WHERE order_item_id = ?
	`

	n, err := execute(ctx, r.base, "error updating order item", query,
		item.OrderID, item.ProductID, item.Quantity, item.PriceAtOrder, item.OrderItemID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, storage.NewDatabaseError("updating order item failed, no rows affected", nil)
	}
	return item, nil
}

func (r *orderItemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := execute(ctx, r.base, "error deleting order item", `DELETE FROM order_item WHERE order_item_id = ?`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *orderItemRepo) DeleteByOrderID(ctx context.Context, orderID int64) (bool, error) {
	n, err := execute(ctx, r.base, "error deleting order items by order ID", `DELETE FROM order_item WHERE order_id = ?`, orderID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
