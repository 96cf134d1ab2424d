package repository

import (
	"context"
	"time"

	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/storage"
)

type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (mo.Option[domain.Product], error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	// FindPage returns one 1-indexed page, newest first. A page past the
	// end is an empty list, not an error.
	FindPage(ctx context.Context, page, pageSize int) ([]domain.Product, error)
	SearchByName(ctx context.Context, name string) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// UpdateStock overwrites the stock figure. False means the product
	// does not exist; that is not an error.
	UpdateStock(ctx context.Context, productID, newStock int64) (bool, error)
}

type productRepo struct {
	base
}

func NewProductRepository(pool *storage.Pool, logger *zap.Logger) ProductRepository {
	return &productRepo{base{pool: pool, logger: logger}}
}

const productColumns = `product_id, name, description, company, price, stock, created_date`

func scanProduct(row scanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ProductID, &p.Name, &p.Description, &p.Company, &p.Price, &p.Stock, &p.CreatedDate)
	return p, err
}

func (r *productRepo) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO product (name, description, company, price, stock, created_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	createdDate := time.Now().UTC()
	id, err := insertRow(ctx, r.base, "product", query,
		product.Name, product.Description, product.Company, product.Price, product.Stock, createdDate)
	if err != nil {
		return nil, err
	}

	product.ProductID = id
	product.CreatedDate = createdDate
	return product, nil
}

func (r *productRepo) FindByID(ctx context.Context, id int64) (mo.Option[domain.Product], error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE product_id = ?`
	return queryOne(ctx, r.base, "error finding product by ID", query, scanProduct, id)
}

func (r *productRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product ORDER BY created_date DESC`
	return queryAll(ctx, r.base, "error finding all products", query, scanProduct)
}

func (r *productRepo) FindPage(ctx context.Context, page, pageSize int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product ORDER BY created_date DESC LIMIT ? OFFSET ?`
	return queryAll(ctx, r.base, "error finding products with pagination", query, scanProduct,
		pageSize, (page-1)*pageSize)
}

func (r *productRepo) SearchByName(ctx context.Context, name string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE LOWER(name) LIKE LOWER(?) ORDER BY name`
	return queryAll(ctx, r.base, "error searching products by name", query, scanProduct,
		"%"+name+"%")
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	count, err := queryOne(ctx, r.base, "error getting total product count", `SELECT COUNT(*) FROM product`,
		func(row scanner) (int64, error) {
			var n int64
			err := row.Scan(&n)
			return n, err
		})
	if err != nil {
		return 0, err
	}
	return count.OrElse(0), nil
}

func (r *productRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE product
		SET name = ?, description = ?, company = ?, price = ?, stock = ?
		WHERE product_id = ?
	`

	n, err := execute(ctx, r.base, "error updating product", query,
		product.Name, product.Description, product.Company, product.Price, product.Stock, product.ProductID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, storage.NewDatabaseError("updating product failed, no rows affected", nil)
	}
	return product, nil
}

func (r *productRepo) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := execute(ctx, r.base, "error deleting product", `DELETE FROM product WHERE product_id = ?`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *productRepo) UpdateStock(ctx context.Context, productID, newStock int64) (bool, error) {
	query := `UPDATE product SET stock = ? WHERE product_id = ?`

	n, err := execute(ctx, r.base, "error updating product stock", query, newStock, productID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
