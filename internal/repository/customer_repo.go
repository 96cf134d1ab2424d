package repository

import (
	"context"
	"time"

	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/storage"
)

type CustomerRepository interface {
	Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (mo.Option[domain.Customer], error)
	FindByEmail(ctx context.Context, email string) (mo.Option[domain.Customer], error)
	FindAll(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type customerRepo struct {
	base
}

func NewCustomerRepository(pool *storage.Pool, logger *zap.Logger) CustomerRepository {
	return &customerRepo{base{pool: pool, logger: logger}}
}

const customerColumns = `id, name, email, contact, address, created_date`

func scanCustomer(row scanner) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Contact, &c.Address, &c.CreatedDate)
	return c, err
}

func (r *customerRepo) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customer (name, email, contact, address, created_date)
		VALUES (?, ?, ?, ?, ?)
	`

	createdDate := time.Now().UTC()
	id, err := insertRow(ctx, r.base, "customer", query,
		customer.Name, customer.Email, customer.Contact, customer.Address, createdDate)
	if err != nil {
		return nil, err
	}

	customer.ID = id
	customer.CreatedDate = createdDate
	return customer, nil
}

func (r *customerRepo) FindByID(ctx context.Context, id int64) (mo.Option[domain.Customer], error) {
	query := `SELECT ` + customerColumns + ` FROM customer WHERE id = ?`
	return queryOne(ctx, r.base, "error finding customer by ID", query, scanCustomer, id)
}

func (r *customerRepo) FindByEmail(ctx context.Context, email string) (mo.Option[domain.Customer], error) {
	query := `SELECT ` + customerColumns + ` FROM customer WHERE email = ?`
	return queryOne(ctx, r.base, "error finding customer by email", query, scanCustomer, email)
}

func (r *customerRepo) FindAll(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customer ORDER BY created_date DESC`
	return queryAll(ctx, r.base, "error finding all customers", query, scanCustomer)
}

func (r *customerRepo) Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `
		UPDATE customer
		SET name = ?, email = ?, contact = ?, address = ?
		WHERE id = ?
	`

	n, err := execute(ctx, r.base, "error updating customer", query,
		customer.Name, customer.Email, customer.Contact, customer.Address, customer.ID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, storage.NewDatabaseError("updating customer failed, no rows affected", nil)
	}
	return customer, nil
}

func (r *customerRepo) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := execute(ctx, r.base, "error deleting customer", `DELETE FROM customer WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
