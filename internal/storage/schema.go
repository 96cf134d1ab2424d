package storage

import (
	"context"

	"go.uber.org/zap"
)

// The embedded engine has neither CHECK nor FOREIGN KEY constraints; enum
// validity is enforced by the domain conversion layer and referential
// integrity by the services that write the rows.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customer (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		contact TEXT,
		address TEXT,
		created_date TIMESTAMP NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_customer_email ON customer(email)`,

	`CREATE TABLE IF NOT EXISTS login (
		login_id INTEGER PRIMARY KEY,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		user_type TEXT NOT NULL,
		status TEXT NOT NULL,
		created_date TIMESTAMP NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_login_email ON login(email)`,

	`CREATE TABLE IF NOT EXISTS product (
		product_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		company TEXT,
		price INTEGER NOT NULL,
		stock INTEGER NOT NULL,
		created_date TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		order_id INTEGER PRIMARY KEY,
		customer_id INTEGER NOT NULL,
		order_date TIMESTAMP NOT NULL,
		status TEXT NOT NULL,
		total_amount INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS order_item (
		order_item_id INTEGER PRIMARY KEY,
		order_id INTEGER NOT NULL,
		product_id INTEGER NOT NULL,
		quantity INTEGER NOT NULL,
		price_at_order INTEGER NOT NULL
	)`,
}

// EnsureSchema creates the five tables idempotently. It runs at most once
// per pool even under concurrent first callers. A "table already exists"
// outcome is success; any other DDL failure is logged without aborting.
// The only returned error is a pool one: no session could be borrowed.
func (p *Pool) EnsureSchema(ctx context.Context) error {
	var acquireErr error
	p.schemaOnce.Do(func() {
		conn, err := p.Acquire(ctx)
		if err != nil {
			acquireErr = err
			return
		}
		defer p.Release(conn)

		for _, stmt := range schemaStatements {
			if _, err := conn.ExecContext(ctx, stmt); err != nil {
				if isAlreadyExists(err) {
					p.logger.Info("table already exists, skipping creation")
					continue
				}
				p.logger.Error("error creating table", zap.Error(err))
			}
		}
	})
	return acquireErr
}
