package domain

import "time"

type Product struct {
	ProductID   int64     `json:"product_id" db:"product_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Company     string    `json:"company" db:"company"`
	Price       int64     `json:"price" db:"price"` // cents
	Stock       int64     `json:"stock" db:"stock"`
	CreatedDate time.Time `json:"created_date" db:"created_date"`
}
