package domain

import "time"

type Customer struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Contact     string    `json:"contact" db:"contact"`
	Address     string    `json:"address" db:"address"`
	CreatedDate time.Time `json:"created_date" db:"created_date"`
}
