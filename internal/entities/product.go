package entities

import "time"

// Product represents a product entity in the database
type Product struct {
	ID          string    `json:"id"` // UUID
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
