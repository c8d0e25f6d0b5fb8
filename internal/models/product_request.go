package models

// CreateProductRequest represents the request body for creating a product.
// Price and Quantity are pointers so that an explicit zero passes the
// "required" rule while an absent field fails it.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=4"`
	Price       *float64 `json:"price" validate:"required"`
	Quantity    *int     `json:"quantity" validate:"required"`
	Description string   `json:"description" validate:"required,min=20"`
}

// UpdateProductRequest represents a partial update of a product.
// Nil fields are left untouched by the store; the patch body is not
// validated.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	Description *string  `json:"description,omitempty"`
}
