package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"product-store-be/internal/entities"
	"product-store-be/internal/models"
)

// ProductRepository defines the interface for product database operations.
// Lookups that match nothing return (nil, nil) rather than an error; a
// malformed UUID is an error.
type ProductRepository interface {
	Create(name string, price float64, quantity int, description string) (*entities.Product, error)
	FindByID(id string) (*entities.Product, error)
	FindByName(name string) (*entities.Product, error)
	FindAll() ([]*entities.Product, error)
	FindWithLimitOffset(limit, offset int) ([]*entities.Product, error)
	UpdateByID(id string, req *models.UpdateProductRequest) (*entities.Product, error)
	DeleteByID(id string) (*entities.Product, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product into the database
func (r *productRepository) Create(name string, price float64, quantity int, description string) (*entities.Product, error) {
	query := `
		INSERT INTO products (name, price, quantity, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, price, quantity, description, created_at, updated_at
	`

	var product entities.Product
	err := r.db.QueryRow(query, name, price, quantity, description).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Quantity,
		&product.Description,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

// FindByID finds a product by ID (UUID)
func (r *productRepository) FindByID(id string) (*entities.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	query := `
		SELECT id, name, price, quantity, description, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product entities.Product
	err := r.db.QueryRow(query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Quantity,
		&product.Description,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return &product, nil
}

// FindByName finds a product by its exact name. The oldest match wins.
func (r *productRepository) FindByName(name string) (*entities.Product, error) {
	query := `
		SELECT id, name, price, quantity, description, created_at, updated_at
		FROM products
		WHERE name = $1
		ORDER BY created_at
		LIMIT 1
	`

	var product entities.Product
	err := r.db.QueryRow(query, name).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Quantity,
		&product.Description,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return &product, nil
}

// FindAll returns every product record
func (r *productRepository) FindAll() ([]*entities.Product, error) {
	query := `
		SELECT id, name, price, quantity, description, created_at, updated_at
		FROM products
		ORDER BY created_at
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// FindWithLimitOffset returns a page of products. Negative values are
// clamped to zero as a second defense layer; the handler rejects them
// with 400 before this is reached.
func (r *productRepository) FindWithLimitOffset(limit, offset int) ([]*entities.Product, error) {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, name, price, quantity, description, created_at, updated_at
		FROM products
		ORDER BY created_at
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// UpdateByID applies a partial update to a product. Nil fields keep their
// stored value. Returns (nil, nil) when the id matches nothing.
func (r *productRepository) UpdateByID(id string, req *models.UpdateProductRequest) (*entities.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	sets := []string{}
	args := []interface{}{}
	i := 1

	if req.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", i))
		args = append(args, *req.Name)
		i++
	}
	if req.Price != nil {
		sets = append(sets, fmt.Sprintf("price = $%d", i))
		args = append(args, *req.Price)
		i++
	}
	if req.Quantity != nil {
		sets = append(sets, fmt.Sprintf("quantity = $%d", i))
		args = append(args, *req.Quantity)
		i++
	}
	if req.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", i))
		args = append(args, *req.Description)
		i++
	}

	if len(sets) == 0 {
		// Empty patch; behave like a plain lookup
		return r.FindByID(id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE products
		SET %s
		WHERE id = $%d
		RETURNING id, name, price, quantity, description, created_at, updated_at
	`, strings.Join(sets, ", "), i)

	var product entities.Product
	err := r.db.QueryRow(query, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Quantity,
		&product.Description,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &product, nil
}

// DeleteByID deletes a product and returns the deleted record, or
// (nil, nil) when the id matches nothing
func (r *productRepository) DeleteByID(id string) (*entities.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	query := `
		DELETE FROM products
		WHERE id = $1
		RETURNING id, name, price, quantity, description, created_at, updated_at
	`

	var product entities.Product
	err := r.db.QueryRow(query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Quantity,
		&product.Description,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	return &product, nil
}

// scanProducts drains a result set into a slice
func scanProducts(rows *sql.Rows) ([]*entities.Product, error) {
	products := []*entities.Product{}
	for rows.Next() {
		var product entities.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Quantity,
			&product.Description,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
