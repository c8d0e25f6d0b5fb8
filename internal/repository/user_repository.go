package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"product-store-be/internal/entities"
)

// UserRepository defines the interface for user database operations.
// Lookups that match nothing return (nil, nil) rather than an error.
type UserRepository interface {
	Create(name, email, passwordHash string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
	FindAll() ([]*entities.User, error)
	UpdateByID(id string, name, email, passwordHash *string) (*entities.User, error)
	DeleteByID(id string) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(name, email, passwordHash string) (*entities.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password_hash, created_at, updated_at
	`

	var user entities.User
	err := r.db.QueryRow(query, name, email, passwordHash).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// FindByEmail finds a user by email. Emails carry no unique index, so the
// oldest matching record wins.
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
		ORDER BY created_at
		LIMIT 1
	`

	var user entities.User
	err := r.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// FindByID finds a user by ID (UUID)
func (r *userRepository) FindByID(id string) (*entities.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user entities.User
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// FindAll returns every user record
func (r *userRepository) FindAll() ([]*entities.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		ORDER BY created_at
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*entities.User{}
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// UpdateByID applies a partial update to a user. Nil fields keep their
// stored value; in particular a nil passwordHash leaves the stored hash
// untouched. Returns (nil, nil) when the id matches nothing.
func (r *userRepository) UpdateByID(id string, name, email, passwordHash *string) (*entities.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	sets := []string{}
	args := []interface{}{}
	i := 1

	if name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", i))
		args = append(args, *name)
		i++
	}
	if email != nil {
		sets = append(sets, fmt.Sprintf("email = $%d", i))
		args = append(args, *email)
		i++
	}
	if passwordHash != nil {
		sets = append(sets, fmt.Sprintf("password_hash = $%d", i))
		args = append(args, *passwordHash)
		i++
	}

	if len(sets) == 0 {
		// Nothing to change; behave like a plain lookup
		return r.FindByID(id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING id, name, email, password_hash, created_at, updated_at
	`, strings.Join(sets, ", "), i)

	var user entities.User
	err := r.db.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &user, nil
}

// DeleteByID deletes a user and returns the deleted record, or (nil, nil)
// when the id matches nothing
func (r *userRepository) DeleteByID(id string) (*entities.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	query := `
		DELETE FROM users
		WHERE id = $1
		RETURNING id, name, email, password_hash, created_at, updated_at
	`

	var user entities.User
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return &user, nil
}
