package models

// RegisterRequest represents the request body for user registration.
// Email carries no "required" rule on purpose: the registration schema
// validates an email only when one is present.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=4"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"omitempty,email,tld"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"omitempty,email,tld"`
}

// UpdateUserRequest represents a partial update of a user record.
// Nil fields are left untouched; Password, when set, is re-hashed before
// it reaches the store.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}
