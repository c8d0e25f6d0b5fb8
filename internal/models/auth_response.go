package models

// LoginResponse represents the payload returned after a successful login
type LoginResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"` // JWT token
	ID    string `json:"id"`    // UUID
}
