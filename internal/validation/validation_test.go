package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-store-be/internal/models"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestValidateRegister(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr string
	}{
		{
			name: "valid payload",
			req:  models.RegisterRequest{Name: "John Doe", Password: "securepassword", Email: "john@example.com"},
		},
		{
			name: "missing email is allowed",
			req:  models.RegisterRequest{Name: "John Doe", Password: "securepassword"},
		},
		{
			name:    "missing name",
			req:     models.RegisterRequest{Password: "securepassword", Email: "john@example.com"},
			wantErr: "name is required",
		},
		{
			name:    "short name",
			req:     models.RegisterRequest{Name: "Jo", Password: "securepassword", Email: "john@example.com"},
			wantErr: "name must be at least 4 characters long",
		},
		{
			name:    "short password",
			req:     models.RegisterRequest{Name: "John Doe", Password: "short", Email: "john@example.com"},
			wantErr: "password must be at least 8 characters long",
		},
		{
			name:    "malformed email",
			req:     models.RegisterRequest{Name: "John Doe", Password: "securepassword", Email: "invalid-email"},
			wantErr: "email must be a valid email",
		},
		{
			name:    "disallowed top-level domain",
			req:     models.RegisterRequest{Name: "John Doe", Password: "securepassword", Email: "john@example.org"},
			wantErr: "email must end with an allowed top-level domain (.com, .net)",
		},
		{
			name: "net domain is allowed",
			req:  models.RegisterRequest{Name: "John Doe", Password: "securepassword", Email: "john@example.net"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegister(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateRegister_FirstErrorWins(t *testing.T) {
	v := New()

	// Every field violates its rule; only the first (name) is reported
	err := v.ValidateRegister(&models.RegisterRequest{
		Name:     "Jo",
		Password: "short",
		Email:    "invalid",
	})

	require.Error(t, err)
	assert.Equal(t, "name must be at least 4 characters long", err.Error())
}

func TestValidateRegister_DoesNotMutateInput(t *testing.T) {
	v := New()

	req := models.RegisterRequest{Name: "Jo", Password: "short", Email: "invalid"}
	before := req

	_ = v.ValidateRegister(&req)
	assert.Equal(t, before, req)
}

func TestValidateLogin(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr string
	}{
		{
			name: "valid payload",
			req:  models.LoginRequest{Email: "john@example.com", Password: "securepassword"},
		},
		{
			name:    "missing password",
			req:     models.LoginRequest{Email: "john@example.com"},
			wantErr: "password is required",
		},
		{
			name:    "short password",
			req:     models.LoginRequest{Email: "john@example.com", Password: "short"},
			wantErr: "password must be at least 8 characters long",
		},
		{
			name:    "disallowed top-level domain",
			req:     models.LoginRequest{Email: "john@example.io", Password: "securepassword"},
			wantErr: "email must end with an allowed top-level domain (.com, .net)",
		},
		{
			name: "missing email is allowed",
			req:  models.LoginRequest{Password: "securepassword"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateLogin(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateProduct(t *testing.T) {
	v := New()

	valid := models.CreateProductRequest{
		Name:        "Widget",
		Price:       floatPtr(9.99),
		Quantity:    intPtr(5),
		Description: "A generic widget description text.",
	}

	tests := []struct {
		name    string
		mutate  func(r *models.CreateProductRequest)
		wantErr string
	}{
		{
			name:   "valid payload",
			mutate: func(r *models.CreateProductRequest) {},
		},
		{
			name:    "missing name",
			mutate:  func(r *models.CreateProductRequest) { r.Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "short name",
			mutate:  func(r *models.CreateProductRequest) { r.Name = "abc" },
			wantErr: "name must be at least 4 characters long",
		},
		{
			name:    "missing price",
			mutate:  func(r *models.CreateProductRequest) { r.Price = nil },
			wantErr: "price is required",
		},
		{
			name:   "zero price is present",
			mutate: func(r *models.CreateProductRequest) { r.Price = floatPtr(0) },
		},
		{
			name:    "missing quantity",
			mutate:  func(r *models.CreateProductRequest) { r.Quantity = nil },
			wantErr: "quantity is required",
		},
		{
			name:   "zero quantity is present",
			mutate: func(r *models.CreateProductRequest) { r.Quantity = intPtr(0) },
		},
		{
			name:    "short description",
			mutate:  func(r *models.CreateProductRequest) { r.Description = "too short" },
			wantErr: "description must be at least 20 characters long",
		},
		{
			name: "all fields invalid reports name first",
			mutate: func(r *models.CreateProductRequest) {
				r.Name = ""
				r.Price = nil
				r.Quantity = nil
				r.Description = ""
			},
			wantErr: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.ValidateProduct(&req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}
