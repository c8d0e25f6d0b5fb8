package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"product-store-be/internal/entities"
	"product-store-be/internal/jwt"
	"product-store-be/internal/models"
	"product-store-be/internal/repository"
)

// ErrUserExists is returned when registering an email that already resolves
// to a user
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so the two cases are indistinguishable to the caller
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*entities.User, error)
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
	UpdateUser(id string, req *models.UpdateUserRequest) (*entities.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account, hashing the password before it
// reaches the store
func (s *authService) Register(req *models.RegisterRequest) (*entities.User, error) {
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req.Name, req.Email, string(hashedPassword))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns user info with a JWT token
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		Email: user.Email,
		Name:  user.Name,
		Token: token,
		ID:    user.ID,
	}, nil
}

// UpdateUser applies a partial update to a user record. The password is
// hashed only when the request carries a new one, so re-saving a record
// without touching the password never changes the stored hash.
func (s *authService) UpdateUser(id string, req *models.UpdateUserRequest) (*entities.User, error) {
	var passwordHash *string
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		h := string(hashed)
		passwordHash = &h
	}

	user, err := s.userRepo.UpdateByID(id, req.Name, req.Email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
