package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"product-store-be/internal/logger"
	"product-store-be/internal/models"
	"product-store-be/internal/response"
	"product-store-be/internal/service"
	"product-store-be/internal/validation"
)

type AuthController struct {
	authService service.AuthService
	validator   *validation.Validator
	log         *logger.Logger
}

func NewAuthController(authService service.AuthService, validator *validation.Validator, log *logger.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		validator:   validator,
		log:         log,
	}
}

// Register handles POST /register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Send(c, http.StatusBadRequest, false, "input mismatched", nil)
		return
	}

	// Auth endpoints report a generic message regardless of which rule
	// failed; product creation surfaces the specific one
	if err := ac.validator.ValidateRegister(&req); err != nil {
		response.Send(c, http.StatusBadRequest, false, "input mismatched", nil)
		return
	}

	user, err := ac.authService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			response.Send(c, http.StatusConflict, false, "User already exists", nil)
			return
		}
		ac.log.Error().Err(err).Msg("registration failed")
		response.Send(c, http.StatusInternalServerError, false, "An unexpected error occurred", nil)
		return
	}

	response.Send(c, http.StatusCreated, true, "User registered successfully", user)
}

// Login handles POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Send(c, http.StatusBadRequest, false, "input mismatched", nil)
		return
	}

	if err := ac.validator.ValidateLogin(&req); err != nil {
		response.Send(c, http.StatusBadRequest, false, "input mismatched", nil)
		return
	}

	result, err := ac.authService.Login(&req)
	if err != nil {
		// Unknown email and wrong password are deliberately
		// indistinguishable
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Send(c, http.StatusUnauthorized, false, "Invalid email or password", nil)
			return
		}
		ac.log.Error().Err(err).Msg("login failed")
		response.Send(c, http.StatusInternalServerError, false, "An unexpected error occurred", nil)
		return
	}

	response.Send(c, http.StatusOK, true, "login success", result)
}
