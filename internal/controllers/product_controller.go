package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"product-store-be/internal/logger"
	"product-store-be/internal/models"
	"product-store-be/internal/response"
	"product-store-be/internal/service"
	"product-store-be/internal/validation"
)

const (
	defaultLimit  = 10
	defaultOffset = 0
)

type ProductController struct {
	productService service.ProductService
	validator      *validation.Validator
	log            *logger.Logger
}

func NewProductController(productService service.ProductService, validator *validation.Validator, log *logger.Logger) *ProductController {
	return &ProductController{
		productService: productService,
		validator:      validator,
		log:            log,
	}
}

// Create handles POST /products
func (pc *ProductController) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Send(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	// Unlike the auth endpoints, product creation surfaces the specific
	// validation message
	if err := pc.validator.ValidateProduct(&req); err != nil {
		response.Send(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	product, err := pc.productService.Create(&req)
	if err != nil {
		pc.log.Error().Err(err).Msg("product creation failed")
		response.Send(c, http.StatusInternalServerError, false, "An unexpected error has occurred", nil)
		return
	}

	response.Send(c, http.StatusCreated, true, "Product created successfully", product)
}

// FetchByID handles GET /products/:id.
// A missing record is a 200 with null data, not a 404.
func (pc *ProductController) FetchByID(c *gin.Context) {
	id := c.Param("id")

	product, err := pc.productService.GetByID(id)
	if err != nil {
		pc.log.Error().Err(err).Str("id", id).Msg("product fetch failed")
		response.Send(c, http.StatusInternalServerError, false, "An unexpected error has occurred", nil)
		return
	}

	response.Send(c, http.StatusOK, true, "Product fetched successfully", product)
}

// FetchByName handles GET /products/name.
// A missing record is a 200 with null data, same as FetchByID.
func (pc *ProductController) FetchByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.Send(c, http.StatusBadRequest, false, "Product name is required as a query parameter", nil)
		return
	}

	product, err := pc.productService.GetByName(name)
	if err != nil {
		pc.log.Error().Err(err).Str("name", name).Msg("product fetch failed")
		response.Send(c, http.StatusInternalServerError, false, "An unexpected error has occurred", nil)
		return
	}

	response.Send(c, http.StatusOK, true, "Product fetched successfully", product)
}

// FetchAll handles GET /products
func (pc *ProductController) FetchAll(c *gin.Context) {
	products, err := pc.productService.GetAll()
	if err != nil {
		pc.log.Error().Err(err).Msg("product listing failed")
		response.Send(c, http.StatusInternalServerError, false, "An unexpected error has occurred", nil)
		return
	}

	response.Send(c, http.StatusOK, true, "Products fetched successfully", products)
}

// FetchPaginated handles GET /products/paginated.
// limit and offset default to 10/0 when absent or non-numeric; negative
// values are rejected before any store call.
func (pc *ProductController) FetchPaginated(c *gin.Context) {
	limit := queryInt(c, "limit", defaultLimit)
	offset := queryInt(c, "offset", defaultOffset)

	if limit < 0 || offset < 0 {
		response.Send(c, http.StatusBadRequest, false, "Limit and offset must be non-negative numbers", nil)
		return
	}

	products, err := pc.productService.GetPaginated(limit, offset)
	if err != nil {
		pc.log.Error().Err(err).Msg("product listing failed")
		response.Send(c, http.StatusInternalServerError, false, "An unexpected error has occurred", nil)
		return
	}

	response.Send(c, http.StatusOK, true, "Products fetched successfully", products)
}

// Update handles PATCH /products/:id.
// The patch body is not validated and there is no prior existence check;
// an id that matches nothing yields a 200 with null data.
func (pc *ProductController) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pc.log.Error().Err(err).Str("id", id).Msg("product update failed")
		response.Send(c, http.StatusInternalServerError, false, "An unexpected error has occurred", nil)
		return
	}

	product, err := pc.productService.Update(id, &req)
	if err != nil {
		pc.log.Error().Err(err).Str("id", id).Msg("product update failed")
		response.Send(c, http.StatusInternalServerError, false, "An unexpected error has occurred", nil)
		return
	}

	response.Send(c, http.StatusOK, true, "Product updated successfully", product)
}

// Delete handles DELETE /products/:id.
// The only read path that answers 404 for a missing record.
func (pc *ProductController) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := pc.productService.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.Send(c, http.StatusNotFound, false, "Product not found", nil)
			return
		}
		pc.log.Error().Err(err).Str("id", id).Msg("product deletion failed")
		response.Send(c, http.StatusInternalServerError, false, "An unexpected error has occurred", nil)
		return
	}

	response.Send(c, http.StatusOK, true, "Product deleted successfully", deleted)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or non-numeric
func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
