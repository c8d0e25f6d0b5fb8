package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"product-store-be/internal/cache"
	"product-store-be/internal/entities"
	"product-store-be/internal/models"
	"product-store-be/internal/repository"
)

// ErrProductNotFound is returned by Delete when the id matches nothing
var ErrProductNotFound = errors.New("product not found")

// productCacheTTL bounds how long a cached product may go stale
const productCacheTTL = 5 * time.Minute

// ProductService defines the interface for product business logic.
// Lookups that match nothing return (nil, nil); only Delete treats absence
// as an error.
type ProductService interface {
	Create(req *models.CreateProductRequest) (*entities.Product, error)
	GetByID(id string) (*entities.Product, error)
	GetByName(name string) (*entities.Product, error)
	GetAll() ([]*entities.Product, error)
	GetPaginated(limit, offset int) ([]*entities.Product, error)
	Update(id string, req *models.UpdateProductRequest) (*entities.Product, error)
	Delete(id string) (*entities.Product, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
	ctx   context.Context
}

// NewProductService creates a new product service. cacheClient may be nil;
// the service then serves every read from the repository.
func NewProductService(repo repository.ProductRepository, cacheClient cache.Cache) ProductService {
	svc := &productService{
		repo: repo,
		ctx:  context.Background(),
	}

	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}

	return svc
}

func productCacheKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

// Create persists a new product and warms the by-id cache
func (s *productService) Create(req *models.CreateProductRequest) (*entities.Product, error) {
	product, err := s.repo.Create(req.Name, *req.Price, *req.Quantity, req.Description)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// Best effort; a cache failure never fails the request
		s.cache.SetJSON(s.ctx, productCacheKey(product.ID), product, productCacheTTL)
	}

	return product, nil
}

// GetByID returns a product by id, serving from cache when possible.
// A missing record is (nil, nil), not an error.
func (s *productService) GetByID(id string) (*entities.Product, error) {
	if s.cache != nil {
		var cached entities.Product
		if err := s.cache.GetJSON(s.ctx, productCacheKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if product != nil && s.cache != nil {
		s.cache.SetJSON(s.ctx, productCacheKey(id), product, productCacheTTL)
	}

	return product, nil
}

// GetByName returns a product by its exact name, or (nil, nil)
func (s *productService) GetByName(name string) (*entities.Product, error) {
	return s.repo.FindByName(name)
}

// GetAll returns the full collection
func (s *productService) GetAll() ([]*entities.Product, error) {
	return s.repo.FindAll()
}

// GetPaginated returns a page of products
func (s *productService) GetPaginated(limit, offset int) ([]*entities.Product, error) {
	return s.repo.FindWithLimitOffset(limit, offset)
}

// Update applies a partial update with no prior existence check; the result
// is (nil, nil) when the id matched nothing. The by-id cache entry is
// dropped so the next read sees the new state.
func (s *productService) Update(id string, req *models.UpdateProductRequest) (*entities.Product, error) {
	product, err := s.repo.UpdateByID(id, req)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Delete(s.ctx, productCacheKey(id))
	}

	return product, nil
}

// Delete looks the product up first and returns ErrProductNotFound when it
// is absent; no delete call is made in that case
func (s *productService) Delete(id string) (*entities.Product, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	deleted, err := s.repo.DeleteByID(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Delete(s.ctx, productCacheKey(id))
	}

	return deleted, nil
}
