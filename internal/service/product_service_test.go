package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-store-be/internal/cache"
	"product-store-be/internal/entities"
	"product-store-be/internal/models"
)

// fakeProductRepo is an in-memory ProductRepository
type fakeProductRepo struct {
	products    map[string]*entities.Product
	findCalls   int
	deleteCalls int
	nextID      int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entities.Product{}}
}

func (f *fakeProductRepo) Create(name string, price float64, quantity int, description string) (*entities.Product, error) {
	f.nextID++
	p := &entities.Product{
		ID:          fmt.Sprintf("product-%d", f.nextID),
		Name:        name,
		Price:       price,
		Quantity:    quantity,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeProductRepo) FindByID(id string) (*entities.Product, error) {
	f.findCalls++
	return f.products[id], nil
}

func (f *fakeProductRepo) FindByName(name string) (*entities.Product, error) {
	for _, p := range f.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAll() ([]*entities.Product, error) {
	all := []*entities.Product{}
	for _, p := range f.products {
		all = append(all, p)
	}
	return all, nil
}

func (f *fakeProductRepo) FindWithLimitOffset(limit, offset int) ([]*entities.Product, error) {
	all, _ := f.FindAll()
	if offset > len(all) {
		offset = len(all)
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeProductRepo) UpdateByID(id string, req *models.UpdateProductRequest) (*entities.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	p.UpdatedAt = time.Now()
	return p, nil
}

func (f *fakeProductRepo) DeleteByID(id string) (*entities.Product, error) {
	f.deleteCalls++
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	delete(f.products, id)
	return p, nil
}

// fakeCache is an in-memory cache.Cache
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, ok := f.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func createWidget(t *testing.T, svc ProductService) *entities.Product {
	t.Helper()
	price := 9.99
	quantity := 5
	product, err := svc.Create(&models.CreateProductRequest{
		Name:        "Widget",
		Price:       &price,
		Quantity:    &quantity,
		Description: "A generic widget description text.",
	})
	require.NoError(t, err)
	return product
}

func TestProductService_CreateAndGetByID(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	product := createWidget(t, svc)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, 9.99, product.Price)
	assert.Equal(t, 5, product.Quantity)

	found, err := svc.GetByID(product.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, product.ID, found.ID)
}

func TestProductService_GetByID_MissingIsNotAnError(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	product, err := svc.GetByID("missing")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductService_GetByID_ServesFromCache(t *testing.T) {
	repo := newFakeProductRepo()
	c := newFakeCache()
	svc := NewProductService(repo, c)

	product := createWidget(t, svc)

	// Create warmed the cache, so the read never reaches the repository
	found, err := svc.GetByID(product.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, product.ID, found.ID)
	assert.Zero(t, repo.findCalls)
}

func TestProductService_UpdateInvalidatesCache(t *testing.T) {
	repo := newFakeProductRepo()
	c := newFakeCache()
	svc := NewProductService(repo, c)

	product := createWidget(t, svc)

	newName := "Gadget"
	updated, err := svc.Update(product.ID, &models.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Gadget", updated.Name)

	// The stale entry is gone; the next read hits the repository
	found, err := svc.GetByID(product.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Gadget", found.Name)
	assert.NotZero(t, repo.findCalls)
}

func TestProductService_Update_MissingReturnsNil(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	newName := "Gadget"
	updated, err := svc.Update("missing", &models.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestProductService_Delete(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	product := createWidget(t, svc)

	deleted, err := svc.Delete(product.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, product.ID, deleted.ID)

	found, err := svc.GetByID(product.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProductService_Delete_MissingMakesNoDeleteCall(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	_, err := svc.Delete("missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Zero(t, repo.deleteCalls)
}

func TestProductService_GetPaginated(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	for i := 0; i < 5; i++ {
		createWidget(t, svc)
	}

	page, err := svc.GetPaginated(2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	page, err = svc.GetPaginated(10, 3)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	page, err = svc.GetPaginated(0, 0)
	require.NoError(t, err)
	assert.Empty(t, page)
}
