package catalog

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu       sync.Mutex
	products map[int]*Product
	nextID   int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		products: make(map[int]*Product),
		nextID:   1,
	}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var products []*Product
	for _, p := range r.products {
		products = append(products, p)
	}
	return products, nil
}

func (r *InMemoryRepository) ListByCategory(ctx context.Context, category string) ([]*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var products []*Product
	for _, p := range r.products {
		if p.Category == category {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id int) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, product *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	product.CreatedAt = time.Now()
	r.products[product.ID] = product
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}
