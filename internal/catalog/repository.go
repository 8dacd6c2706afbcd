package catalog

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	List(ctx context.Context) ([]*Product, error)
	ListByCategory(ctx context.Context, category string) ([]*Product, error)
	FindByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id int) error
}
