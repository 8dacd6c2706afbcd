package cart

import (
	"context"
	"strconv"

	"github.com/surajcs2005/e-commerce-website-fullstack-group-num-10/internal/catalog"
)

// ProductFinder is the slice of the catalog the cart needs.
type ProductFinder interface {
	Get(ctx context.Context, id int) (*catalog.Product, error)
}

type Service struct {
	store   Store
	catalog ProductFinder
}

func NewService(store Store, catalog ProductFinder) *Service {
	return &Service{store: store, catalog: catalog}
}

// --------------------------------------------------
// Add product to cart (quantity clamped to [1,10])
// --------------------------------------------------
func (s *Service) AddItem(ctx context.Context, sessionID string, productID, quantity int) (Cart, error) {
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	quantity = ClampQuantity(quantity)

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	key := strconv.Itoa(productID)
	if entry, ok := cart[key]; ok {
		entry.Quantity = ClampQuantity(entry.Quantity + quantity)
		cart[key] = entry
	} else {
		cart[key] = Entry{
			Name:     product.Name,
			Price:    product.Price,
			Quantity: quantity,
		}
	}

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// --------------------------------------------------
// Remove product from cart
// --------------------------------------------------
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int) (Cart, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	key := strconv.Itoa(productID)
	if _, ok := cart[key]; ok {
		delete(cart, key)
		if err := s.store.Save(ctx, sessionID, cart); err != nil {
			return nil, err
		}
	}
	return cart, nil
}

// --------------------------------------------------
// View cart with total
// --------------------------------------------------
func (s *Service) View(ctx context.Context, sessionID string) (Cart, error) {
	return s.store.Get(ctx, sessionID)
}
