package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Storage uploads product images and returns a public URL.
type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage // nil when image storage is not configured
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// --------------------------------------------------
// Browse products, optionally by category
// --------------------------------------------------
func (s *Service) Browse(ctx context.Context, category string) ([]*Product, error) {
	if category == "" {
		return s.repo.List(ctx)
	}
	return s.repo.ListByCategory(ctx, NormalizeCategory(category))
}

func (s *Service) Get(ctx context.Context, id int) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

// --------------------------------------------------
// Create product (ADMIN)
// --------------------------------------------------
func (s *Service) Create(
	ctx context.Context,
	name, description, price, category string,
	image multipart.File,
	imageName string,
) (*Product, error) {

	if name == "" || price == "" {
		return nil, errors.New("name and price are required")
	}

	amount, err := decimal.NewFromString(price)
	if err != nil {
		return nil, errors.New("invalid price")
	}
	if amount.IsNegative() {
		return nil, errors.New("price must not be negative")
	}

	product := &Product{
		Name:        name,
		Description: description,
		Price:       amount,
		Category:    NormalizeCategory(category),
	}

	if image != nil && s.storage != nil {
		ext := strings.ToLower(filepath.Ext(imageName))
		key := fmt.Sprintf("products/%s%s", uuid.New().String(), ext)

		url, err := s.storage.Upload(ctx, key, image)
		if err != nil {
			return nil, err
		}
		product.ImageURL = url
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// --------------------------------------------------
// Delete product (ADMIN)
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
