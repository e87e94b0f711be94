package ports

import (
	"context"

	"github.com/hbstore/product-catalog/internal/core/domain"
)

// CreateProductInput carries all data needed to create a new product.
type CreateProductInput struct {
	Code              string
	Name              string
	Description       string
	Image             string
	Category          string
	InternalReference string
	Price             float64
	Quantity          int
	ShellID           *int64
	InventoryStatus   string
	Rating            float64
}

// UpdateProductInput carries a partial update. Nil pointers mean the field
// was absent from the request and must keep its stored value.
type UpdateProductInput struct {
	Code              *string
	Name              *string
	Description       *string
	Image             *string
	Category          *string
	InternalReference *string
	Price             *float64
	Quantity          *int
	ShellID           *int64
	InventoryStatus   *string
	Rating            *float64
}

// ProductService defines use-case operations for the product catalog.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
