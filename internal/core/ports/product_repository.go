package ports

import (
	"context"

	"github.com/hbstore/product-catalog/internal/core/domain"
)

// ProductUpdate carries the fields of a partial update. Nil pointers mean
// "leave unchanged"; the repository translates set fields into a single
// atomic overwrite of the matched document (last write wins).
type ProductUpdate struct {
	Code              *string
	Name              *string
	Description       *string
	Image             *string
	Category          *string
	InternalReference *string
	Price             *float64
	Quantity          *int
	ShellID           *int64
	InventoryStatus   *domain.InventoryStatus
	Rating            *float64
}

// ProductRepository defines persistence operations for products. The concrete
// storage engine stays swappable behind this interface.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// UpdateByID applies the set fields plus a fresh updatedAt and returns
	// the stored record after the write.
	UpdateByID(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	DeleteByID(ctx context.Context, id string) error
}
