package domain

import (
	"errors"
	"time"
)

// InventoryStatus represents the stock state of a product.
type InventoryStatus string

const (
	StatusInStock    InventoryStatus = "INSTOCK"
	StatusLowStock   InventoryStatus = "LOWSTOCK"
	StatusOutOfStock InventoryStatus = "OUTOFSTOCK"
)

var ErrProductNotFound = errors.New("product not found")
var ErrValidation = errors.New("validation failed")

// IsValid reports whether the status is one of the enumerated values.
func (s InventoryStatus) IsValid() bool {
	switch s {
	case StatusInStock, StatusLowStock, StatusOutOfStock:
		return true
	}
	return false
}

// Product is the catalog aggregate. CreatedAt is set once at creation;
// UpdatedAt is refreshed on every successful update.
type Product struct {
	ID                string          `json:"id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Image             string          `json:"image,omitempty"`
	Category          string          `json:"category,omitempty"`
	InternalReference string          `json:"internalReference,omitempty"`
	Price             float64         `json:"price"`
	Quantity          int             `json:"quantity"`
	ShellID           *int64          `json:"shellId,omitempty"`
	InventoryStatus   InventoryStatus `json:"inventoryStatus"`
	Rating            float64         `json:"rating"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
