package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// createProductRequest uses pointers for numeric required fields so that a
// legitimate zero (price 0, quantity 0) is distinguishable from an absent field.
type createProductRequest struct {
	Code              string   `json:"code"              validate:"required"`
	Name              string   `json:"name"              validate:"required"`
	Description       string   `json:"description"`
	Image             string   `json:"image"`
	Category          string   `json:"category"          validate:"required"`
	InternalReference string   `json:"internalReference"`
	Price             *float64 `json:"price"             validate:"required,gte=0"`
	Quantity          *int     `json:"quantity"          validate:"required,gte=0"`
	ShellID           *int64   `json:"shellId"`
	InventoryStatus   string   `json:"inventoryStatus"   validate:"required,oneof=INSTOCK LOWSTOCK OUTOFSTOCK"`
	Rating            float64  `json:"rating"            validate:"gte=0"`
}

// updateProductRequest is all-optional; absent fields keep their stored value.
type updateProductRequest struct {
	Code              *string  `json:"code"              validate:"omitempty,min=1"`
	Name              *string  `json:"name"              validate:"omitempty,min=1"`
	Description       *string  `json:"description"`
	Image             *string  `json:"image"`
	Category          *string  `json:"category"          validate:"omitempty,min=1"`
	InternalReference *string  `json:"internalReference"`
	Price             *float64 `json:"price"             validate:"omitempty,gte=0"`
	Quantity          *int     `json:"quantity"          validate:"omitempty,gte=0"`
	ShellID           *int64   `json:"shellId"`
	InventoryStatus   *string  `json:"inventoryStatus"   validate:"omitempty,oneof=INSTOCK LOWSTOCK OUTOFSTOCK"`
	Rating            *float64 `json:"rating"            validate:"omitempty,gte=0"`
}

// productResponse is the transport view of a product. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type productResponse struct {
	ID                string    `json:"id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Image             string    `json:"image,omitempty"`
	Category          string    `json:"category,omitempty"`
	InternalReference string    `json:"internalReference,omitempty"`
	Price             float64   `json:"price"`
	Quantity          int       `json:"quantity"`
	ShellID           *int64    `json:"shellId,omitempty"`
	InventoryStatus   string    `json:"inventoryStatus"`
	Rating            float64   `json:"rating"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type messageResponse struct {
	Message string `json:"message"`
}
