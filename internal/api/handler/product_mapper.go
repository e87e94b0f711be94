package handler

import (
	"github.com/hbstore/product-catalog/internal/core/domain"
	"github.com/hbstore/product-catalog/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createProductRequest) ports.CreateProductInput {
	in := ports.CreateProductInput{
		Code:              req.Code,
		Name:              req.Name,
		Description:       req.Description,
		Image:             req.Image,
		Category:          req.Category,
		InternalReference: req.InternalReference,
		ShellID:           req.ShellID,
		InventoryStatus:   req.InventoryStatus,
		Rating:            req.Rating,
	}
	if req.Price != nil {
		in.Price = *req.Price
	}
	if req.Quantity != nil {
		in.Quantity = *req.Quantity
	}
	return in
}

func toUpdateInput(req updateProductRequest) ports.UpdateProductInput {
	return ports.UpdateProductInput{
		Code:              req.Code,
		Name:              req.Name,
		Description:       req.Description,
		Image:             req.Image,
		Category:          req.Category,
		InternalReference: req.InternalReference,
		Price:             req.Price,
		Quantity:          req.Quantity,
		ShellID:           req.ShellID,
		InventoryStatus:   req.InventoryStatus,
		Rating:            req.Rating,
	}
}

// --- Domain → Response ---

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:                p.ID,
		Code:              p.Code,
		Name:              p.Name,
		Description:       p.Description,
		Image:             p.Image,
		Category:          p.Category,
		InternalReference: p.InternalReference,
		Price:             p.Price,
		Quantity:          p.Quantity,
		ShellID:           p.ShellID,
		InventoryStatus:   string(p.InventoryStatus),
		Rating:            p.Rating,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
