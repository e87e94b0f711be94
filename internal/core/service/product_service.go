package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hbstore/product-catalog/internal/core/domain"
	"github.com/hbstore/product-catalog/internal/core/ports"
)

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// Create validates required fields and persists a new product with
// server-assigned id and timestamps.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Code == "" || input.Name == "" || input.Category == "" {
		return nil, fmt.Errorf("%w: code, name and category are required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	status := domain.InventoryStatus(input.InventoryStatus)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: inventoryStatus must be one of INSTOCK, LOWSTOCK, OUTOFSTOCK", domain.ErrValidation)
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Code:              input.Code,
		Name:              input.Name,
		Description:       input.Description,
		Image:             input.Image,
		Category:          input.Category,
		InternalReference: input.InternalReference,
		Price:             input.Price,
		Quantity:          input.Quantity,
		ShellID:           input.ShellID,
		InventoryStatus:   status,
		Rating:            input.Rating,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("code", input.Code).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("code", created.Code).Msg("product created")
	return created, nil
}

// List returns all products in store-native order.
func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial overwrite. Modified fields are re-validated
// against the same constraints as Create; updatedAt is refreshed on every
// successful call even when no other field changes.
func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	update := ports.ProductUpdate{
		Code:              input.Code,
		Name:              input.Name,
		Description:       input.Description,
		Image:             input.Image,
		Category:          input.Category,
		InternalReference: input.InternalReference,
		Price:             input.Price,
		Quantity:          input.Quantity,
		ShellID:           input.ShellID,
		Rating:            input.Rating,
	}
	if input.InventoryStatus != nil {
		status := domain.InventoryStatus(*input.InventoryStatus)
		update.InventoryStatus = &status
	}

	updated, err := s.repo.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func validateUpdate(input ports.UpdateProductInput) error {
	if input.Code != nil && *input.Code == "" {
		return fmt.Errorf("%w: code must not be empty", domain.ErrValidation)
	}
	if input.Name != nil && *input.Name == "" {
		return fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
	}
	if input.Category != nil && *input.Category == "" {
		return fmt.Errorf("%w: category must not be empty", domain.ErrValidation)
	}
	if input.Price != nil && *input.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	if input.InventoryStatus != nil && !domain.InventoryStatus(*input.InventoryStatus).IsValid() {
		return fmt.Errorf("%w: inventoryStatus must be one of INSTOCK, LOWSTOCK, OUTOFSTOCK", domain.ErrValidation)
	}
	return nil
}
