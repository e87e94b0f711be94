package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hbstore/product-catalog/internal/core/domain"
	"github.com/hbstore/product-catalog/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	copy := cloneProduct(p)
	copy.ID = fmt.Sprintf("id-%d", r.nextID)
	r.products[copy.ID] = cloneProduct(copy)
	return cloneProduct(copy), nil
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) UpdateByID(_ context.Context, id string, update ports.ProductUpdate) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if update.Code != nil {
		p.Code = *update.Code
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.Category != nil {
		p.Category = *update.Category
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.Quantity != nil {
		p.Quantity = *update.Quantity
	}
	if update.InventoryStatus != nil {
		p.InventoryStatus = *update.InventoryStatus
	}
	if update.Rating != nil {
		p.Rating = *update.Rating
	}
	p.UpdatedAt = time.Now().UTC()
	return cloneProduct(p), nil
}

func (r *stubProductRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func validCreateInput() ports.CreateProductInput {
	return ports.CreateProductInput{
		Code:            "P-001",
		Name:            "Bamboo Watch",
		Description:     "Product Description",
		Category:        "Accessories",
		Price:           65,
		Quantity:        24,
		InventoryStatus: "INSTOCK",
		Rating:          5,
	}
}

func TestProductService_Create_Success(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	before := time.Now().UTC()
	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if created.Code != "P-001" || created.Name != "Bamboo Watch" || created.Quantity != 24 {
		t.Fatalf("unexpected product: %+v", created)
	}
	if created.InventoryStatus != domain.StatusInStock {
		t.Fatalf("unexpected status: %s", created.InventoryStatus)
	}
	if created.CreatedAt.Before(before) || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected createdAt == updatedAt set at creation, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}

	// create → getById round trip
	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if *got != *created {
		t.Fatalf("stored product differs: %+v vs %+v", got, created)
	}
}

func TestProductService_Create_InvalidStatus(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	input := validCreateInput()
	input.InventoryStatus = "BACKORDER"
	if _, err := svc.Create(context.Background(), input); !errorsIsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.products) != 0 {
		t.Fatalf("nothing should be persisted on validation failure")
	}
}

func TestProductService_Create_MissingFields(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	for _, mutate := range []func(*ports.CreateProductInput){
		func(in *ports.CreateProductInput) { in.Code = "" },
		func(in *ports.CreateProductInput) { in.Name = "" },
		func(in *ports.CreateProductInput) { in.Category = "" },
		func(in *ports.CreateProductInput) { in.Price = -1 },
		func(in *ports.CreateProductInput) { in.Quantity = -1 },
	} {
		input := validCreateInput()
		mutate(&input)
		if _, err := svc.Create(context.Background(), input); !errorsIsValidation(err) {
			t.Fatalf("expected validation error for %+v, got %v", input, err)
		}
	}
	if len(repo.products) != 0 {
		t.Fatalf("nothing should be persisted on validation failure")
	}
}

func TestProductService_List(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), validCreateInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second := validCreateInput()
	second.Code = "P-002"
	if _, err := svc.Create(context.Background(), second); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
}

func TestProductService_Update_Partial(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newPrice := 72.5
	newStatus := "LOWSTOCK"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{
		Price:           &newPrice,
		InventoryStatus: &newStatus,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Price != 72.5 || updated.InventoryStatus != domain.StatusLowStock {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Name != created.Name || updated.Code != created.Code {
		t.Fatalf("untouched fields must be preserved: %+v", updated)
	}
	if !created.CreatedAt.Equal(updated.CreatedAt) {
		t.Fatalf("createdAt must be immutable")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("updatedAt must advance: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
}

func TestProductService_Update_EmptyStillTouchesTimestamp(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("updatedAt must advance even with no field changes")
	}
}

func TestProductService_Update_Validation(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	bad := "DISCONTINUED"
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{InventoryStatus: &bad}); !errorsIsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	empty := ""
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{Name: &empty}); !errorsIsValidation(err) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}

	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{Category: &empty}); !errorsIsValidation(err) {
		t.Fatalf("expected validation error for empty category, got %v", err)
	}
	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Category != created.Category {
		t.Fatalf("rejected update must not change category: %q", got.Category)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateProductInput{}); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound on second delete, got %v", err)
	}
}

func errorsIsValidation(err error) bool {
	return errors.Is(err, domain.ErrValidation)
}
