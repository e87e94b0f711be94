package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hbstore/product-catalog/internal/core/domain"
	"github.com/hbstore/product-catalog/internal/core/ports"
)

const productsCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

type productDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Code              string             `bson:"code"`
	Name              string             `bson:"name"`
	Description       string             `bson:"description,omitempty"`
	Image             string             `bson:"image,omitempty"`
	Category          string             `bson:"category,omitempty"`
	InternalReference string             `bson:"internalReference,omitempty"`
	Price             float64            `bson:"price"`
	Quantity          int                `bson:"quantity"`
	ShellID           *int64             `bson:"shellId,omitempty"`
	InventoryStatus   string             `bson:"inventoryStatus"`
	Rating            float64            `bson:"rating"`
	CreatedAt         time.Time          `bson:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt"`
}

func toDoc(p *domain.Product) productDoc {
	return productDoc{
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

func toDomain(doc productDoc) *domain.Product {
	return &domain.Product{
		ID:                doc.ID.Hex(),
		Code:              doc.Code,
		Name:              doc.Name,
		Description:       doc.Description,
		Image:             doc.Image,
		Category:          doc.Category,
		InternalReference: doc.InternalReference,
		Price:             doc.Price,
		Quantity:          doc.Quantity,
		ShellID:           doc.ShellID,
		InventoryStatus:   domain.InventoryStatus(doc.InventoryStatus),
		Rating:            doc.Rating,
		CreatedAt:         doc.CreatedAt.UTC(),
		UpdatedAt:         doc.UpdatedAt.UTC(),
	}
}

// Create inserts a new product document and returns it with the
// store-assigned id.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toDoc(p))
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindAll returns every product in natural collection order.
func (r *ProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]*domain.Product, 0)
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, toDomain(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return toDomain(doc), nil
}

// UpdateByID applies the set fields as a single $set and returns the document
// after the write. updatedAt is always part of the $set so it advances even
// when no other field is supplied.
func (r *ProductRepository) UpdateByID(ctx context.Context, id string, update ports.ProductUpdate) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	setField(set, "code", update.Code)
	setField(set, "name", update.Name)
	setField(set, "description", update.Description)
	setField(set, "image", update.Image)
	setField(set, "category", update.Category)
	setField(set, "internalReference", update.InternalReference)
	setField(set, "price", update.Price)
	setField(set, "quantity", update.Quantity)
	setField(set, "shellId", update.ShellID)
	setField(set, "rating", update.Rating)
	if update.InventoryStatus != nil {
		set["inventoryStatus"] = string(*update.InventoryStatus)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc productDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return toDomain(doc), nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// EnsureIndexes creates supporting indexes on the products collection.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func setField[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}
