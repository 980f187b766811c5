package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductRecord is the persisted form of a product. The keys of the owning
// variant are always written, the keys of other variants never are.
type ProductRecord struct {
	Type            string      `json:"type"`
	ProductID       string      `json:"product_id"`
	Name            string      `json:"name"`
	Price           json.Number `json:"price"`
	QuantityInStock int         `json:"quantity_in_stock"`

	Brand         *string `json:"brand,omitempty"`
	WarrantyYears *int    `json:"warranty_years,omitempty"`

	ExpiryDate *string `json:"expiry_date,omitempty"`

	Size     *string `json:"size,omitempty"`
	Material *string `json:"material,omitempty"`
}

// Record converts the product to its persisted form.
func (p *Product) Record() ProductRecord {
	rec := ProductRecord{
		Type:            string(p.Kind()),
		ProductID:       p.id,
		Name:            p.name,
		Price:           json.Number(p.price.String()),
		QuantityInStock: p.quantity,
	}

	switch v := p.variant.(type) {
	case Electronics:
		rec.Brand = ptr(v.Brand)
		rec.WarrantyYears = ptr(v.WarrantyYears)
	case Grocery:
		rec.ExpiryDate = ptr(v.ExpiryDate.Format(DateLayout))
	case Clothing:
		rec.Size = ptr(v.Size)
		rec.Material = ptr(v.Material)
	}
	return rec
}

// FromRecord rebuilds a product from its persisted form. The discriminator
// must match a known kind exactly, otherwise ErrUnknownKind is returned.
// Every key of the variant must be present.
func FromRecord(rec ProductRecord) (*Product, error) {
	kind := Kind(rec.Type)
	switch kind {
	case KindElectronics, KindGrocery, KindClothing:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, rec.Type)
	}

	price, err := decimal.NewFromString(rec.Price.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: invalid price %q", ErrInvalidArgument, rec.ProductID, rec.Price)
	}

	switch kind {
	case KindElectronics:
		if rec.Brand == nil {
			return nil, missingKey(rec.ProductID, "brand")
		}
		if rec.WarrantyYears == nil {
			return nil, missingKey(rec.ProductID, "warranty_years")
		}
		return NewElectronics(rec.ProductID, rec.Name, price, rec.QuantityInStock, *rec.Brand, *rec.WarrantyYears)
	case KindGrocery:
		if rec.ExpiryDate == nil {
			return nil, missingKey(rec.ProductID, "expiry_date")
		}
		expiry, err := ParseDate(*rec.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rec.ProductID, err)
		}
		return NewGrocery(rec.ProductID, rec.Name, price, rec.QuantityInStock, expiry)
	default:
		if rec.Size == nil {
			return nil, missingKey(rec.ProductID, "size")
		}
		if rec.Material == nil {
			return nil, missingKey(rec.ProductID, "material")
		}
		return NewClothing(rec.ProductID, rec.Name, price, rec.QuantityInStock, *rec.Size, *rec.Material)
	}
}

func missingKey(id, key string) error {
	return fmt.Errorf("%w: %s: missing %s", ErrInvalidArgument, id, key)
}

func ptr[T any](v T) *T { return &v }
