package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for grocery expiry dates.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidArgument is returned for a bad quantity, amount, price or id.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInsufficientStock is returned when selling more units than are in stock.
	ErrInsufficientStock = errors.New("not enough stock to sell")
	// ErrUnknownKind is returned for an unrecognized variant discriminator.
	ErrUnknownKind = errors.New("unknown product type")
)

// Kind is the variant discriminator of a product.
type Kind string

const (
	KindElectronics Kind = "Electronics"
	KindGrocery     Kind = "Grocery"
	KindClothing    Kind = "Clothing"
)

// Kinds lists every supported variant.
var Kinds = []Kind{KindElectronics, KindGrocery, KindClothing}

// ParseKind matches s against the known variants, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Variant holds the fields specific to one product kind.
type Variant interface {
	Kind() Kind
	isVariant()
}

type Electronics struct {
	Brand         string
	WarrantyYears int
}

type Grocery struct {
	ExpiryDate time.Time
}

type Clothing struct {
	Size     string
	Material string
}

func (Electronics) Kind() Kind { return KindElectronics }
func (Grocery) Kind() Kind     { return KindGrocery }
func (Clothing) Kind() Kind    { return KindClothing }

func (Electronics) isVariant() {}
func (Grocery) isVariant()     {}
func (Clothing) isVariant()    {}

// IsExpired reports whether the expiry date falls strictly before ref.
// Only the calendar date of ref is considered.
func (g Grocery) IsExpired(ref time.Time) bool {
	return g.ExpiryDate.Before(Date(ref))
}

// Product represents a product entity in the inventory system.
// Everything except the stock quantity is fixed at construction.
type Product struct {
	id       string
	name     string
	price    decimal.Decimal
	quantity int
	variant  Variant
}

func newProduct(id, name string, price decimal.Decimal, quantity int, v Variant) (*Product, error) {
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be greater than zero", ErrInvalidArgument)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidArgument)
	}
	return &Product{id: id, name: name, price: price, quantity: quantity, variant: v}, nil
}

// NewElectronics creates an electronics product.
func NewElectronics(id, name string, price decimal.Decimal, quantity int, brand string, warrantyYears int) (*Product, error) {
	if warrantyYears < 0 {
		return nil, fmt.Errorf("%w: warranty years cannot be negative", ErrInvalidArgument)
	}
	return newProduct(id, name, price, quantity, Electronics{Brand: brand, WarrantyYears: warrantyYears})
}

// NewGrocery creates a grocery product expiring on the calendar date of expiry.
func NewGrocery(id, name string, price decimal.Decimal, quantity int, expiry time.Time) (*Product, error) {
	if expiry.IsZero() {
		return nil, fmt.Errorf("%w: expiry date is required", ErrInvalidArgument)
	}
	return newProduct(id, name, price, quantity, Grocery{ExpiryDate: Date(expiry)})
}

// NewClothing creates a clothing product.
func NewClothing(id, name string, price decimal.Decimal, quantity int, size, material string) (*Product, error) {
	return newProduct(id, name, price, quantity, Clothing{Size: size, Material: material})
}

func (p *Product) ID() string             { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Quantity() int          { return p.quantity }
func (p *Product) Kind() Kind             { return p.variant.Kind() }
func (p *Product) Variant() Variant       { return p.variant }

// Restock adds amount units to the stock.
func (p *Product) Restock(amount int) error {
	if amount < 1 {
		return fmt.Errorf("%w: restock amount must be at least 1", ErrInvalidArgument)
	}
	p.quantity += amount
	return nil
}

// Sell removes quantity units from the stock.
func (p *Product) Sell(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: sell quantity must be at least 1", ErrInvalidArgument)
	}
	if quantity > p.quantity {
		return fmt.Errorf("%w: requested %d, in stock %d", ErrInsufficientStock, quantity, p.quantity)
	}
	p.quantity -= quantity
	return nil
}

// TotalValue returns price times quantity in stock.
func (p *Product) TotalValue() decimal.Decimal {
	return p.price.Mul(decimal.NewFromInt(int64(p.quantity)))
}

// IsExpired is true for a grocery product whose expiry date is before ref.
// Other kinds never expire.
func (p *Product) IsExpired(ref time.Time) bool {
	g, ok := p.variant.(Grocery)
	return ok && g.IsExpired(ref)
}

// Describe renders a one-line, human readable summary of the product.
func (p *Product) Describe() string {
	switch v := p.variant.(type) {
	case Electronics:
		return fmt.Sprintf("🔌 Electronics: %s, Brand: %s, Warranty: %d years, Stock: %d", p.name, v.Brand, v.WarrantyYears, p.quantity)
	case Grocery:
		return fmt.Sprintf("🍎 Grocery: %s, Expiry: %s, Stock: %d", p.name, v.ExpiryDate.Format(DateLayout), p.quantity)
	case Clothing:
		return fmt.Sprintf("👕 Clothing: %s, Size: %s, Material: %s, Stock: %d", p.name, v.Size, v.Material, p.quantity)
	}
	return fmt.Sprintf("%s, Stock: %d", p.name, p.quantity)
}

func (p *Product) String() string {
	return p.Describe()
}

// Date truncates t to midnight UTC of its calendar date.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidArgument, s)
	}
	return t, nil
}
