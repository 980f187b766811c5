package repo

import (
	"fmt"
	"time"

	"github.com/rogerio-castellano/product-inventory/internal/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
)

// Inventory is an in-memory, insertion ordered store of products keyed by id.
// It is not safe for concurrent use.
type Inventory struct {
	products map[string]*models.Product
	order    []string
	fs       afero.Fs
}

// NewInventory creates an empty inventory persisting to the OS file system.
func NewInventory() *Inventory {
	return NewInventoryWithFs(afero.NewOsFs())
}

// NewInventoryWithFs creates an empty inventory persisting to fs.
func NewInventoryWithFs(fs afero.Fs) *Inventory {
	return &Inventory{
		products: map[string]*models.Product{},
		order:    []string{},
		fs:       fs,
	}
}

// Len returns the number of products.
func (inv *Inventory) Len() int {
	return len(inv.order)
}

// Add inserts a product under its id.
func (inv *Inventory) Add(product *models.Product) error {
	if product == nil || product.ID() == "" {
		return fmt.Errorf("%w: product id cannot be empty", models.ErrInvalidArgument)
	}
	if _, exists := inv.products[product.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, product.ID())
	}
	inv.products[product.ID()] = product
	inv.order = append(inv.order, product.ID())
	return nil
}

// Remove deletes the product with the given id.
func (inv *Inventory) Remove(id string) error {
	if _, exists := inv.products[id]; !exists {
		return fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	delete(inv.products, id)
	for i, existing := range inv.order {
		if existing == id {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns a copy of the product with the given id.
func (inv *Inventory) Get(id string) (models.Product, error) {
	p, exists := inv.products[id]
	if !exists {
		return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return *p, nil
}

// Products returns copies of all products in insertion order.
func (inv *Inventory) Products() []models.Product {
	return inv.Filter(ProductFilter{})
}

// ListAll returns one display line per product.
func (inv *Inventory) ListAll() []string {
	lines := make([]string, 0, len(inv.order))
	for _, id := range inv.order {
		lines = append(lines, inv.products[id].Describe())
	}
	return lines
}

// SearchByName returns the products whose name contains substring, ignoring case.
func (inv *Inventory) SearchByName(substring string) []models.Product {
	return inv.Filter(ProductFilter{Name: substring})
}

// SearchByType returns the products whose kind equals kind, ignoring case.
func (inv *Inventory) SearchByType(kind string) []models.Product {
	if kind == "" {
		return []models.Product{}
	}
	return inv.Filter(ProductFilter{Kind: kind})
}

// Filter returns copies of the products matching pf.
func (inv *Inventory) Filter(pf ProductFilter) []models.Product {
	filtered := []models.Product{}
	for _, id := range inv.order {
		p := inv.products[id]
		if matchesFilter(p, pf) {
			filtered = append(filtered, *p)
		}
	}
	return filtered
}

// Sell removes quantity units from the product's stock.
func (inv *Inventory) Sell(id string, quantity int) error {
	p, exists := inv.products[id]
	if !exists {
		return fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p.Sell(quantity)
}

// Restock adds quantity units to the product's stock.
func (inv *Inventory) Restock(id string, quantity int) error {
	p, exists := inv.products[id]
	if !exists {
		return fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p.Restock(quantity)
}

// TotalValue sums the value of every product.
func (inv *Inventory) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range inv.products {
		total = total.Add(p.TotalValue())
	}
	return total
}

// RemoveExpired deletes every grocery product that expired before ref and
// returns their ids.
func (inv *Inventory) RemoveExpired(ref time.Time) []string {
	removed := []string{}
	kept := make([]string, 0, len(inv.order))
	for _, id := range inv.order {
		if inv.products[id].IsExpired(ref) {
			delete(inv.products, id)
			removed = append(removed, id)
			continue
		}
		kept = append(kept, id)
	}
	inv.order = kept
	return removed
}

// replace swaps the whole content of the inventory.
func (inv *Inventory) replace(products map[string]*models.Product, order []string) {
	inv.products = products
	inv.order = order
}

var _ ProductRepository = (*Inventory)(nil)
