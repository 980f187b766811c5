package repo

import (
	"strings"

	"github.com/rogerio-castellano/product-inventory/internal/models"
)

// ProductFilter selects products by name substring and kind. Empty fields
// match everything.
type ProductFilter struct {
	Name string
	Kind string
}

func matchesFilter(p *models.Product, pf ProductFilter) bool {
	if pf.Name != "" && !strings.Contains(strings.ToLower(p.Name()), strings.ToLower(pf.Name)) {
		return false
	}
	if pf.Kind != "" && !strings.EqualFold(string(p.Kind()), pf.Kind) {
		return false
	}
	return true
}
