package repo

import (
	"github.com/rogerio-castellano/product-inventory/internal/models"
	"github.com/shopspring/decimal"
)

// Summary aggregates the inventory for the dashboard view.
type Summary struct {
	TotalProducts   int                 `json:"total_products"`
	TotalUnits      int                 `json:"total_units"`
	OutOfStockCount int                 `json:"out_of_stock_count"`
	TotalValue      decimal.Decimal     `json:"total_value"`
	ByKind          map[models.Kind]int `json:"by_kind"`
}

// Summary computes counts per kind, units in stock and total value.
func (inv *Inventory) Summary() Summary {
	s := Summary{
		TotalValue: decimal.Zero,
		ByKind:     make(map[models.Kind]int, len(models.Kinds)),
	}
	for _, k := range models.Kinds {
		s.ByKind[k] = 0
	}

	for _, id := range inv.order {
		p := inv.products[id]
		s.TotalProducts++
		s.TotalUnits += p.Quantity()
		s.TotalValue = s.TotalValue.Add(p.TotalValue())
		s.ByKind[p.Kind()]++
		if p.Quantity() == 0 {
			s.OutOfStockCount++
		}
	}
	return s
}
