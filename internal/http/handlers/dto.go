package handlers

import (
	models "github.com/rogerio-castellano/product-inventory/internal/models"
	repo "github.com/rogerio-castellano/product-inventory/internal/repo"
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Type      string  `json:"type"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity_in_stock"`

	Brand         string `json:"brand,omitempty"`
	WarrantyYears int    `json:"warranty_years,omitempty"`
	ExpiryDate    string `json:"expiry_date,omitempty"`
	Size          string `json:"size,omitempty"`
	Material      string `json:"material,omitempty"`
}

type ProductResponse struct {
	models.ProductRecord
	Description string          `json:"description"`
	TotalValue  decimal.Decimal `json:"total_value"`
}

type Meta struct {
	TotalCount int             `json:"total_count"`
	TotalValue decimal.Decimal `json:"total_value"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta"`
}

type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

type TotalValueResponse struct {
	TotalValue decimal.Decimal `json:"total_value"`
}

type RemoveExpiredResult struct {
	ReferenceDate string   `json:"reference_date"`
	Removed       []string `json:"removed"`
}

type FileRequest struct {
	Path string `json:"path"`
}

type SaveResult struct {
	Path  string `json:"path"`
	Saved int    `json:"saved"`
}

type LoadResult struct {
	Path    string               `json:"path"`
	Loaded  int                  `json:"loaded"`
	Skipped []repo.SkippedRecord `json:"skipped"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ProductRecord: p.Record(),
		Description:   p.Describe(),
		TotalValue:    p.TotalValue(),
	}
}

func toProductsResult(products []models.Product) ProductsSearchResult {
	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: len(products), TotalValue: decimal.Zero},
	}
	for i, p := range products {
		resp.Data[i] = toProductResponse(p)
		resp.Meta.TotalValue = resp.Meta.TotalValue.Add(p.TotalValue())
	}
	return resp
}
