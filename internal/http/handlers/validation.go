package handlers

import (
	"strings"

	models "github.com/rogerio-castellano/product-inventory/internal/models"
	"github.com/shopspring/decimal"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	kind, kindErr := models.ParseKind(p.Type)
	if kindErr != nil {
		errs = append(errs, ProductValidationError{Field: "Type", Description: "Type must be one of Electronics, Grocery, Clothing"})
	}
	if strings.TrimSpace(p.ProductID) == "" {
		errs = append(errs, ProductValidationError{Field: "ProductID", Description: "Product ID is required"})
	}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.Quantity <= 0 {
		errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	if kindErr != nil {
		return errs
	}

	switch kind {
	case models.KindElectronics:
		if strings.TrimSpace(p.Brand) == "" {
			errs = append(errs, ProductValidationError{Field: "Brand", Description: "Brand is required"})
		}
		if p.WarrantyYears < 0 {
			errs = append(errs, ProductValidationError{Field: "WarrantyYears", Description: "Warranty years cannot be negative"})
		}
	case models.KindGrocery:
		if _, err := models.ParseDate(p.ExpiryDate); err != nil {
			errs = append(errs, ProductValidationError{Field: "ExpiryDate", Description: "Expiry date must be a YYYY-MM-DD date"})
		}
	case models.KindClothing:
		if strings.TrimSpace(p.Size) == "" {
			errs = append(errs, ProductValidationError{Field: "Size", Description: "Size is required"})
		}
		if strings.TrimSpace(p.Material) == "" {
			errs = append(errs, ProductValidationError{Field: "Material", Description: "Material is required"})
		}
	}
	return errs
}

// buildProduct assumes p passed validateProduct.
func buildProduct(p ProductRequest) (*models.Product, error) {
	kind, err := models.ParseKind(p.Type)
	if err != nil {
		return nil, err
	}
	id := strings.TrimSpace(p.ProductID)
	name := strings.TrimSpace(p.Name)
	price := decimal.NewFromFloat(p.Price)

	switch kind {
	case models.KindElectronics:
		return models.NewElectronics(id, name, price, p.Quantity, strings.TrimSpace(p.Brand), p.WarrantyYears)
	case models.KindGrocery:
		expiry, err := models.ParseDate(p.ExpiryDate)
		if err != nil {
			return nil, err
		}
		return models.NewGrocery(id, name, price, p.Quantity, expiry)
	default:
		return models.NewClothing(id, name, price, p.Quantity, strings.TrimSpace(p.Size), strings.TrimSpace(p.Material))
	}
}
