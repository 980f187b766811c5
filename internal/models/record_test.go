package models_test

import (
	"encoding/json"
	"testing"

	"github.com/rogerio-castellano/product-inventory/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_OmitsOtherVariantFields(t *testing.T) {
	milk, err := models.NewGrocery("G1", "Milk", decimal.RequireFromString("2.5"), 4, date(t, "2025-06-01"))
	require.NoError(t, err)

	out, err := json.Marshal(milk.Record())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "Grocery",
		"product_id": "G1",
		"name": "Milk",
		"price": 2.5,
		"quantity_in_stock": 4,
		"expiry_date": "2025-06-01"
	}`, string(out))
}

func TestRecord_ElectronicsKeepsZeroWarranty(t *testing.T) {
	p, err := models.NewElectronics("E1", "Cable", decimal.NewFromInt(5), 10, "Acme", 0)
	require.NoError(t, err)

	out, err := json.Marshal(p.Record())
	require.NoError(t, err)
	assert.Contains(t, string(out), `"warranty_years":0`)
}

func TestRecord_KeepsEmptyVariantFields(t *testing.T) {
	shirt, err := models.NewClothing("C1", "Shirt", decimal.NewFromInt(10), 1, "", "")
	require.NoError(t, err)
	radio, err := models.NewElectronics("E1", "Radio", decimal.NewFromInt(10), 1, "", 1)
	require.NoError(t, err)

	out, err := json.Marshal([]models.ProductRecord{shirt.Record(), radio.Record()})
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type": "Clothing", "product_id": "C1", "name": "Shirt", "price": 10, "quantity_in_stock": 1, "size": "", "material": ""},
		{"type": "Electronics", "product_id": "E1", "name": "Radio", "price": 10, "quantity_in_stock": 1, "brand": "", "warranty_years": 1}
	]`, string(out))

	var back []models.ProductRecord
	require.NoError(t, json.Unmarshal(out, &back))
	for i, rec := range back {
		p, err := models.FromRecord(rec)
		require.NoError(t, err)
		assert.Equal(t, []*models.Product{shirt, radio}[i].Variant(), p.Variant())
	}
}

func TestRecord_PriceKeepsEveryDigit(t *testing.T) {
	p, err := models.NewClothing("C1", "Coat", decimal.RequireFromString("12345678.123456789"), 1, "L", "Wool")
	require.NoError(t, err)

	out, err := json.Marshal(p.Record())
	require.NoError(t, err)
	assert.Contains(t, string(out), `"price":12345678.123456789`)

	var rec models.ProductRecord
	require.NoError(t, json.Unmarshal(out, &rec))
	back, err := models.FromRecord(rec)
	require.NoError(t, err)
	assert.True(t, p.Price().Equal(back.Price()), "got %s", back.Price())
}

func TestFromRecord(t *testing.T) {
	years, brand := 3, "Acme"
	p, err := models.FromRecord(models.ProductRecord{
		Type: "Electronics", ProductID: "E9", Name: "Phone", Price: "499.99",
		QuantityInStock: 2, Brand: &brand, WarrantyYears: &years,
	})
	require.NoError(t, err)
	assert.Equal(t, models.KindElectronics, p.Kind())
	assert.Equal(t, "499.99", p.Price().String())
	assert.Equal(t, models.Electronics{Brand: "Acme", WarrantyYears: 3}, p.Variant())

	size, material := "S", "Wool"
	c, err := models.FromRecord(models.ProductRecord{
		Type: "Clothing", ProductID: "C1", Name: "Scarf", Price: "12", QuantityInStock: 0, Size: &size, Material: &material,
	})
	require.NoError(t, err)
	assert.Equal(t, models.Clothing{Size: "S", Material: "Wool"}, c.Variant())
}

func TestFromRecord_Errors(t *testing.T) {
	str := func(s string) *string { return &s }
	years := 1

	tests := []struct {
		name string
		rec  models.ProductRecord
		want error
	}{
		{"unknown type", models.ProductRecord{Type: "Furniture", ProductID: "F1", Price: "1"}, models.ErrUnknownKind},
		{"type is case sensitive", models.ProductRecord{Type: "grocery", ProductID: "G1", Price: "1", ExpiryDate: str("2025-01-01")}, models.ErrUnknownKind},
		{"bad expiry", models.ProductRecord{Type: "Grocery", ProductID: "G1", Price: "1", ExpiryDate: str("01/02/2025")}, models.ErrInvalidArgument},
		{"missing expiry", models.ProductRecord{Type: "Grocery", ProductID: "G1", Price: "1"}, models.ErrInvalidArgument},
		{"missing warranty", models.ProductRecord{Type: "Electronics", ProductID: "E1", Price: "1", Brand: str("Acme")}, models.ErrInvalidArgument},
		{"missing brand", models.ProductRecord{Type: "Electronics", ProductID: "E1", Price: "1", WarrantyYears: &years}, models.ErrInvalidArgument},
		{"missing size", models.ProductRecord{Type: "Clothing", ProductID: "C1", Price: "1", Material: str("Wool")}, models.ErrInvalidArgument},
		{"missing material", models.ProductRecord{Type: "Clothing", ProductID: "C1", Price: "1", Size: str("M")}, models.ErrInvalidArgument},
		{"missing price", models.ProductRecord{Type: "Clothing", ProductID: "C1", Size: str("M"), Material: str("Wool")}, models.ErrInvalidArgument},
		{"zero price", models.ProductRecord{Type: "Clothing", ProductID: "C1", Price: "0", Size: str("M"), Material: str("Wool")}, models.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := models.FromRecord(tt.rec)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
