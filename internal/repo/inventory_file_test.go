package repo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogerio-castellano/product-inventory/internal/models"
	"github.com/rogerio-castellano/product-inventory/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSameProducts(t *testing.T, want, got []models.Product) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID(), got[i].ID())
		assert.Equal(t, want[i].Name(), got[i].Name())
		assert.True(t, want[i].Price().Equal(got[i].Price()), "price of %s", want[i].ID())
		assert.Equal(t, want[i].Quantity(), got[i].Quantity())
		assert.Equal(t, want[i].Variant(), got[i].Variant())
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	inv := repo.NewInventoryWithFs(fs)

	cheap, err := models.NewElectronics("E2", "Cable", decimal.RequireFromString("9.99"), 0, "Generic", 0)
	require.NoError(t, err)
	precise, err := models.NewClothing("C2", "Coat", decimal.RequireFromString("12345678.123456789"), 3, "", "")
	require.NoError(t, err)

	require.NoError(t, inv.Add(electronics(t, "E1", "Laptop", 1500, 3)))
	require.NoError(t, inv.Add(grocery(t, "G1", "Milk", "2025-06-01")))
	require.NoError(t, inv.Add(clothing(t, "C1", "Shirt")))
	require.NoError(t, inv.Add(cheap))
	require.NoError(t, inv.Add(precise))

	require.NoError(t, inv.SaveToFile("inventory.json"))

	loaded := repo.NewInventoryWithFs(fs)
	skipped, err := loaded.LoadFromFile("inventory.json")
	require.NoError(t, err)
	assert.Empty(t, skipped)

	assertSameProducts(t, inv.Products(), loaded.Products())
	assert.True(t, inv.TotalValue().Equal(loaded.TotalValue()))
}

func TestSaveToFile_Format(t *testing.T) {
	fs := afero.NewMemMapFs()
	inv := repo.NewInventoryWithFs(fs)
	require.NoError(t, inv.Add(clothing(t, "C1", "Shirt")))
	require.NoError(t, afero.WriteFile(fs, "out.json", []byte("stale content that is longer than the new file"), 0o644))

	require.NoError(t, inv.SaveToFile("out.json"))

	data, err := afero.ReadFile(fs, "out.json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"type": "Clothing",
		"product_id": "C1",
		"name": "Shirt",
		"price": 30,
		"quantity_in_stock": 5,
		"size": "M",
		"material": "Cotton"
	}]`, string(data))
	assert.Contains(t, string(data), "\n    {")
}

func TestSaveToFile_EmptyInventory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, repo.NewInventoryWithFs(fs).SaveToFile("empty.json"))

	data, err := afero.ReadFile(fs, "empty.json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestSaveToFile_WriteFailure(t *testing.T) {
	inv := repo.NewInventoryWithFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	require.NoError(t, inv.Add(clothing(t, "C1", "Shirt")))

	err := inv.SaveToFile("inventory.json")
	assert.ErrorIs(t, err, repo.ErrIO)
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"malformed json", `[{"type": "Clothing",`, repo.ErrParse},
		{"empty file", ``, repo.ErrParse},
		{"not an array", `{"type": "Clothing"}`, repo.ErrParse},
		{"null document", `null`, repo.ErrParse},
		{"wrong field type", `[{"type": "Clothing", "product_id": "C1", "name": "x", "price": "ten", "quantity_in_stock": 1}]`, repo.ErrParse},
		{"missing variant key", `[{"type": "Electronics", "product_id": "E1", "name": "x", "price": 1, "quantity_in_stock": 1, "warranty_years": 1}]`, repo.ErrParse},
		{"price is not a number", `[{"type": "Clothing", "product_id": "C1", "name": "x", "price": "ten", "quantity_in_stock": 1, "size": "M", "material": "Wool"}]`, repo.ErrParse},
		{"trailing data", `[] []`, repo.ErrParse},
		{"invalid expiry", `[{"type": "Grocery", "product_id": "G1", "name": "Milk", "price": 1, "quantity_in_stock": 1, "expiry_date": "tomorrow"}]`, repo.ErrParse},
		{"negative stock", `[{"type": "Clothing", "product_id": "C1", "name": "x", "price": 1, "quantity_in_stock": -1, "size": "M", "material": "Wool"}]`, repo.ErrParse},
		{"empty id", `[{"type": "Clothing", "product_id": "", "name": "x", "price": 1, "quantity_in_stock": 1, "size": "M", "material": "Wool"}]`, repo.ErrParse},
		{"duplicate id", `[
			{"type": "Clothing", "product_id": "C1", "name": "x", "price": 1, "quantity_in_stock": 1, "size": "M", "material": "Wool"},
			{"type": "Clothing", "product_id": "C1", "name": "y", "price": 1, "quantity_in_stock": 1, "size": "M", "material": "Wool"}
		]`, repo.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "bad.json", []byte(tt.content), 0o644))

			inv := repo.NewInventoryWithFs(fs)
			require.NoError(t, inv.Add(clothing(t, "KEEP", "Existing")))

			_, err := inv.LoadFromFile("bad.json")
			assert.ErrorIs(t, err, tt.want)

			assert.Equal(t, []string{"KEEP"}, ids(inv.Products()))
		})
	}
}

func TestLoadFromFile_NotFound(t *testing.T) {
	inv := repo.NewInventory()
	require.NoError(t, inv.Add(clothing(t, "KEEP", "Existing")))

	_, err := inv.LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, repo.ErrFileNotFound)
	assert.Equal(t, 1, inv.Len())

	_, err = repo.NewInventoryWithFs(afero.NewMemMapFs()).LoadFromFile("missing.json")
	assert.ErrorIs(t, err, repo.ErrFileNotFound)
}

func TestLoadFromFile_SkipsUnknownTypes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "mixed.json", []byte(`[
		{"type": "Furniture", "product_id": "F1", "name": "Chair", "price": 40, "quantity_in_stock": 1},
		{"type": "Grocery", "product_id": "G1", "name": "Milk", "price": 2.5, "quantity_in_stock": 4, "expiry_date": "2025-06-01"}
	]`), 0o644))

	inv := repo.NewInventoryWithFs(fs)
	require.NoError(t, inv.Add(clothing(t, "OLD", "Replaced")))

	skipped, err := inv.LoadFromFile("mixed.json")
	require.NoError(t, err)
	assert.Equal(t, []repo.SkippedRecord{{Index: 0, Type: "Furniture"}}, skipped)
	assert.Equal(t, []string{"G1"}, ids(inv.Products()))
}

func TestSaveLoad_OnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	inv := repo.NewInventory()
	require.NoError(t, inv.Add(grocery(t, "G1", "Milk", "2025-06-01")))
	require.NoError(t, inv.SaveToFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	loaded := repo.NewInventory()
	_, err = loaded.LoadFromFile(path)
	require.NoError(t, err)
	assertSameProducts(t, inv.Products(), loaded.Products())
}
