package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	repo "github.com/rogerio-castellano/product-inventory/internal/repo"
	log "github.com/sirupsen/logrus"
)

var requiredColumns = []string{"type", "product_id", "name", "price", "quantity_in_stock"}

// csvRow is one parsed CSV record. errs holds the cells that could not be
// converted.
type csvRow struct {
	product ProductRequest
	errs    []ProductValidationError
}

func parseCSV(file io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", col)
		}
	}

	field := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		var row csvRow
		row.product = ProductRequest{
			Type:          field(record, "type"),
			ProductID:     field(record, "product_id"),
			Name:          field(record, "name"),
			Price:         row.parseFloat("Price", field(record, "price")),
			Quantity:      row.parseInt("Quantity", field(record, "quantity_in_stock")),
			Brand:         field(record, "brand"),
			WarrantyYears: row.parseInt("WarrantyYears", field(record, "warranty_years")),
			ExpiryDate:    field(record, "expiry_date"),
			Size:          field(record, "size"),
			Material:      field(record, "material"),
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseFloat converts a numeric cell. Empty cells are zero.
func (row *csvRow) parseFloat(name, s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		row.errs = append(row.errs, ProductValidationError{Field: name, Description: fmt.Sprintf("%s must be a number, got %q", name, s)})
	}
	return v
}

// parseInt converts a whole number cell. Empty cells are zero.
func (row *csvRow) parseInt(name, s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		row.errs = append(row.errs, ProductValidationError{Field: name, Description: fmt.Sprintf("%s must be a whole number, got %q", name, s)})
	}
	return v
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Columns: type, product_id, name, price, quantity_in_stock, brand, warranty_years, expiry_date, size, material. Rows with an existing product ID are skipped.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Router /products/import [post]
func (s *Server) ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	imported := 0
	errorsList := []ProductValidationError{}

	for i, row := range records {
		rowNum := i + 2 // header is row 1
		rec := row.product

		errs := row.errs
		if len(errs) == 0 {
			errs = validateProduct(rec)
		}
		if len(errs) > 0 {
			for _, e := range errs {
				errorsList = append(errorsList, ProductValidationError{Field: e.Field, Description: fmt.Sprintf("row %d: %s", rowNum, e.Description)})
			}
			continue
		}

		product, err := buildProduct(rec)
		if err != nil {
			errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}

		if err := s.products.Add(product); err != nil {
			if errors.Is(err, repo.ErrDuplicateID) {
				errorsList = append(errorsList, ProductValidationError{Field: "ProductID", Description: fmt.Sprintf("row %d: product '%s' already exists", rowNum, rec.ProductID)})
				continue
			}
			errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}
		imported++
	}

	if imported > 0 {
		s.changed()
	}

	log.WithFields(log.Fields{"imported": imported, "rejected_rows": len(records) - imported}).Info("CSV import finished")
	respond(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
}
