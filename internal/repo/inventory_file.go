package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rogerio-castellano/product-inventory/internal/models"
)

// SaveToFile writes every product as a JSON array to path, replacing any
// existing file.
func (inv *Inventory) SaveToFile(path string) (err error) {
	records := make([]models.ProductRecord, 0, len(inv.order))
	for _, id := range inv.order {
		records = append(records, inv.products[id].Record())
	}

	f, err := inv.fs.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrIO, cerr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// LoadFromFile replaces the inventory with the products stored at path.
// The current content is kept unless the whole file is read and parsed.
// Records with an unknown type are skipped and reported back.
func (inv *Inventory) LoadFromFile(path string) ([]SkippedRecord, error) {
	records, err := inv.readRecords(path)
	if err != nil {
		return nil, err
	}

	products := make(map[string]*models.Product, len(records))
	order := make([]string, 0, len(records))
	skipped := []SkippedRecord{}

	for i, rec := range records {
		p, err := models.FromRecord(rec)
		if errors.Is(err, models.ErrUnknownKind) {
			skipped = append(skipped, SkippedRecord{Index: i, Type: rec.Type})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrParse, i, err)
		}
		if p.ID() == "" {
			return nil, fmt.Errorf("%w: record %d: empty product_id", ErrParse, i)
		}
		if _, exists := products[p.ID()]; exists {
			return nil, fmt.Errorf("%w: record %d: duplicate product_id %q", ErrParse, i, p.ID())
		}
		products[p.ID()] = p
		order = append(order, p.ID())
	}

	inv.replace(products, order)
	return skipped, nil
}

func (inv *Inventory) readRecords(path string) ([]models.ProductRecord, error) {
	f, err := inv.fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	var records []models.ProductRecord
	dec := json.NewDecoder(f)
	if err := dec.Decode(&records); err != nil {
		if isReadError(err) {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of products", ErrParse)
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: file must hold a single JSON value", ErrParse)
	}
	return records, nil
}

// isReadError tells failures of the underlying file apart from malformed
// content.
func isReadError(err error) bool {
	var pathErr *os.PathError
	return errors.As(err, &pathErr)
}
