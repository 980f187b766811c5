package repo

import (
	"errors"
	"time"

	"github.com/rogerio-castellano/product-inventory/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateID is returned when adding a product whose id is already taken.
	ErrDuplicateID = errors.New("duplicate product id")
	// ErrFileNotFound is returned when loading from a path that does not exist.
	ErrFileNotFound = errors.New("inventory file not found")
	// ErrParse is returned when an inventory file is not a valid product list.
	ErrParse = errors.New("could not parse inventory file")
	// ErrIO is returned when an inventory file cannot be written or read.
	ErrIO = errors.New("inventory file i/o error")
)

// ProductRepository defines the operations the presentation layer may call
// on an inventory.
type ProductRepository interface {
	Add(product *models.Product) error
	Remove(id string) error
	Get(id string) (models.Product, error)
	Products() []models.Product
	ListAll() []string
	SearchByName(substring string) []models.Product
	SearchByType(kind string) []models.Product
	Filter(pf ProductFilter) []models.Product
	Sell(id string, quantity int) error
	Restock(id string, quantity int) error
	TotalValue() decimal.Decimal
	Summary() Summary
	RemoveExpired(ref time.Time) []string
	SaveToFile(path string) error
	LoadFromFile(path string) ([]SkippedRecord, error)
}

// SkippedRecord identifies a record ignored during a load because its type
// is not a known product kind.
type SkippedRecord struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
}
