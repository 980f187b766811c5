package main

import (
	"os"

	"github.com/rogerio-castellano/product-inventory/internal/cli"
)

// @title Product Inventory API
// @version 1.0
// @description REST API for a single-user inventory of electronics, grocery and clothing products.
// @host localhost:8080
// @BasePath /
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
