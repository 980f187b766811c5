package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rogerio-castellano/product-inventory/internal/models"
	"github.com/shopspring/decimal"
)

var (
	accent  = lipgloss.Color("#0D47A1")
	success = lipgloss.Color("#22C55E")
	dim     = lipgloss.Color("#6B7280")
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	successStyle = lipgloss.NewStyle().Foreground(success)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	valueStyle   = lipgloss.NewStyle().Bold(true)
)

func renderListing(w io.Writer, lines []string, total decimal.Decimal) {
	fmt.Fprintln(w, headerStyle.Render("📋 Current Inventory"))
	if len(lines) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No products in inventory."))
	}
	for _, line := range lines {
		fmt.Fprintf(w, "- %s\n", line)
	}
	renderValue(w, total)
}

func renderProducts(w io.Writer, products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No matching products."))
		return
	}
	for _, p := range products {
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render("["+p.ID()+"]"), p.Describe())
	}
}

func renderValue(w io.Writer, total decimal.Decimal) {
	fmt.Fprintf(w, "💰 Total Inventory Value: %s\n", valueStyle.Render("$"+total.StringFixed(2)))
}

func renderSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(msg))
}
