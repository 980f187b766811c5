package cli

import (
	"fmt"
	"strconv"

	"github.com/rogerio-castellano/product-inventory/internal/models"
	"github.com/rogerio-castellano/product-inventory/internal/repo"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every product with the total inventory value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := a.open()
			if err != nil {
				return err
			}
			renderListing(cmd.OutOrStdout(), inv.ListAll(), inv.TotalValue())
			return nil
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var name, kind string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search products by name and/or type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && kind == "" {
				return fmt.Errorf("specify --name, --type or both")
			}
			inv, err := a.open()
			if err != nil {
				return err
			}
			renderProducts(cmd.OutOrStdout(), inv.Filter(repo.ProductFilter{Name: name, Kind: kind}))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Case-insensitive part of the product name")
	cmd.Flags().StringVar(&kind, "type", "", "Product type (Electronics, Grocery, Clothing)")
	return cmd
}

type baseFlags struct {
	id       string
	name     string
	price    string
	quantity int
}

func (b *baseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&b.id, "id", "", "Product ID")
	cmd.Flags().StringVar(&b.name, "name", "", "Product name")
	cmd.Flags().StringVar(&b.price, "price", "", "Unit price, greater than zero")
	cmd.Flags().IntVar(&b.quantity, "quantity", 0, "Units in stock")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
}

func (b *baseFlags) parsePrice() (decimal.Decimal, error) {
	price, err := decimal.NewFromString(b.price)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: invalid price %q", models.ErrInvalidArgument, b.price)
	}
	return price, nil
}

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
	}
	cmd.AddCommand(newAddElectronicsCmd(a))
	cmd.AddCommand(newAddGroceryCmd(a))
	cmd.AddCommand(newAddClothingCmd(a))
	return cmd
}

func (a *app) addProduct(cmd *cobra.Command, build func() (*models.Product, error)) error {
	product, err := build()
	if err != nil {
		return err
	}
	if err := a.mutate(func(inv *repo.Inventory) error { return inv.Add(product) }); err != nil {
		return err
	}
	log.WithFields(log.Fields{"product_id": product.ID(), "type": product.Kind()}).Info("product added")
	renderSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s product '%s' added successfully!", product.Kind(), product.Name()))
	return nil
}

func newAddElectronicsCmd(a *app) *cobra.Command {
	var (
		base     baseFlags
		brand    string
		warranty int
	)

	cmd := &cobra.Command{
		Use:   "electronics",
		Short: "Add an electronics product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.addProduct(cmd, func() (*models.Product, error) {
				price, err := base.parsePrice()
				if err != nil {
					return nil, err
				}
				return models.NewElectronics(base.id, base.name, price, base.quantity, brand, warranty)
			})
		},
	}

	base.register(cmd)
	cmd.Flags().StringVar(&brand, "brand", "", "Brand")
	cmd.Flags().IntVar(&warranty, "warranty", 0, "Warranty in years")
	return cmd
}

func newAddGroceryCmd(a *app) *cobra.Command {
	var (
		base   baseFlags
		expiry string
	)

	cmd := &cobra.Command{
		Use:   "grocery",
		Short: "Add a grocery product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.addProduct(cmd, func() (*models.Product, error) {
				price, err := base.parsePrice()
				if err != nil {
					return nil, err
				}
				date, err := models.ParseDate(expiry)
				if err != nil {
					return nil, err
				}
				return models.NewGrocery(base.id, base.name, price, base.quantity, date)
			})
		},
	}

	base.register(cmd)
	cmd.Flags().StringVar(&expiry, "expiry", "", "Expiry date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("expiry")
	return cmd
}

func newAddClothingCmd(a *app) *cobra.Command {
	var (
		base     baseFlags
		size     string
		material string
	)

	cmd := &cobra.Command{
		Use:   "clothing",
		Short: "Add a clothing product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.addProduct(cmd, func() (*models.Product, error) {
				price, err := base.parsePrice()
				if err != nil {
					return nil, err
				}
				return models.NewClothing(base.id, base.name, price, base.quantity, size, material)
			})
		},
	}

	base.register(cmd)
	cmd.Flags().StringVar(&size, "size", "", "Size, e.g. M, L, XL")
	cmd.Flags().StringVar(&material, "material", "", "Material")
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.mutate(func(inv *repo.Inventory) error { return inv.Remove(args[0]) }); err != nil {
				return err
			}
			renderSuccess(cmd.OutOrStdout(), fmt.Sprintf("Removed product ID %s.", args[0]))
			return nil
		},
	}
}

func newSellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sell <id> <quantity>",
		Short: "Sell units of a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := parseQuantity(args[1])
			if err != nil {
				return err
			}
			if err := a.mutate(func(inv *repo.Inventory) error { return inv.Sell(args[0], qty) }); err != nil {
				return err
			}
			renderSuccess(cmd.OutOrStdout(), fmt.Sprintf("✅ Sold %d unit(s) of product ID %s.", qty, args[0]))
			return nil
		},
	}
}

func newRestockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restock <id> <quantity>",
		Short: "Restock a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := parseQuantity(args[1])
			if err != nil {
				return err
			}
			if err := a.mutate(func(inv *repo.Inventory) error { return inv.Restock(args[0], qty) }); err != nil {
				return err
			}
			renderSuccess(cmd.OutOrStdout(), fmt.Sprintf("✅ Restocked %d unit(s) of product ID %s.", qty, args[0]))
			return nil
		},
	}
}

func newValueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "value",
		Short: "Print the total inventory value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := a.open()
			if err != nil {
				return err
			}
			renderValue(cmd.OutOrStdout(), inv.TotalValue())
			return nil
		},
	}
}

func newExpireCmd(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "expire",
		Short: "Remove expired grocery products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := models.Date(a.now())
			if date != "" {
				parsed, err := models.ParseDate(date)
				if err != nil {
					return err
				}
				ref = parsed
			}

			var removed []string
			err := a.mutate(func(inv *repo.Inventory) error {
				removed = inv.RemoveExpired(ref)
				return nil
			})
			if err != nil {
				return err
			}
			renderSuccess(cmd.OutOrStdout(), fmt.Sprintf("Removed %d expired grocery product(s).", len(removed)))
			for _, id := range removed {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Reference date (YYYY-MM-DD), defaults to today")
	return cmd
}

func parseQuantity(s string) (int, error) {
	qty, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: quantity must be a whole number, got %q", models.ErrInvalidArgument, s)
	}
	return qty, nil
}
