package cli

import (
	"fmt"

	"github.com/rogerio-castellano/product-inventory/internal/repo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save <path>",
		Short: "Write a copy of the inventory to another JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := a.open()
			if err != nil {
				return err
			}
			if err := inv.SaveToFile(args[0]); err != nil {
				return err
			}
			log.WithFields(log.Fields{"path": args[0], "products": inv.Len()}).Info("inventory saved")
			renderSuccess(cmd.OutOrStdout(), fmt.Sprintf("Inventory saved to %s", args[0]))
			return nil
		},
	}
}

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load <path>",
		Short: "Replace the inventory with the content of another JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := repo.NewInventoryWithFs(a.fs)
			skipped, err := inv.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			warnSkipped(args[0], skipped)
			if err := a.commit(inv); err != nil {
				return err
			}
			renderSuccess(cmd.OutOrStdout(), fmt.Sprintf("Inventory loaded from %s (%d products, %d skipped)", args[0], inv.Len(), len(skipped)))
			return nil
		},
	}
}
