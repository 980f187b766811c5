package cli

import (
	"errors"
	"time"

	"github.com/rogerio-castellano/product-inventory/internal/config"
	"github.com/rogerio-castellano/product-inventory/internal/obs"
	"github.com/rogerio-castellano/product-inventory/internal/repo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by every command of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
	fs  afero.Fs
	now func() time.Time
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "inventory",
		Short:         "Track electronics, grocery and clothing stock",
		Long:          "inventory keeps a single-user product inventory in a JSON file and serves it over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return obs.InitLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
		},
	}

	cmd.PersistentFlags().String("data-file", "inventory.json", "Inventory JSON file")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newSearchCmd(a))
	cmd.AddCommand(newAddCmd(a))
	cmd.AddCommand(newRemoveCmd(a))
	cmd.AddCommand(newSellCmd(a))
	cmd.AddCommand(newRestockCmd(a))
	cmd.AddCommand(newValueCmd(a))
	cmd.AddCommand(newExpireCmd(a))
	cmd.AddCommand(newSaveCmd(a))
	cmd.AddCommand(newLoadCmd(a))
	return cmd
}

func newApp(fs afero.Fs, now func() time.Time) *app {
	return &app{v: config.New(), fs: fs, now: now}
}

// NewRootCmd returns the root command. Files are read and written through
// fs and now supplies today's date for expiry checks.
func NewRootCmd(fs afero.Fs, now func() time.Time) *cobra.Command {
	return newRootCmd(newApp(fs, now))
}

func Execute() error {
	err := NewRootCmd(afero.NewOsFs(), time.Now).Execute()
	if err != nil {
		log.Error(err)
	}
	return err
}

// open loads the data file. A missing file is an empty inventory.
func (a *app) open() (*repo.Inventory, error) {
	inv := repo.NewInventoryWithFs(a.fs)
	skipped, err := inv.LoadFromFile(a.cfg.DataFile)
	if errors.Is(err, repo.ErrFileNotFound) {
		log.WithField("path", a.cfg.DataFile).Debug("no inventory file yet, starting empty")
		return inv, nil
	}
	if err != nil {
		return nil, err
	}
	warnSkipped(a.cfg.DataFile, skipped)
	return inv, nil
}

func (a *app) commit(inv *repo.Inventory) error {
	return inv.SaveToFile(a.cfg.DataFile)
}

// mutate runs fn against the stored inventory and saves the result.
func (a *app) mutate(fn func(inv *repo.Inventory) error) error {
	inv, err := a.open()
	if err != nil {
		return err
	}
	if err := fn(inv); err != nil {
		return err
	}
	return a.commit(inv)
}

func warnSkipped(path string, skipped []repo.SkippedRecord) {
	for _, rec := range skipped {
		log.WithFields(log.Fields{"path": path, "index": rec.Index, "type": rec.Type}).Warn("skipped record with unknown type")
	}
}
