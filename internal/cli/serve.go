package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	api "github.com/rogerio-castellano/product-inventory/internal/http"
	"github.com/rogerio-castellano/product-inventory/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-inventory/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-inventory/internal/repo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the inventory over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	cmd.Flags().String("http-addr", "localhost:8080", "HTTP listen address")
	cmd.Flags().Bool("autoload", true, "Load the data file on startup")
	cmd.Flags().Bool("autosave", false, "Save the data file after every change")
	cmd.Flags().Float64("rate-limit-rps", 5, "Requests per second allowed per client")
	cmd.Flags().Int("rate-limit-burst", 10, "Request burst allowed per client")
	return cmd
}

// sessionStorage roots the server's file system at the data file's
// directory and returns the data file name relative to it.
func (a *app) sessionStorage() (afero.Fs, string, error) {
	dir, err := filepath.Abs(filepath.Dir(a.cfg.DataFile))
	if err != nil {
		return nil, "", fmt.Errorf("resolving data directory: %w", err)
	}
	return afero.NewBasePathFs(a.fs, dir), filepath.Base(a.cfg.DataFile), nil
}

// sessionInventory builds the inventory a server session starts with.
func (a *app) sessionInventory(fs afero.Fs, dataFile string) *repo.Inventory {
	inv := repo.NewInventoryWithFs(fs)
	if !a.cfg.Autoload {
		return inv
	}

	skipped, err := inv.LoadFromFile(dataFile)
	switch {
	case errors.Is(err, repo.ErrFileNotFound):
		log.WithField("path", a.cfg.DataFile).Info("no inventory file yet, starting empty")
	case err != nil:
		log.WithError(err).WithField("path", a.cfg.DataFile).Error("error loading inventory, starting empty")
	default:
		warnSkipped(a.cfg.DataFile, skipped)
		log.WithFields(log.Fields{"path": a.cfg.DataFile, "products": inv.Len()}).Info("inventory loaded")
	}
	return inv
}

func (a *app) serve(ctx context.Context) error {
	fs, dataFile, err := a.sessionStorage()
	if err != nil {
		return err
	}

	server := handlers.NewServer(a.sessionInventory(fs, dataFile), handlers.Options{
		DataFile: dataFile,
		Autosave: a.cfg.Autosave,
		Now:      a.now,
	})

	limiter := rl.New(a.cfg.RateLimitRPS, a.cfg.RateLimitBurst)
	go limiter.StartVisitorCleanupLoop(ctx)

	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           api.NewRouter(server, limiter),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("✅ Server running on %s", a.cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
