package handlers

import (
	"sync"
	"time"

	repo "github.com/rogerio-castellano/product-inventory/internal/repo"
	log "github.com/sirupsen/logrus"
)

// Options configures a Server.
type Options struct {
	// DataFile is used by save and load requests that do not name a path,
	// and by autosave.
	DataFile string
	// Autosave writes the inventory to DataFile after every successful change.
	Autosave bool
	// Now returns the reference date for expiry checks. Defaults to time.Now.
	Now func() time.Time
}

// Server owns the single live inventory of an HTTP session. Every handler
// holds mu while it talks to the inventory.
type Server struct {
	mu       sync.Mutex
	products repo.ProductRepository
	dataFile string
	autosave bool
	now      func() time.Time
}

// NewServer wraps products for serving over HTTP.
func NewServer(products repo.ProductRepository, opts Options) *Server {
	s := &Server{
		products: products,
		dataFile: opts.DataFile,
		autosave: opts.Autosave,
		now:      opts.Now,
	}
	if s.dataFile == "" {
		s.dataFile = "inventory.json"
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// changed persists the inventory after a mutation when autosave is on.
// Must be called with mu held.
func (s *Server) changed() {
	if !s.autosave {
		return
	}
	if err := s.products.SaveToFile(s.dataFile); err != nil {
		log.WithError(err).WithField("path", s.dataFile).Error("autosave failed")
	}
}
