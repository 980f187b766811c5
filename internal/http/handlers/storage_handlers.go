package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	models "github.com/rogerio-castellano/product-inventory/internal/models"
	log "github.com/sirupsen/logrus"
)

// SaveInventoryHandler godoc
// @Summary Save the inventory to a JSON file
// @Tags storage
// @Accept json
// @Produce json
// @Param file body FileRequest false "Target path relative to the data directory, defaults to the data file"
// @Success 200 {object} SaveResult
// @Failure 400 {string} string "Path outside the data directory"
// @Failure 500 {string} string "Write failure"
// @Router /inventory/save [post]
func (s *Server) SaveInventoryHandler(w http.ResponseWriter, r *http.Request) {
	path, ok := s.filePath(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.products.SaveToFile(path); err != nil {
		writeError(w, err)
		return
	}

	saved := len(s.products.Products())
	log.WithFields(log.Fields{"path": path, "products": saved}).Info("inventory saved")
	respond(w, http.StatusOK, SaveResult{Path: path, Saved: saved})
}

// LoadInventoryHandler godoc
// @Summary Replace the inventory with the content of a JSON file
// @Description Records with an unknown type are skipped and listed in the response
// @Tags storage
// @Accept json
// @Produce json
// @Param file body FileRequest false "Source path relative to the data directory, defaults to the data file"
// @Success 200 {object} LoadResult
// @Failure 400 {string} string "Path outside the data directory"
// @Failure 404 {string} string "File not found"
// @Failure 422 {string} string "Malformed file"
// @Router /inventory/load [post]
func (s *Server) LoadInventoryHandler(w http.ResponseWriter, r *http.Request) {
	path, ok := s.filePath(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	skipped, err := s.products.LoadFromFile(path)
	if err != nil {
		writeError(w, err)
		return
	}
	for _, rec := range skipped {
		log.WithFields(log.Fields{"path": path, "index": rec.Index, "type": rec.Type}).Warn("skipped record with unknown type")
	}

	loaded := len(s.products.Products())
	log.WithFields(log.Fields{"path": path, "products": loaded}).Info("inventory loaded")
	respond(w, http.StatusOK, LoadResult{Path: path, Loaded: loaded, Skipped: skipped})
}

// RemoveExpiredHandler godoc
// @Summary Remove expired grocery products
// @Tags inventory
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} RemoveExpiredResult
// @Failure 400 {string} string "Invalid date"
// @Router /products/expired/remove [post]
func (s *Server) RemoveExpiredHandler(w http.ResponseWriter, r *http.Request) {
	ref := models.Date(s.now())
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := models.ParseDate(d)
		if err != nil {
			writeError(w, err)
			return
		}
		ref = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.products.RemoveExpired(ref)
	if len(removed) > 0 {
		s.changed()
	}

	log.WithFields(log.Fields{"reference_date": ref.Format(models.DateLayout), "removed": len(removed)}).Info("expired products removed")
	respond(w, http.StatusOK, RemoveExpiredResult{ReferenceDate: ref.Format(models.DateLayout), Removed: removed})
}

// filePath reads the optional FileRequest body. An empty body selects the
// configured data file. Other paths must stay inside the data file's
// directory.
func (s *Server) filePath(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req FileRequest
	if err := readJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return "", false
	}
	if req.Path == "" {
		return s.dataFile, true
	}
	if !filepath.IsLocal(req.Path) {
		log.WithField("path", req.Path).Warn("rejected path outside the data directory")
		http.Error(w, "path must be relative to the data directory", http.StatusBadRequest)
		return "", false
	}
	return filepath.Join(filepath.Dir(s.dataFile), req.Path), true
}
