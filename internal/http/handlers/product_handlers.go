package handlers

import (
	"net/http"

	repo "github.com/rogerio-castellano/product-inventory/internal/repo"
	log "github.com/sirupsen/logrus"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds an Electronics, Grocery or Clothing product to the inventory
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 409 {string} string "Duplicate product ID"
// @Router /products [post]
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	product, err := buildProduct(req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.products.Add(product); err != nil {
		writeError(w, err)
		return
	}
	s.changed()

	log.WithFields(log.Fields{"product_id": product.ID(), "type": product.Kind()}).Info("product added")
	respond(w, http.StatusCreated, toProductResponse(*product))
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {object} ProductsSearchResult
// @Router /products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	products := s.products.Products()
	s.mu.Unlock()

	respond(w, http.StatusOK, toProductsResult(products))
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	product, err := s.products.Get(id)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, toProductResponse(product))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [delete]
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.products.Remove(id); err != nil {
		writeError(w, err)
		return
	}
	s.changed()

	log.WithField("product_id", id).Info("product removed")
	w.WriteHeader(http.StatusNoContent)
}

// SearchProductsHandler godoc
// @Summary Search products
// @Description Case-insensitive name substring and exact type match; both optional
// @Tags products
// @Produce json
// @Param name query string false "Name contains"
// @Param type query string false "Product type"
// @Success 200 {object} ProductsSearchResult
// @Router /products/search [get]
func (s *Server) SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repo.ProductFilter{
		Name: q.Get("name"),
		Kind: q.Get("type"),
	}

	s.mu.Lock()
	products := s.products.Filter(filter)
	s.mu.Unlock()

	respond(w, http.StatusOK, toProductsResult(products))
}
