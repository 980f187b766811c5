package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// SellProductHandler godoc
// @Summary Sell units of a product
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param sale body QuantityRequest true "Units to sell"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid quantity"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Not enough stock"
// @Router /products/{id}/sell [post]
func (s *Server) SellProductHandler(w http.ResponseWriter, r *http.Request) {
	s.adjustStock(w, r, "sold", s.products.Sell)
}

// RestockProductHandler godoc
// @Summary Restock a product
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param restock body QuantityRequest true "Units to add"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid quantity"
// @Failure 404 {string} string "Not found"
// @Router /products/{id}/restock [post]
func (s *Server) RestockProductHandler(w http.ResponseWriter, r *http.Request) {
	s.adjustStock(w, r, "restocked", s.products.Restock)
}

func (s *Server) adjustStock(w http.ResponseWriter, r *http.Request, action string, apply func(id string, quantity int) error) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req QuantityRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := apply(id, req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	s.changed()

	product, err := s.products.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	log.WithFields(log.Fields{
		"product_id": id,
		"quantity":   req.Quantity,
		"in_stock":   product.Quantity(),
	}).Infof("product %s", action)

	if product.Quantity() == 0 {
		log.Warnf("⚠️ ALERT: Product %s (%s) is out of stock", id, product.Name())
	}

	respond(w, http.StatusOK, toProductResponse(product))
}
