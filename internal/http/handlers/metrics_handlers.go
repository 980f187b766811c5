package handlers

import (
	"net/http"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics for the inventory view
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Summary
// @Router /metrics/dashboard [get]
func (s *Server) GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	m := s.products.Summary()
	s.mu.Unlock()

	respond(w, http.StatusOK, m)
}

// GetTotalValueHandler godoc
// @Summary Total inventory value
// @Tags metrics
// @Produce json
// @Success 200 {object} TotalValueResponse
// @Router /inventory/value [get]
func (s *Server) GetTotalValueHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	total := s.products.TotalValue()
	s.mu.Unlock()

	respond(w, http.StatusOK, TotalValueResponse{TotalValue: total})
}
