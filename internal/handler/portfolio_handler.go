package handler

import (
	"net/http"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
)

// PortfolioHandler serves the public portfolio listing.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a PortfolioHandler with the given service.
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// List handles GET /api/portfolio. The body is a JSON array of items,
// [] (never null) for an empty collection.
func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolioService.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load portfolio",
		})
		return
	}

	if items == nil {
		items = []model.Document{}
	}

	writeJSON(w, http.StatusOK, items)
}
