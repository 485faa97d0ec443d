package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avdeenkov/shopview/internal/models"
)

// ProductService defines the catalog operations required by the HTTP
// handlers.
type ProductService interface {
	// List returns the full catalog.
	List(ctx context.Context) ([]models.Product, error)
}

// ProductHandler serves the catalog listing.
type ProductHandler struct {
	// ProductService performs the underlying catalog reads.
	ProductService ProductService
}

// ProductsResponse is the envelope shape of the listing endpoint. Clients
// must also accept a bare array; this server always sends the envelope.
type ProductsResponse struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
}

// List handles GET /products. The whole catalog is returned in one response;
// search, sort and pagination happen client-side.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductService.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ProductsResponse{
		Products: products,
		Total:    len(products),
	})
}
