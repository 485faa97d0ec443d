package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avdeenkov/shopview/internal/models"
)

// fakeProductService implements ProductService for testing.
type fakeProductService struct {
	products []models.Product
	err      error
}

func (f *fakeProductService) List(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func TestProductHandler_List(t *testing.T) {
	svc := &fakeProductService{
		products: []models.Product{
			{ID: 1, Title: "Phone", Description: "a phone", Price: 500},
			{ID: 2, Title: "Case", Description: "a case", Price: 10},
		},
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/products", nil)
	h := &ProductHandler{ProductService: svc}
	h.List(rec, req)

	res := rec.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}

	var resp ProductsResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 || len(resp.Products) != 2 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Products[0].Title != "Phone" {
		t.Errorf("unexpected first product: %+v", resp.Products[0])
	}
}

func TestProductHandler_List_Empty(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/products", nil)
	h := &ProductHandler{ProductService: &fakeProductService{products: []models.Product{}}}
	h.List(rec, req)

	var resp ProductsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 0 {
		t.Errorf("expected total 0, got %d", resp.Total)
	}
	if resp.Products == nil {
		t.Error("products must encode as an empty array, not null")
	}
}

func TestProductHandler_List_ServiceError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/products", nil)
	h := &ProductHandler{ProductService: &fakeProductService{err: errors.New("db down")}}
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
