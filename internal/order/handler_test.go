package order

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupOrderTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service, _ := testService(t, &fakeBackend{})
	handler := NewHandler(service)

	r.POST("/orders/quote", handler.Quote)
	r.POST("/orders/cart", handler.AddToCart)

	return r
}

func TestQuoteEndpoint(t *testing.T) {
	router := setupOrderTestRouter(t)

	body, _ := json.Marshal(map[string]any{
		"item_id": 1,
		"picks":   fullQuotaPicks(),
	})
	req, _ := http.NewRequest("POST", "/orders/quote", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Quote struct {
			Total string `json:"total"`
		} `json:"quote"`
		Validation struct {
			Valid bool `json:"valid"`
		} `json:"validation"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	if resp.Quote.Total != "41.01" {
		t.Fatalf("total %q, want 41.01", resp.Quote.Total)
	}
	if !resp.Validation.Valid {
		t.Fatalf("full quota reported invalid")
	}
}

func TestAddToCartEndpointRejectsIncompleteSelection(t *testing.T) {
	router := setupOrderTestRouter(t)

	body, _ := json.Marshal(map[string]any{
		"table":   "T1",
		"item_id": 1,
		"qty":     1,
		"picks":   []Pick{{GroupID: 1, ItemID: 10, Qty: 1}},
	})
	req, _ := http.NewRequest("POST", "/orders/cart", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}
