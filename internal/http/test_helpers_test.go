package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	api "github.com/rogerio-castellano/product-inventory/internal/http"
	handler "github.com/rogerio-castellano/product-inventory/internal/http/handlers"
	"github.com/rogerio-castellano/product-inventory/internal/repo"
	"github.com/spf13/afero"
)

var fixedNow = func() time.Time { return time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC) }

type testEnv struct {
	fs     afero.Fs
	inv    *repo.Inventory
	router http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fs := afero.NewMemMapFs()
	inv := repo.NewInventoryWithFs(fs)
	s := handler.NewServer(inv, handler.Options{DataFile: "inventory.json", Now: fixedNow})
	return &testEnv{fs: fs, inv: inv, router: api.NewRouter(s, nil)}
}

func (e *testEnv) do(method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createProduct(p handler.ProductRequest) *httptest.ResponseRecorder {
	return e.do(http.MethodPost, "/products", p)
}

func laptopRequest(id string) handler.ProductRequest {
	return handler.ProductRequest{Type: "Electronics", ProductID: id, Name: "Laptop", Price: 100, Quantity: 2, Brand: "Acme", WarrantyYears: 2}
}

func milkRequest(id, expiry string) handler.ProductRequest {
	return handler.ProductRequest{Type: "Grocery", ProductID: id, Name: "Milk", Price: 2.5, Quantity: 4, ExpiryDate: expiry}
}

func shirtRequest(id string) handler.ProductRequest {
	return handler.ProductRequest{Type: "Clothing", ProductID: id, Name: "Shirt", Price: 20, Quantity: 5, Size: "M", Material: "Cotton"}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return v
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
