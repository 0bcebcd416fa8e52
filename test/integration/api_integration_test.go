package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vic2rious/backend-server/internal/handler"
	"github.com/Vic2rious/backend-server/internal/model"
	"github.com/Vic2rious/backend-server/internal/repository"
	"github.com/Vic2rious/backend-server/internal/router"
	"github.com/Vic2rious/backend-server/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full stack against the test database.
func newTestServer(t *testing.T, testDB *TestDB) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()

	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)

	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, logger)

	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	server := httptest.NewServer(router.New(productHandler, orderHandler, logger))
	t.Cleanup(server.Close)

	return server
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func TestAPI_OrderLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := newTestServer(t, testDB)
	ctx := context.Background()

	CleanupDB(t, testDB.Pool)
	products := SeedProducts(t, testDB.Pool)

	// Create: 3 x 10.00 + 1 x 5.00 = 35.00
	var created model.Order
	status := doJSON(t, http.MethodPost, server.URL+"/api/orders", &model.OrderRequest{
		CustomerName: "Alice",
		Address:      "1 Main St",
		ProductIDs:   []int64{products[0].ID, products[1].ID},
		Amounts:      []int{3, 1},
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("35.00")),
		"expected price 35.00, got %s", created.Price)
	require.Len(t, created.Items, 2)

	oldItemIDs := []int64{created.Items[0].ID, created.Items[1].ID}

	// Update without explicit price: recomputed as 2 x 25.50 = 51.00,
	// line items fully replaced.
	var updated model.Order
	status = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/orders/%d", server.URL, created.ID),
		&model.OrderUpdateRequest{
			ProductIDs: []int64{products[2].ID},
			Amounts:    []int{2},
		}, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("51.00")),
		"expected price 51.00, got %s", updated.Price)
	require.Len(t, updated.Items, 1)
	assert.NotContains(t, oldItemIDs, updated.Items[0].ID)

	// A subsequent read observes exactly the new item set.
	var fetched model.Order
	status = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/orders/%d", server.URL, created.ID), nil, &fetched)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, products[2].ID, fetched.Items[0].ProductID)

	// Update with explicit price: stored verbatim, no recomputation.
	explicit := decimal.RequireFromString("9.99")
	status = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/orders/%d", server.URL, created.ID),
		&model.OrderUpdateRequest{
			Price:      &explicit,
			ProductIDs: []int64{products[0].ID},
			Amounts:    []int{10},
		}, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, updated.Price.Equal(explicit), "expected price 9.99, got %s", updated.Price)

	// Delete returns the pre-deletion representation and removes all rows.
	var deleted model.Order
	status = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/orders/%d", server.URL, created.ID), nil, &deleted)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created.ID, deleted.ID)

	status = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/orders/%d", server.URL, created.ID), nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	var itemCount int
	require.NoError(t, testDB.Pool.QueryRow(ctx, `SELECT count(*) FROM order_line_items`).Scan(&itemCount))
	assert.Zero(t, itemCount)
}

func TestAPI_OrderValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := newTestServer(t, testDB)
	ctx := context.Background()

	CleanupDB(t, testDB.Pool)
	products := SeedProducts(t, testDB.Pool)

	countRows := func(table string) int {
		var n int
		require.NoError(t, testDB.Pool.QueryRow(ctx, `SELECT count(*) FROM `+table).Scan(&n))
		return n
	}

	// Mismatched parallel arrays: InvalidArgument, nothing persisted.
	var errResp model.ErrorResponse
	status := doJSON(t, http.MethodPost, server.URL+"/api/orders", &model.OrderRequest{
		ProductIDs: []int64{products[0].ID, products[1].ID},
		Amounts:    []int{1},
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, model.ErrCodeInvalidArgument, errResp.Error)
	assert.Zero(t, countRows("orders"))

	// Unresolvable product id: InvalidArgument naming the id, nothing persisted.
	status = doJSON(t, http.MethodPost, server.URL+"/api/orders", &model.OrderRequest{
		ProductIDs: []int64{products[0].ID, 424242},
		Amounts:    []int{1, 1},
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, errResp.Message, "424242")
	assert.Zero(t, countRows("orders"))
	assert.Zero(t, countRows("order_line_items"))

	// Deleting a missing order is NotFound, not a silent no-op.
	status = doJSON(t, http.MethodDelete, server.URL+"/api/orders/424242", nil, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, model.ErrCodeNotFound, errResp.Error)

	// Non-numeric id is rejected before reaching the service.
	status = doJSON(t, http.MethodGet, server.URL+"/api/orders/abc", nil, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAPI_ProductCatalog(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := newTestServer(t, testDB)

	CleanupDB(t, testDB.Pool)

	// Create a product.
	var created model.Product
	status := doJSON(t, http.MethodPost, server.URL+"/api/products",
		&model.ProductRequest{Name: "Keyboard", Price: decimal.RequireFromString("49.99")}, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.NotZero(t, created.ID)

	// Duplicate name conflicts.
	var errResp model.ErrorResponse
	status = doJSON(t, http.MethodPost, server.URL+"/api/products",
		&model.ProductRequest{Name: "Keyboard", Price: decimal.RequireFromString("10.00")}, &errResp)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, model.ErrCodeConflict, errResp.Error)

	// Paginated listing reports the total.
	SeedProducts(t, testDB.Pool)

	var page model.ProductPage
	status = doJSON(t, http.MethodGet, server.URL+"/api/products?skip=0&take=3", nil, &page)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(6), page.Pagination.Total)
	assert.Len(t, page.Data, 3)
}
