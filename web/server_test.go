package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KirPavMos/advanced-algorithm-05/config"
	"github.com/KirPavMos/advanced-algorithm-05/database"
	"github.com/KirPavMos/advanced-algorithm-05/dto"
	"github.com/KirPavMos/advanced-algorithm-05/models"
	"github.com/KirPavMos/advanced-algorithm-05/web/middleware"
)

func setup(t *testing.T) (*Server, *models.Order) {
	t.Helper()

	cfg := &config.DatabaseConfig{URL: "sqlite://" + filepath.Join(t.TempDir(), "web.db")}
	conn, err := database.New(cfg)
	require.NoError(t, err)
	require.NoError(t, conn.CreateTables())

	prev := database.DB
	database.DB = conn
	t.Cleanup(func() {
		database.DB = prev
		conn.Close()
	})

	var order *models.Order
	require.NoError(t, conn.Session(func(tx *gorm.DB) error {
		order, err = database.SeedDemo(tx)
		return err
	}))
	database.SQLLogger.Clear()

	return NewServer(), order
}

func do(t *testing.T, s *Server, method, path string) (int, []byte, http.Header) {
	t.Helper()

	resp, err := s.App().Test(httptest.NewRequest(method, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body, resp.Header
}

func TestHealth(t *testing.T) {
	s, _ := setup(t)

	code, body, _ := do(t, s, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestOrderList(t *testing.T) {
	s, order := setup(t)

	code, body, header := do(t, s, http.MethodGet, "/api/orders")
	require.Equal(t, http.StatusOK, code)
	assert.NotEqual(t, "0", header.Get(middleware.SQLQueriesHeader))

	var orders []dto.OrderDTO
	require.NoError(t, json.Unmarshal(body, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, *orders[0].ID)
	require.Len(t, orders[0].Items, 2)
	assert.Equal(t, "Gaming laptop", *orders[0].Items[0].ProductName)
	assert.Equal(t, 130000.0, *orders[0].Items[1].Total)
	assert.Equal(t, 215000.0, orders[0].TotalAmount)
}

func TestSQLCountHeaderWithFullLog(t *testing.T) {
	s, _ := setup(t)
	for i := 0; i < 150; i++ {
		database.SQLLogger.LogQuery("SELECT 1", 0, 0, nil)
	}

	code, _, header := do(t, s, http.MethodGet, "/api/orders")
	require.Equal(t, http.StatusOK, code)
	assert.NotEqual(t, "0", header.Get(middleware.SQLQueriesHeader))
}

func TestOrderView(t *testing.T) {
	s, order := setup(t)

	code, body, _ := do(t, s, http.MethodGet, "/api/orders/1")
	require.Equal(t, http.StatusOK, code)

	record, err := dto.DecodeOrder(body)
	require.NoError(t, err)
	assert.Equal(t, order.CustomerName, record.CustomerName)
	assert.Equal(t, models.DefaultOrderStatus, record.Status)

	code, body, _ = do(t, s, http.MethodGet, "/api/orders/999")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, string(body), "error")

	code, _, _ = do(t, s, http.MethodGet, "/api/orders/abc")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestOrderRecalculate(t *testing.T) {
	s, order := setup(t)

	require.NoError(t, database.GetDB().Session(func(tx *gorm.DB) error {
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).Update("total_amount", 1).Error
	}))

	code, body, _ := do(t, s, http.MethodPost, "/api/orders/1/recalculate")
	require.Equal(t, http.StatusOK, code)

	record, err := dto.DecodeOrder(body)
	require.NoError(t, err)
	assert.Equal(t, 215000.0, record.TotalAmount)
}

func TestSupplierAndProductEndpoints(t *testing.T) {
	s, _ := setup(t)

	code, body, _ := do(t, s, http.MethodGet, "/api/suppliers")
	require.Equal(t, http.StatusOK, code)
	var suppliers []dto.SupplierDTO
	require.NoError(t, json.Unmarshal(body, &suppliers))
	require.Len(t, suppliers, 1)
	assert.Equal(t, "TechSupplier Inc.", suppliers[0].Name)

	code, body, _ = do(t, s, http.MethodGet, "/api/suppliers/1")
	require.Equal(t, http.StatusOK, code)
	var view struct {
		Supplier dto.SupplierDTO  `json:"supplier"`
		Products []dto.ProductDTO `json:"products"`
	}
	require.NoError(t, json.Unmarshal(body, &view))
	require.Len(t, view.Products, 2)
	assert.Equal(t, "TechSupplier Inc.", *view.Products[0].SupplierName)

	code, body, _ = do(t, s, http.MethodGet, "/api/products")
	require.Equal(t, http.StatusOK, code)
	var products []dto.ProductDTO
	require.NoError(t, json.Unmarshal(body, &products))
	require.Len(t, products, 2)
	assert.Equal(t, "TechSupplier Inc.", *products[1].SupplierName)
}

func TestSQLDebugEndpoints(t *testing.T) {
	s, _ := setup(t)
	do(t, s, http.MethodGet, "/api/orders")

	code, body, _ := do(t, s, http.MethodGet, "/api/debug/sql?limit=5")
	require.Equal(t, http.StatusOK, code)
	var logs []database.QueryLog
	require.NoError(t, json.Unmarshal(body, &logs))
	assert.NotEmpty(t, logs)
	assert.LessOrEqual(t, len(logs), 5)

	code, _, _ = do(t, s, http.MethodDelete, "/api/debug/sql")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, database.SQLLogger.GetQueries())
}
