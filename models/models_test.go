package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableNamesAreLowercasedTypeNames(t *testing.T) {
	want := []string{"supplier", "order", "product", "orderitem"}

	got := make([]string, 0, len(want))
	for _, m := range AllModels() {
		got = append(got, m.TableName())
	}

	assert.Equal(t, want, got)
	for _, name := range got {
		assert.Equal(t, strings.ToLower(name), name)
	}
}

func TestCalculateTotal(t *testing.T) {
	order := &Order{CustomerName: "Jane"}
	order.AddItem(OrderItem{ProductID: 1, Quantity: 2, Price: 10.0})
	order.AddItem(OrderItem{ProductID: 2, Quantity: 3, Price: 0.1})

	assert.Zero(t, order.TotalAmount, "total is not recomputed implicitly")

	total := order.CalculateTotal()
	assert.Equal(t, 20.3, total)
	assert.Equal(t, 20.3, order.TotalAmount)

	order.Items = order.Items[:1]
	assert.Equal(t, 20.3, order.TotalAmount)
	assert.Equal(t, 20.0, order.CalculateTotal())
}

func TestCalculateTotalEmpty(t *testing.T) {
	order := &Order{TotalAmount: 99}
	assert.Zero(t, order.CalculateTotal())
}

func TestAddItemFillsForeignKeys(t *testing.T) {
	order := &Order{BaseModel: BaseModel{ID: 7}}
	product := &Product{BaseModel: BaseModel{ID: 3}, Name: "Widget"}

	item := order.AddItem(OrderItem{Product: product, Quantity: 1, Price: 5})

	assert.Equal(t, uint(7), item.OrderID)
	assert.Equal(t, uint(3), item.ProductID)
	require.Len(t, order.Items, 1)
	assert.Same(t, &order.Items[0], item)
}

func TestProductToMap(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := &Product{
		BaseModel:  BaseModel{ID: 4, CreatedAt: now, UpdatedAt: now},
		Name:       "Widget",
		Price:      10,
		Quantity:   5,
		SupplierID: 2,
	}

	m := p.ToMap()
	assert.Nil(t, m["supplier_name"])
	assert.Nil(t, m["description"])
	assert.Equal(t, "2024-05-01T12:00:00Z", m["created_at"])

	p.Supplier = &Supplier{Name: "Acme"}
	p.Description = StrPtr("blue")
	m = p.ToMap()
	assert.Equal(t, "Acme", m["supplier_name"])
	assert.Equal(t, "blue", m["description"])
	assert.Equal(t, uint(2), m["supplier_id"])
}

func TestOrderToMapIncludesItems(t *testing.T) {
	order := &Order{CustomerName: "Jane", Status: DefaultOrderStatus}
	order.AddItem(OrderItem{ProductID: 1, Quantity: 2, Price: 10, Product: &Product{Name: "Widget"}})
	order.CalculateTotal()

	m := order.ToMap()
	assert.Equal(t, "Jane", m["customer_name"])
	assert.Equal(t, 20.0, m["total_amount"])
	assert.Nil(t, m["created_at"])

	items, ok := m["items"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0]["product_name"])
	assert.Equal(t, 20.0, items[0]["total"])
}

func TestSupplierToMap(t *testing.T) {
	s := &Supplier{Name: "Acme", Phone: StrPtr("+100")}

	m := s.ToMap()
	assert.Equal(t, "Acme", m["name"])
	assert.Equal(t, "+100", m["phone"])
	assert.Nil(t, m["email"])
	assert.NotContains(t, m, "products")
}
