package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultOrderStatus is assigned to orders created without a status
const DefaultOrderStatus = "created"

// Order represents the order table.
// Status is free-form text; no transitions are enforced.
type Order struct {
	BaseModel
	CustomerName  string  `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerPhone *string `gorm:"type:varchar(20)" json:"customer_phone"`
	CustomerEmail *string `gorm:"type:varchar(100)" json:"customer_email"`
	Status        string  `gorm:"type:varchar(50);default:'created'" json:"status"`
	TotalAmount   float64 `gorm:"default:0" json:"total_amount"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "order"
}

// BeforeCreate fills the default status
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = DefaultOrderStatus
	}
	return nil
}

// AddItem appends an item to the order, filling the item's foreign keys
// from what is already known. TotalAmount is left untouched; call
// CalculateTotal afterwards.
func (o *Order) AddItem(item OrderItem) *OrderItem {
	if o.ID != 0 {
		item.OrderID = o.ID
	}
	if item.Product != nil && item.ProductID == 0 {
		item.ProductID = item.Product.ID
	}
	o.Items = append(o.Items, item)
	return &o.Items[len(o.Items)-1]
}

// CalculateTotal recomputes TotalAmount from the loaded items and returns it.
// It is never called implicitly.
func (o *Order) CalculateTotal() float64 {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].lineTotal())
	}
	o.TotalAmount = total.InexactFloat64()
	return o.TotalAmount
}

// ToMap returns the order columns with its items nested
func (o *Order) ToMap() map[string]any {
	m := o.baseMap()
	m["customer_name"] = o.CustomerName
	m["customer_phone"] = deref(o.CustomerPhone)
	m["customer_email"] = deref(o.CustomerEmail)
	m["status"] = o.Status
	m["total_amount"] = o.TotalAmount

	items := make([]map[string]any, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, o.Items[i].ToMap())
	}
	m["items"] = items
	return m
}

// OrderItem represents the orderitem table.
// Price is the unit price captured when the order was placed.
type OrderItem struct {
	BaseModel
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`

	// Relationships
	// Order is the non-owning back-reference; only filled by Preload("Order")
	Order   *Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for OrderItem
func (OrderItem) TableName() string {
	return "orderitem"
}

// BeforeCreate fills the default quantity
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.Quantity == 0 {
		i.Quantity = 1
	}
	return nil
}

// ProductName returns the loaded product's name, or nil
func (i *OrderItem) ProductName() *string {
	if i.Product == nil {
		return nil
	}
	name := i.Product.Name
	return &name
}

// Total returns price × quantity
func (i *OrderItem) Total() float64 {
	return i.lineTotal().InexactFloat64()
}

func (i *OrderItem) lineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ToMap returns the item columns plus product_name and total
func (i *OrderItem) ToMap() map[string]any {
	m := i.baseMap()
	m["order_id"] = i.OrderID
	m["product_id"] = i.ProductID
	m["product_name"] = deref(i.ProductName())
	m["quantity"] = i.Quantity
	m["price"] = i.Price
	m["total"] = i.Total()
	return m
}

var (
	_ Entity = (*Order)(nil)
	_ Entity = (*OrderItem)(nil)
)
