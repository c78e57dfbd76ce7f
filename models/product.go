package models

// Product represents the product table
type Product struct {
	BaseModel
	Name        string  `gorm:"type:varchar(100);not null" json:"name"`
	Description *string `gorm:"type:varchar(500)" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Quantity    int     `gorm:"default:0" json:"quantity"`
	SupplierID  uint    `gorm:"not null;index" json:"supplier_id"`

	// Relationships
	// Supplier is the owning side; populated by Preload("Supplier")
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"-"`
	// No cascade: a product still referenced by order items cannot be deleted
	OrderItems []OrderItem `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "product"
}

// SupplierName returns the loaded supplier's name, or nil
func (p *Product) SupplierName() *string {
	if p.Supplier == nil {
		return nil
	}
	name := p.Supplier.Name
	return &name
}

// ToMap returns the product columns plus supplier_name
func (p *Product) ToMap() map[string]any {
	m := p.baseMap()
	m["name"] = p.Name
	m["description"] = deref(p.Description)
	m["price"] = p.Price
	m["quantity"] = p.Quantity
	m["supplier_id"] = p.SupplierID
	m["supplier_name"] = deref(p.SupplierName())
	return m
}

var _ Entity = (*Product)(nil)
