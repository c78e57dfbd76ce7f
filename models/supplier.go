package models

// Supplier represents the supplier table
type Supplier struct {
	BaseModel
	Name          string  `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	ContactPerson *string `gorm:"type:varchar(100)" json:"contact_person"`
	Phone         *string `gorm:"type:varchar(20)" json:"phone"`
	Email         *string `gorm:"type:varchar(100)" json:"email"`
	Address       *string `gorm:"type:varchar(200)" json:"address"`

	// Relationships
	Products []Product `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

// TableName specifies the table name for Supplier
func (Supplier) TableName() string {
	return "supplier"
}

// ToMap returns the supplier columns as a plain map
func (s *Supplier) ToMap() map[string]any {
	m := s.baseMap()
	m["name"] = s.Name
	m["contact_person"] = deref(s.ContactPerson)
	m["phone"] = deref(s.Phone)
	m["email"] = deref(s.Email)
	m["address"] = deref(s.Address)
	return m
}

var _ Entity = (*Supplier)(nil)
