package dto

import (
	"time"

	"github.com/KirPavMos/advanced-algorithm-05/models"
)

// ProductDTO is the transfer record for a product; SupplierName is read-only
type ProductDTO struct {
	ID           *uint      `json:"id"`
	Name         string     `json:"name" validate:"required,max=100"`
	Description  *string    `json:"description" validate:"omitempty,max=500"`
	Price        float64    `json:"price"`
	Quantity     int        `json:"quantity"`
	SupplierID   uint       `json:"supplier_id" validate:"required"`
	SupplierName *string    `json:"supplier_name"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// ProductFromModel projects a product; SupplierName is set when the
// supplier is loaded.
func ProductFromModel(p *models.Product) (*ProductDTO, error) {
	out := &ProductDTO{
		ID:           uintPtr(p.ID),
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Quantity:     p.Quantity,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName(),
		CreatedAt:    timePtr(p.CreatedAt),
		UpdatedAt:    timePtr(p.UpdatedAt),
	}
	if err := Validate("product", out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeProduct parses and validates a product record
func DecodeProduct(data []byte) (*ProductDTO, error) {
	return decode("product", data, &ProductDTO{})
}

// ToJSON renders the record as indented JSON
func (p *ProductDTO) ToJSON() (string, error) {
	return ToJSON(p)
}
