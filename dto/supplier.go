package dto

import (
	"time"

	"github.com/KirPavMos/advanced-algorithm-05/models"
)

// SupplierDTO is the transfer record for a supplier
type SupplierDTO struct {
	ID            *uint      `json:"id"`
	Name          string     `json:"name" validate:"required,max=100"`
	ContactPerson *string    `json:"contact_person" validate:"omitempty,max=100"`
	Phone         *string    `json:"phone" validate:"omitempty,max=20"`
	Email         *string    `json:"email" validate:"omitempty,max=100"`
	Address       *string    `json:"address" validate:"omitempty,max=200"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

// SupplierFromModel projects a loaded supplier
func SupplierFromModel(s *models.Supplier) (*SupplierDTO, error) {
	out := &SupplierDTO{
		ID:            uintPtr(s.ID),
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		CreatedAt:     timePtr(s.CreatedAt),
		UpdatedAt:     timePtr(s.UpdatedAt),
	}
	if err := Validate("supplier", out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeSupplier parses and validates a supplier record
func DecodeSupplier(data []byte) (*SupplierDTO, error) {
	return decode("supplier", data, &SupplierDTO{})
}

// ToJSON renders the record as indented JSON
func (s *SupplierDTO) ToJSON() (string, error) {
	return ToJSON(s)
}
