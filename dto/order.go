package dto

import (
	"encoding/json"
	"time"

	"github.com/KirPavMos/advanced-algorithm-05/models"
)

// DefaultItemQuantity matches the orderitem.quantity column default
const DefaultItemQuantity = 1

// OrderItemDTO is the transfer record for an order line.
// ProductName and Total are read-only.
type OrderItemDTO struct {
	ID          *uint      `json:"id"`
	ProductID   uint       `json:"product_id" validate:"required"`
	ProductName *string    `json:"product_name"`
	Quantity    int        `json:"quantity"`
	Price       float64    `json:"price"`
	Total       *float64   `json:"total"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// OrderDTO is the transfer record for an order with its items
type OrderDTO struct {
	ID            *uint          `json:"id"`
	CustomerName  string         `json:"customer_name" validate:"required,max=100"`
	CustomerPhone *string        `json:"customer_phone" validate:"omitempty,max=20"`
	CustomerEmail *string        `json:"customer_email" validate:"omitempty,max=100"`
	Status        string         `json:"status" validate:"max=50"`
	TotalAmount   float64        `json:"total_amount"`
	Items         []OrderItemDTO `json:"items" validate:"dive"`
	CreatedAt     *time.Time     `json:"created_at"`
	UpdatedAt     *time.Time     `json:"updated_at"`
}

// NewOrderDTO returns an order record carrying the column defaults
func NewOrderDTO(customerName string) *OrderDTO {
	return &OrderDTO{
		CustomerName: customerName,
		Status:       models.DefaultOrderStatus,
		Items:        []OrderItemDTO{},
	}
}

// NewOrderItemDTO returns an item record with the default quantity
func NewOrderItemDTO(productID uint, price float64) OrderItemDTO {
	return OrderItemDTO{
		ProductID: productID,
		Quantity:  DefaultItemQuantity,
		Price:     price,
	}
}

// OrderItemFromModel projects an order item; ProductName is set when the
// product is loaded and Total is price × quantity.
func OrderItemFromModel(i *models.OrderItem) (*OrderItemDTO, error) {
	total := i.Total()
	out := &OrderItemDTO{
		ID:          uintPtr(i.ID),
		ProductID:   i.ProductID,
		ProductName: i.ProductName(),
		Quantity:    i.Quantity,
		Price:       i.Price,
		Total:       &total,
		CreatedAt:   timePtr(i.CreatedAt),
		UpdatedAt:   timePtr(i.UpdatedAt),
	}
	if err := Validate("order item", out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrderFromModel projects an order and every loaded item
func OrderFromModel(o *models.Order) (*OrderDTO, error) {
	out := &OrderDTO{
		ID:            uintPtr(o.ID),
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		CustomerEmail: o.CustomerEmail,
		Status:        o.Status,
		TotalAmount:   o.TotalAmount,
		Items:         make([]OrderItemDTO, 0, len(o.Items)),
		CreatedAt:     timePtr(o.CreatedAt),
		UpdatedAt:     timePtr(o.UpdatedAt),
	}
	for idx := range o.Items {
		item, err := OrderItemFromModel(&o.Items[idx])
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, *item)
	}
	if err := Validate("order", out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeOrder parses and validates an order record, applying defaults for
// missing status, total and item quantities.
func DecodeOrder(data []byte) (*OrderDTO, error) {
	return decode("order", data, &OrderDTO{})
}

// ToJSON renders the record as indented JSON
func (o *OrderDTO) ToJSON() (string, error) {
	return ToJSON(o)
}

// UnmarshalJSON applies the status and items defaults
func (o *OrderDTO) UnmarshalJSON(data []byte) error {
	type plain OrderDTO
	p := plain{Status: models.DefaultOrderStatus}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Items == nil {
		p.Items = []OrderItemDTO{}
	}
	*o = OrderDTO(p)
	return nil
}

// UnmarshalJSON applies the quantity default
func (i *OrderItemDTO) UnmarshalJSON(data []byte) error {
	type plain OrderItemDTO
	p := plain{Quantity: DefaultItemQuantity}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*i = OrderItemDTO(p)
	return nil
}
