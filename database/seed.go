package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/KirPavMos/advanced-algorithm-05/models"
)

// DemoSupplier is the sample supplier inserted by SeedDemo
func DemoSupplier() models.Supplier {
	return models.Supplier{
		Name:          "TechSupplier Inc.",
		ContactPerson: models.StrPtr("Ivan Ivanov"),
		Phone:         models.StrPtr("+79991234567"),
		Email:         models.StrPtr("tech@example.com"),
		Address:       models.StrPtr("Moscow, Tekhnicheskaya st. 42"),
	}
}

// DemoProducts are the sample products inserted by SeedDemo
func DemoProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Gaming laptop",
			Description: models.StrPtr("Powerful gaming laptop"),
			Price:       85000.0,
			Quantity:    15,
		},
		{
			Name:        "Smartphone",
			Description: models.StrPtr("Flagship smartphone"),
			Price:       65000.0,
			Quantity:    30,
		},
	}
}

// SeedDemo inserts the sample supplier and products unless rows with the
// same names exist, then always inserts a new order for one of the first
// product and two of the second. The returned order has its total computed.
func SeedDemo(tx *gorm.DB) (*models.Order, error) {
	supplier, err := ensureSupplier(tx, DemoSupplier())
	if err != nil {
		return nil, fmt.Errorf("failed to seed supplier: %w", err)
	}

	var products []*models.Product
	for _, p := range DemoProducts() {
		p.SupplierID = supplier.ID
		product, err := ensureProduct(tx, p)
		if err != nil {
			return nil, fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
		products = append(products, product)
	}

	order := &models.Order{
		CustomerName:  "Petr Petrov",
		CustomerPhone: models.StrPtr("+79998765432"),
		CustomerEmail: models.StrPtr("petrov@example.com"),
	}
	for i, product := range products {
		order.AddItem(models.OrderItem{
			ProductID: product.ID,
			Quantity:  i + 1,
			Price:     product.Price,
		})
	}
	order.CalculateTotal()

	if err := tx.Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	log.Info().Uint("order_id", order.ID).Float64("total_amount", order.TotalAmount).Msg("Created new order")

	return order, nil
}

func ensureSupplier(tx *gorm.DB, s models.Supplier) (*models.Supplier, error) {
	existing, err := FindSupplierByName(tx, s.Name)
	if err == nil {
		log.Info().Str("supplier", s.Name).Msg("Supplier already exists, reusing it")
		return existing, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	if err := tx.Create(&s).Error; err != nil {
		return nil, err
	}
	log.Info().Str("supplier", s.Name).Uint("id", s.ID).Msg("Created new supplier")
	return &s, nil
}

func ensureProduct(tx *gorm.DB, p models.Product) (*models.Product, error) {
	existing, err := FindProductByName(tx, p.Name)
	if err == nil {
		log.Info().Str("product", p.Name).Msg("Product already exists, reusing it")
		return existing, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	if err := tx.Create(&p).Error; err != nil {
		return nil, err
	}
	log.Info().Str("product", p.Name).Uint("id", p.ID).Msg("Created new product")
	return &p, nil
}
