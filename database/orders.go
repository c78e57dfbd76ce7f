package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/KirPavMos/advanced-algorithm-05/models"
)

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// withItems preloads an order's items in insertion order with their products
func withItems(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Items", byID).Preload("Items.Product")
}

// FindSupplierByName looks a supplier up by its unique name
func FindSupplierByName(tx *gorm.DB, name string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := tx.Where("name = ?", name).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// FindProductByName returns the first product with the given name
func FindProductByName(tx *gorm.DB, name string) (*models.Product, error) {
	var product models.Product
	if err := tx.Preload("Supplier").Where("name = ?", name).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetSupplier loads a supplier with its products
func GetSupplier(tx *gorm.DB, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := tx.Preload("Products", byID).First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// ListSuppliers returns all suppliers ordered by id
func ListSuppliers(tx *gorm.DB) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := tx.Order("id").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch suppliers: %w", err)
	}
	return suppliers, nil
}

// ListProducts returns all products with their supplier
func ListProducts(tx *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := tx.Preload("Supplier").Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// ListOrders returns all orders with items and their products
func ListOrders(tx *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := withItems(tx).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// GetOrder loads one order with items and their products
func GetOrder(tx *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := withItems(tx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FirstOrder loads the order with the lowest id
func FirstOrder(tx *gorm.DB) (*models.Order, error) {
	var order models.Order
	if err := withItems(tx).Order("id").First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// RecalculateOrderTotal recomputes total_amount from the stored items and
// persists it. Item changes never do this on their own.
func RecalculateOrderTotal(tx *gorm.DB, id uint) (*models.Order, error) {
	order, err := GetOrder(tx, id)
	if err != nil {
		return nil, err
	}

	order.CalculateTotal()
	if err := tx.Model(order).Update("total_amount", order.TotalAmount).Error; err != nil {
		return nil, fmt.Errorf("failed to update order total: %w", err)
	}
	return order, nil
}
