package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/KirPavMos/advanced-algorithm-05/database"
	"github.com/KirPavMos/advanced-algorithm-05/dto"
)

// SupplierList returns all suppliers
func SupplierList(c *fiber.Ctx) error {
	out := []*dto.SupplierDTO{}

	err := session(func(tx *gorm.DB) error {
		suppliers, err := database.ListSuppliers(tx)
		if err != nil {
			return err
		}
		for i := range suppliers {
			record, err := dto.SupplierFromModel(&suppliers[i])
			if err != nil {
				return err
			}
			out = append(out, record)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return c.JSON(out)
}

// SupplierView returns one supplier with its products
func SupplierView(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var supplier *dto.SupplierDTO
	products := []*dto.ProductDTO{}

	err = session(func(tx *gorm.DB) error {
		s, err := database.GetSupplier(tx, id)
		if err != nil {
			return err
		}
		if supplier, err = dto.SupplierFromModel(s); err != nil {
			return err
		}
		for i := range s.Products {
			s.Products[i].Supplier = s
			record, err := dto.ProductFromModel(&s.Products[i])
			if err != nil {
				return err
			}
			products = append(products, record)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"supplier": supplier,
		"products": products,
	})
}
