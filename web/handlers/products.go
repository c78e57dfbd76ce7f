package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/KirPavMos/advanced-algorithm-05/database"
	"github.com/KirPavMos/advanced-algorithm-05/dto"
)

// ProductList returns all products with their supplier name
func ProductList(c *fiber.Ctx) error {
	out := []*dto.ProductDTO{}

	err := session(func(tx *gorm.DB) error {
		products, err := database.ListProducts(tx)
		if err != nil {
			return err
		}
		for i := range products {
			record, err := dto.ProductFromModel(&products[i])
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
