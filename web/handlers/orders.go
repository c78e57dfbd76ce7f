package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/KirPavMos/advanced-algorithm-05/database"
	"github.com/KirPavMos/advanced-algorithm-05/dto"
	"github.com/KirPavMos/advanced-algorithm-05/models"
)

// OrderList returns all orders with their items
func OrderList(c *fiber.Ctx) error {
	out := []*dto.OrderDTO{}

	err := session(func(tx *gorm.DB) error {
		orders, err := database.ListOrders(tx)
		if err != nil {
			return err
		}
		for i := range orders {
			record, err := dto.OrderFromModel(&orders[i])
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

// OrderView returns one order
func OrderView(c *fiber.Ctx) error {
	return orderResponse(c, database.GetOrder)
}

// OrderRecalculate recomputes and stores an order's total from its items
func OrderRecalculate(c *fiber.Ctx) error {
	return orderResponse(c, database.RecalculateOrderTotal)
}

func orderResponse(c *fiber.Ctx, load func(tx *gorm.DB, id uint) (*models.Order, error)) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var record *dto.OrderDTO
	err = session(func(tx *gorm.DB) error {
		order, err := load(tx, id)
		if err != nil {
			return err
		}
		record, err = dto.OrderFromModel(order)
		return err
	})
	if err != nil {
		return err
	}

	return c.JSON(record)
}
