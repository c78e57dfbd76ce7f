package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/KirPavMos/advanced-algorithm-05/database"
)

// Health reports whether the database answers
func Health(c *fiber.Ctx) error {
	if err := database.GetDB().CheckConnection(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// GetSQLLogs returns the most recent SQL statements
func GetSQLLogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	queries := database.SQLLogger.GetRecentQueries(limit)
	return c.JSON(queries)
}

// ClearSQLLogs clears all SQL logs
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.SendStatus(fiber.StatusOK)
}

// session runs fn in a unit of work on the process-wide connection
func session(fn func(tx *gorm.DB) error) error {
	return database.GetDB().Session(fn)
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id: "+c.Params("id"))
	}
	return uint(id), nil
}
