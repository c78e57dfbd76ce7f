package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/KirPavMos/advanced-algorithm-05/database"
)

// SQLQueriesHeader carries the number of statements a request executed
const SQLQueriesHeader = "X-SQL-Queries"

// SQLDebugMiddleware stores the statements executed by each request in
// its locals and reports their count in a response header
func SQLDebugMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		since := database.SQLLogger.LastID()

		err := c.Next()

		requestQueries := database.SQLLogger.QueriesSince(since)
		c.Locals("SQLQueries", requestQueries)
		c.Set(SQLQueriesHeader, strconv.Itoa(len(requestQueries)))

		return err
	}
}
