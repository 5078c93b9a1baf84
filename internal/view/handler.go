package view

import (
	"github.com/gofiber/fiber/v2"

	"github.com/YoElDante/stock-ga-herramientas/internal/stock"
)

// GET /api/view?search=&grouped=true&sort=code&dir=asc
// Devuelve la vista derivada del stock actual: filtrada, agrupada y
// ordenada según los parámetros, junto con el resumen.
func RenderHandler(store *stock.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		opts := Options{
			Search:     c.Query("search"),
			Grouped:    c.QueryBool("grouped"),
			SortColumn: c.Query("sort"),
			SortDir:    Direction(c.Query("dir")),
		}

		items, summary := Render(store.List(), opts)
		return c.JSON(fiber.Map{
			"items":   items,
			"summary": summary,
		})
	}
}
