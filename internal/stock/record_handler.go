package stock

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// GET /api/records
func ListRecordsHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.List())
	}
}

// GET /api/records/:id
func GetRecordHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		record, err := store.Get(id)
		if errors.Is(err, ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Producto no encontrado")
		}
		return c.JSON(record)
	}
}

// POST /api/records
func CreateRecordHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}

		record := store.Add(body)
		return c.JSON(fiber.Map{
			"success": true,
			"record":  record,
		})
	}
}

// PUT /api/records/:id
func UpdateRecordHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var body RecordInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}

		record, err := store.Update(id, body)
		if errors.Is(err, ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Producto no encontrado")
		}
		return c.JSON(fiber.Map{
			"success": true,
			"record":  record,
		})
	}
}

// DELETE /api/records/:id
func DeleteRecordHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		record, err := store.Remove(id)
		if errors.Is(err, ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Producto no encontrado")
		}
		return c.JSON(fiber.Map{
			"success": true,
			"record":  record,
		})
	}
}
