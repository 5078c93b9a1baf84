package stock

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/YoElDante/stock-ga-herramientas/internal/config"
	"github.com/YoElDante/stock-ga-herramientas/internal/models"
	"github.com/YoElDante/stock-ga-herramientas/internal/spreadsheet"
	"github.com/YoElDante/stock-ga-herramientas/internal/storage"
)

// GET /api/export
// Guarda un artefacto nuevo y lo devuelve como descarga.
func ExportHandler(store *Store, writer *storage.Writer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, data, err := writer.Save(store.List())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al generar el archivo")
		}

		c.Set(fiber.HeaderContentType, spreadsheet.MIMEXLSX)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
		return c.Send(data)
	}
}

// POST /api/save
// Guarda un artefacto nuevo sin descargarlo.
func SaveHandler(store *Store, writer *storage.Writer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, _, err := writer.Save(store.List())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al guardar el archivo")
		}

		return c.JSON(fiber.Map{
			"success":  true,
			"message":  fmt.Sprintf("Stock guardado en %s", name),
			"artifact": name,
		})
	}
}

// POST /api/reload
// Reemplaza el stock en memoria con el último artefacto guardado.
func ReloadHandler(store *Store, writer *storage.Writer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := writer.LoadLatest()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al recargar el archivo")
		}

		count := store.BulkReplace(records)
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Stock recargado desde archivo",
			"count":   count,
		})
	}
}

// GET /api/artifacts
func ListArtifactsHandler(writer *storage.Writer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		names, err := writer.List()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al listar los archivos")
		}
		return c.JSON(names)
	}
}

// POST /api/import
// Agrega al stock actual los registros válidos del archivo subido.
func ImportHandler(store *Store, cfg *config.Config, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valid, stats, err := processUpload(c, cfg.MaxUploadBytes)
		if err != nil {
			return err
		}
		if len(valid) == 0 {
			return noValidRecordsResponse(c, stats)
		}

		count := store.BulkAppend(valid)
		log.Info("importación completada",
			zap.Int("valid", stats.ValidCount),
			zap.Int("rejected", stats.RejectedCount))

		return c.JSON(fiber.Map{
			"success":    true,
			"message":    fmt.Sprintf("Se importaron %d productos", count),
			"count":      count,
			"statistics": stats,
		})
	}
}

// POST /api/import-replace
// Reemplaza el stock completo con los registros válidos del archivo subido.
func ImportReplaceHandler(store *Store, cfg *config.Config, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valid, stats, err := processUpload(c, cfg.MaxUploadBytes)
		if err != nil {
			return err
		}
		if len(valid) == 0 {
			return noValidRecordsResponse(c, stats)
		}

		count := store.BulkReplace(valid)
		log.Info("importación con reemplazo completada",
			zap.Int("valid", stats.ValidCount),
			zap.Int("rejected", stats.RejectedCount))

		return c.JSON(fiber.Map{
			"success":    true,
			"message":    fmt.Sprintf("Stock reemplazado con %d productos", count),
			"count":      count,
			"statistics": stats,
		})
	}
}

// processUpload valida el archivo subido y lo pasa por el pipeline de
// importación: decodificar, normalizar, particionar.
func processUpload(c *fiber.Ctx, maxBytes int64) ([]models.Record, models.ImportStatistics, error) {
	var stats models.ImportStatistics

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, stats, fiber.NewError(fiber.StatusBadRequest, "No se recibió ningún archivo")
	}

	if fileHeader.Size > maxBytes {
		return nil, stats, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("El archivo supera el tamaño máximo de %d MB", maxBytes/(1024*1024)))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if _, err := spreadsheet.DetectFormat(fileHeader.Filename, contentType); err != nil {
		return nil, stats, fiber.NewError(fiber.StatusBadRequest,
			"Solo se permiten archivos Excel (.xlsx, .xls) o CSV (.csv)")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, stats, fiber.NewError(fiber.StatusInternalServerError, "No se pudo abrir el archivo")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, stats, fiber.NewError(fiber.StatusInternalServerError, "No se pudo leer el archivo")
	}

	rows, err := spreadsheet.Decode(data, fileHeader.Filename, contentType)
	if err != nil {
		return nil, stats, fiber.NewError(fiber.StatusBadRequest, "No se pudo procesar el archivo: "+err.Error())
	}

	candidates := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, NormalizeImportRow(row))
	}

	valid, stats := Partition(candidates)
	return valid, stats, nil
}

// noValidRecordsResponse: cero registros válidos es error para el llamador,
// pero viaja con las estadísticas para poder explicar el porqué.
func noValidRecordsResponse(c *fiber.Ctx, stats models.ImportStatistics) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success":    false,
		"error":      ErrNoValidRecords.Error(),
		"statistics": stats,
	})
}
