package main

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/YoElDante/stock-ga-herramientas/internal/config"
	"github.com/YoElDante/stock-ga-herramientas/internal/stock"
	"github.com/YoElDante/stock-ga-herramientas/internal/storage"
	"github.com/YoElDante/stock-ga-herramientas/internal/view"
	"github.com/YoElDante/stock-ga-herramientas/pkg/logger"
)

func main() {
	log := logger.Must(logger.New())
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("configuración inválida", zap.Error(err))
	}

	writer, err := storage.NewWriter(cfg.DataDir, logger.Named(log, "storage"))
	if err != nil {
		log.Fatal("no se pudo preparar el directorio de datos", zap.Error(err))
	}

	// Sembrar el stock con el último artefacto guardado; si no hay ninguno
	// (o no se puede leer) se arranca con stock vacío.
	seed, err := writer.LoadLatest()
	if err != nil {
		log.Warn("no se pudo cargar el último artefacto, se arranca vacío", zap.Error(err))
		seed = nil
	}
	store := stock.NewStore(seed)
	log.Info("stock inicial cargado", zap.Int("records", store.Count()))

	app := fiber.New(fiber.Config{
		// Margen sobre el límite de archivo para el resto del multipart.
		BodyLimit: int(cfg.MaxUploadBytes) + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Error("error inesperado", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error inesperado del servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	httpLog := logger.Named(log, "http")
	api := app.Group("/api")

	// ABM de registros
	api.Get("/records", stock.ListRecordsHandler(store))
	api.Get("/records/:id", stock.GetRecordHandler(store))
	api.Post("/records", stock.CreateRecordHandler(store))
	api.Put("/records/:id", stock.UpdateRecordHandler(store))
	api.Delete("/records/:id", stock.DeleteRecordHandler(store))

	// Persistencia e importación
	api.Get("/export", stock.ExportHandler(store, writer))
	api.Post("/save", stock.SaveHandler(store, writer))
	api.Post("/reload", stock.ReloadHandler(store, writer))
	api.Get("/artifacts", stock.ListArtifactsHandler(writer))
	api.Post("/import", stock.ImportHandler(store, cfg, httpLog))
	api.Post("/import-replace", stock.ImportReplaceHandler(store, cfg, httpLog))

	// Vista derivada (filtro, agrupamiento, orden)
	api.Get("/view", view.RenderHandler(store))

	log.Info("servidor escuchando", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal("el servidor terminó con error", zap.Error(err))
	}
}
