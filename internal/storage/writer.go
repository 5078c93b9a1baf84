package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/YoElDante/stock-ga-herramientas/internal/models"
	"github.com/YoElDante/stock-ga-herramientas/internal/spreadsheet"
)

// SheetLabel es el nombre de la hoja de cada artefacto guardado.
const SheetLabel = "Stock"

// Solo los nombres con esta forma cuentan como artefactos:
// stock_DDMMAAHHMMSS.xlsx. "Más reciente" se decide por orden lexicográfico
// descendente del nombre, no por fecha de modificación.
var artifactNamePattern = regexp.MustCompile(`^stock_\d{12}\.xlsx$`)

// Alias reducido usado únicamente al recargar artefactos generados por esta
// aplicación. Es más estrecho que el de importación a propósito: los
// artefactos propios siempre salen con estos encabezados.
var (
	reloadCodeAliases        = []string{"Codigo", "codigo"}
	reloadDescriptionAliases = []string{"Descripcion", "descripcion"}
	reloadLocationAliases    = []string{"Ubicacion", "ubicacion", "Caja", "caja"}
	reloadQuantityAliases    = []string{"Cantidad", "cantidad"}
	reloadPriceAliases       = []string{"Precio", "precio"}
)

// Writer persiste snapshots del stock como planillas inmutables con
// timestamp en el nombre, dentro de un directorio dedicado.
type Writer struct {
	dir string
	log *zap.Logger
}

// NewWriter crea el writer y asegura que exista el directorio de datos.
func NewWriter(dir string, log *zap.Logger) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("no se pudo crear el directorio de datos %s: %w", dir, err)
	}
	return &Writer{dir: dir, log: log}, nil
}

// Save escribe un artefacto nuevo con el stock actual y devuelve su nombre
// y sus bytes para descarga inmediata. Dos guardados dentro del mismo
// segundo generan el mismo nombre y el segundo pisa al primero: limitación
// conocida y aceptada.
func (w *Writer) Save(records []models.Record) (string, []byte, error) {
	name := "stock_" + time.Now().Format("020106150405") + ".xlsx"

	data, err := spreadsheet.Encode(records, SheetLabel)
	if err != nil {
		return "", nil, err
	}

	if err := os.WriteFile(filepath.Join(w.dir, name), data, 0o644); err != nil {
		return "", nil, fmt.Errorf("no se pudo escribir %s: %w", name, err)
	}

	w.log.Info("artefacto guardado",
		zap.String("artifact", name),
		zap.Int("records", len(records)))
	return name, data, nil
}

// List enumera los artefactos guardados, el más nuevo primero.
func (w *Writer) List() ([]string, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, fmt.Errorf("no se pudo listar el directorio de datos: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !artifactNamePattern.MatchString(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// LoadLatest lee el artefacto más reciente y lo mapea a registros con IDs
// secuenciales 1..N en el orden del archivo. Si no hay ningún artefacto
// devuelve vacío, no es error.
func (w *Writer) LoadLatest() ([]models.Record, error) {
	names, err := w.List()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}

	latest := names[0]
	data, err := os.ReadFile(filepath.Join(w.dir, latest))
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer %s: %w", latest, err)
	}

	rows, err := spreadsheet.Decode(data, latest, "")
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(rows))
	for i, row := range rows {
		r := models.Record{
			ID:          i + 1,
			Code:        row.Text(reloadCodeAliases...),
			Description: row.Text(reloadDescriptionAliases...),
			Location:    row.Text(reloadLocationAliases...),
			Quantity:    row.Number(0, reloadQuantityAliases...),
			UnitPrice:   row.Number(0, reloadPriceAliases...),
		}
		r.RecomputeAmount()
		records = append(records, r)
	}

	w.log.Info("artefacto cargado",
		zap.String("artifact", latest),
		zap.Int("records", len(records)))
	return records, nil
}
