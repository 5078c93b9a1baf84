package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/YoElDante/stock-ga-herramientas/internal/models"
)

// ErrUnsupportedFormat: la extensión o el content type del archivo no
// corresponde a ninguno de los formatos aceptados.
var ErrUnsupportedFormat = errors.New("formato de archivo no soportado")

// Format es un contenedor tabular reconocido.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatCSV  Format = "csv"
)

// MIMEXLSX es el content type con el que se descargan los artefactos.
const MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var mimeFormats = map[string]Format{
	MIMEXLSX:                   FormatXLSX,
	"application/vnd.ms-excel": FormatXLS,
	"text/csv":                 FormatCSV,
	"application/csv":          FormatCSV,
}

// DetectFormat resuelve el formato por extensión del nombre o, si la
// extensión no alcanza, por el content type declarado. Falla con
// ErrUnsupportedFormat antes de intentar parsear nada.
func DetectFormat(filename, contentType string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	case ".csv":
		return FormatCSV, nil
	}

	// El content type puede traer parámetros: "text/csv; charset=utf-8"
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if f, ok := mimeFormats[ct]; ok {
		return f, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
}

// Decode lee un archivo tabular y devuelve una fila mapeada por encabezado
// por cada fila de datos (el encabezado es la primera fila y no se incluye).
// No se hace ninguna coerción de tipos más allá de la que el contenedor
// aplica por sí mismo.
func Decode(data []byte, filename, contentType string) ([]Row, error) {
	format, err := DetectFormat(filename, contentType)
	if err != nil {
		return nil, err
	}

	var grid [][]string
	switch format {
	case FormatXLSX:
		grid, err = readXLSX(data)
	case FormatXLS:
		grid, err = readXLS(data)
	case FormatCSV:
		grid, err = readCSV(data)
	}
	if err != nil {
		return nil, err
	}

	return mapRows(grid), nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el archivo xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("la planilla no tiene hojas")
	}

	// RawCellValue: los valores numéricos vienen sin el formato de moneda
	// que aplicamos al exportar.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la hoja %s: %w", sheets[0], err)
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el archivo xls: %w", err)
	}

	sheet, err := wb.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la hoja del xls: %w", err)
	}

	grid := make([][]string, 0, sheet.GetNumberRows())
	for i := 0; i < sheet.GetNumberRows(); i++ {
		r, err := sheet.GetRow(i)
		if err != nil {
			continue
		}
		cols := r.GetCols()
		cells := make([]string, len(cols))
		for j, cell := range cols {
			cells[j] = cell.GetString()
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")) // BOM de Excel

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	grid, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el archivo csv: %w", err)
	}
	return grid, nil
}

// mapRows arma las filas mapeadas a partir de la grilla cruda. Las celdas
// vacías no generan clave y las filas sin ningún dato se descartan por
// completo (no cuentan como candidatos de importación).
func mapRows(grid [][]string) []Row {
	if len(grid) == 0 {
		return nil
	}

	headers := grid[0]
	rows := make([]Row, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		row := Row{}
		for j, h := range headers {
			if h == "" || j >= len(cells) || cells[j] == "" {
				continue
			}
			row[h] = cells[j]
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// Encabezados y anchos de columna del artefacto exportado.
var (
	exportHeaders = []string{"Codigo", "Descripcion", "Ubicacion", "Cantidad", "Precio", "Importe"}
	exportWidths  = []float64{12, 40, 15, 10, 15, 15}
)

// Formato que Excel interpreta como moneda, aplicado a Precio e Importe.
const currencyNumFmt = `"$"#,##0.00`

// Encode genera un xlsx con los registros. El importe se escribe como
// snapshot de cantidad*precio al momento de exportar.
func Encode(records []models.Record, sheetLabel string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetLabel); err != nil {
		return nil, fmt.Errorf("no se pudo nombrar la hoja: %w", err)
	}

	for i, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetLabel, cell, h); err != nil {
			return nil, err
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetLabel, col, col, exportWidths[i]); err != nil {
			return nil, err
		}
	}

	for i, r := range records {
		n := i + 2
		values := []interface{}{r.Code, r.Description, r.Location, r.Quantity, r.UnitPrice, r.Quantity * r.UnitPrice}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, n)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetLabel, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if len(records) > 0 {
		numFmt := currencyNumFmt
		style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
		if err != nil {
			return nil, fmt.Errorf("no se pudo crear el estilo de moneda: %w", err)
		}
		if err := f.SetCellStyle(sheetLabel, "E2", fmt.Sprintf("F%d", len(records)+1), style); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("no se pudo serializar la planilla: %w", err)
	}
	return buf.Bytes(), nil
}
