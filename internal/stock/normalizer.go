package stock

import (
	"github.com/YoElDante/stock-ga-herramientas/internal/models"
	"github.com/YoElDante/stock-ga-herramientas/internal/spreadsheet"
)

// Alias aceptados al importar archivos externos, en orden de prioridad.
// La comparación es exacta (sensible a mayúsculas y acentos), por eso cada
// variante se lista por separado. El cargador de artefactos propios usa una
// tabla más chica (ver internal/storage).
var (
	importCodeAliases = []string{
		"Codigo", "codigo", "CODIGO", "Código", "código", "SKU", "sku",
	}
	importDescriptionAliases = []string{
		"Descripcion", "descripcion", "DESCRIPCION", "Descripción", "descripción",
		"Nombre", "nombre", "NOMBRE", "Producto", "producto",
	}
	importLocationAliases = []string{
		"Ubicacion", "ubicacion", "UBICACION", "Ubicación", "ubicación",
		"Caja", "caja", "CAJA", "Estante", "estante", "Sector", "sector",
	}
	importQuantityAliases = []string{
		"Cantidad", "cantidad", "CANTIDAD", "Stock", "stock", "STOCK", "Qty",
	}
	importPriceAliases = []string{
		"Precio", "precio", "PRECIO", "Price", "price", "Costo", "costo",
	}
)

// NormalizeImportRow mapea una fila cruda al registro canónico. Los campos
// de texto quedan recortados, los numéricos valen 0 si faltan o no parsean,
// y el importe se calcula siempre (se ignora cualquier columna de importe
// que traiga el archivo).
func NormalizeImportRow(row spreadsheet.Row) models.Record {
	r := models.Record{
		Code:        row.Text(importCodeAliases...),
		Description: row.Text(importDescriptionAliases...),
		Location:    row.Text(importLocationAliases...),
		Quantity:    row.Number(0, importQuantityAliases...),
		UnitPrice:   row.Number(0, importPriceAliases...),
	}
	r.RecomputeAmount()
	return r
}
