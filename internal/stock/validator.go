package stock

import (
	"github.com/YoElDante/stock-ga-herramientas/internal/models"
)

// Partition separa los candidatos normalizados en válidos y descartados.
// Un registro es válido si tiene (código O descripción) Y cantidad > 0.
// Los válidos se renumeran 1..N en el orden original del archivo. Nunca
// falla: cero válidos es un resultado legítimo y lo decide el llamador.
func Partition(candidates []models.Record) ([]models.Record, models.ImportStatistics) {
	valid := make([]models.Record, 0, len(candidates))
	totalValue := 0.0

	for _, c := range candidates {
		if (c.Code == "" && c.Description == "") || c.Quantity <= 0 {
			continue
		}
		c.ID = len(valid) + 1
		valid = append(valid, c)
		totalValue += c.Quantity * c.UnitPrice
	}

	stats := models.ImportStatistics{
		TotalInFile:   len(candidates),
		ValidCount:    len(valid),
		RejectedCount: len(candidates) - len(valid),
		TotalValue:    totalValue,
	}
	return valid, stats
}
