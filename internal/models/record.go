package models

// Record: una línea de stock. El ID lo asigna siempre el store (secuencial,
// arranca en 1); el cliente nunca lo manda. Amount es derivado y se recalcula
// cada vez que cambian la cantidad o el precio.
type Record struct {
	ID          int     `json:"id"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// RecomputeAmount recalcula el importe derivado.
func (r *Record) RecomputeAmount() {
	r.Amount = r.Quantity * r.UnitPrice
}

// ImportStatistics: resultado de una importación. Se calcula una vez por
// operación y se devuelve al llamador, no se persiste.
type ImportStatistics struct {
	TotalInFile   int     `json:"totalInFile"`
	ValidCount    int     `json:"validCount"`
	RejectedCount int     `json:"emptyOrRejectedCount"`
	TotalValue    float64 `json:"totalValue"`
}
