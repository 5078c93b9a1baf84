package spreadsheet

import (
	"errors"
	"testing"

	"github.com/YoElDante/stock-ga-herramientas/internal/models"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		want        Format
		wantErr     bool
	}{
		{"extension xlsx", "stock.xlsx", "", FormatXLSX, false},
		{"extension xlsx mayúsculas", "STOCK.XLSX", "", FormatXLSX, false},
		{"extension xls", "viejo.xls", "", FormatXLS, false},
		{"extension csv", "datos.csv", "", FormatCSV, false},
		{"content type xlsx", "archivo", MIMEXLSX, FormatXLSX, false},
		{"content type xls", "archivo", "application/vnd.ms-excel", FormatXLS, false},
		{"content type csv", "archivo", "text/csv", FormatCSV, false},
		{"content type csv con charset", "archivo", "text/csv; charset=utf-8", FormatCSV, false},
		{"pdf rechazado", "listado.pdf", "application/pdf", "", true},
		{"sin pista", "archivo", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.filename, tt.contentType)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Fatalf("DetectFormat(%q, %q) err = %v, se esperaba ErrUnsupportedFormat", tt.filename, tt.contentType, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectFormat(%q, %q) err inesperado: %v", tt.filename, tt.contentType, err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat(%q, %q) = %q, se esperaba %q", tt.filename, tt.contentType, got, tt.want)
			}
		})
	}
}

func TestDecodeCSV(t *testing.T) {
	csvData := []byte("codigo,descripcion,ubicacion,cantidad,precio\n" +
		"A1,Martillo,Caja 3,5,1200.50\n" +
		",,,,\n" +
		"B2,Destornillador,,2,800\n")

	rows, err := Decode(csvData, "stock.csv", "")
	if err != nil {
		t.Fatalf("Decode err: %v", err)
	}

	// La fila totalmente vacía se descarta.
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, se esperaban 2", len(rows))
	}

	if got := rows[0]["codigo"]; got != "A1" {
		t.Errorf("rows[0][codigo] = %q", got)
	}
	if got := rows[0]["precio"]; got != "1200.50" {
		t.Errorf("rows[0][precio] = %q", got)
	}

	// La celda vacía no genera clave.
	if _, ok := rows[1]["ubicacion"]; ok {
		t.Errorf("rows[1] no debería tener clave ubicacion")
	}
}

func TestDecodeCSVConBOM(t *testing.T) {
	csvData := []byte("\xef\xbb\xbfcodigo,cantidad\nA1,3\n")

	rows, err := Decode(csvData, "stock.csv", "")
	if err != nil {
		t.Fatalf("Decode err: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d", len(rows))
	}
	if got := rows[0]["codigo"]; got != "A1" {
		t.Errorf("el BOM no se recortó del primer encabezado: %q", got)
	}
}

func TestDecodeFormatoNoSoportado(t *testing.T) {
	_, err := Decode([]byte("cualquier cosa"), "archivo.txt", "text/plain")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, se esperaba ErrUnsupportedFormat", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records := []models.Record{
		{ID: 1, Code: "A1", Description: "Martillo de goma", Location: "Caja 3", Quantity: 5, UnitPrice: 1200.5},
		{ID: 2, Code: "B2", Description: "Llave francesa", Location: "Estante 1", Quantity: 2.5, UnitPrice: 930},
	}

	data, err := Encode(records, "Stock")
	if err != nil {
		t.Fatalf("Encode err: %v", err)
	}

	rows, err := Decode(data, "stock.xlsx", "")
	if err != nil {
		t.Fatalf("Decode err: %v", err)
	}
	if len(rows) != len(records) {
		t.Fatalf("len(rows) = %d, se esperaban %d", len(rows), len(records))
	}

	for i, r := range records {
		row := rows[i]
		if got := row.Text("Codigo"); got != r.Code {
			t.Errorf("fila %d Codigo = %q, se esperaba %q", i, got, r.Code)
		}
		if got := row.Text("Descripcion"); got != r.Description {
			t.Errorf("fila %d Descripcion = %q, se esperaba %q", i, got, r.Description)
		}
		if got := row.Text("Ubicacion"); got != r.Location {
			t.Errorf("fila %d Ubicacion = %q, se esperaba %q", i, got, r.Location)
		}
		if got := row.Number(0, "Cantidad"); got != r.Quantity {
			t.Errorf("fila %d Cantidad = %v, se esperaba %v", i, got, r.Quantity)
		}
		if got := row.Number(0, "Precio"); got != r.UnitPrice {
			t.Errorf("fila %d Precio = %v, se esperaba %v", i, got, r.UnitPrice)
		}
	}
}

func TestEncodeSinRegistros(t *testing.T) {
	data, err := Encode(nil, "Stock")
	if err != nil {
		t.Fatalf("Encode err: %v", err)
	}

	rows, err := Decode(data, "stock.xlsx", "")
	if err != nil {
		t.Fatalf("Decode err: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("len(rows) = %d, se esperaba 0", len(rows))
	}
}
