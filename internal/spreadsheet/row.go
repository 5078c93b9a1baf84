package spreadsheet

import (
	"strconv"
	"strings"
)

// Row es una fila cruda de planilla: encabezado tal como vino -> valor de
// celda. Las celdas vacías no tienen clave, así que "presente" y "no vacía"
// son lo mismo al consultar.
type Row map[string]string

// Text devuelve el valor recortado del primer alias presente en la fila.
// El orden de los alias es prioridad: gana el primero que exista.
func (r Row) Text(aliases ...string) string {
	for _, a := range aliases {
		if v, ok := r[a]; ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Number parsea como decimal el valor del primer alias presente. Si ningún
// alias está o el valor no es numérico devuelve def: el dato malformado
// vale el default, nunca es error.
func (r Row) Number(def float64, aliases ...string) float64 {
	for _, a := range aliases {
		if v, ok := r[a]; ok {
			return ParseFloatOrDefault(v, def)
		}
	}
	return def
}

// ParseFloatOrDefault es el helper "parsea o vale def" usado en toda la
// ingesta: cada llamador declara su default en el punto de uso.
func ParseFloatOrDefault(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return f
}
