package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/YoElDante/stock-ga-herramientas/internal/models"
)

// Direction: sentido de ordenamiento de una columna.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
	Unsorted   Direction = "" // sin orden: se respeta el orden original
)

// Options parametriza el render de la vista.
type Options struct {
	Search     string
	Grouped    bool
	SortColumn string
	SortDir    Direction
}

// Item es una fila a mostrar: un registro suelto o un grupo por código.
// Los grupos son efímeros, se recalculan en cada render y nunca se
// persisten.
type Item struct {
	ID                 int     `json:"id"`
	Code               string  `json:"code"`
	Description        string  `json:"description"`
	Location           string  `json:"location"`
	Quantity           float64 `json:"quantity"`
	UnitPrice          float64 `json:"unitPrice"`
	Amount             float64 `json:"amount"`
	AggregatesMultiple bool    `json:"aggregatesMultiple"`
	ItemCount          int     `json:"itemCount"`
}

// Summary resume la vista actual (ya filtrada y agrupada), no el stock
// completo.
type Summary struct {
	Lines      int     `json:"lines"`      // filas mostradas (grupos si está agrupado)
	Records    int     `json:"records"`    // registros subyacentes de la vista
	TotalValue float64 `json:"totalValue"` // suma de cantidad*precio de lo mostrado
}

// Render deriva la lista a mostrar desde un snapshot del stock: filtro de
// búsqueda, agrupamiento opcional por código y orden opcional por columna.
// Es una función pura, cada interacción del cliente la recalcula entera.
func Render(records []models.Record, opts Options) ([]Item, Summary) {
	filtered := filter(records, opts.Search)

	var items []Item
	if opts.Grouped {
		items = groupByCode(filtered)
	} else {
		items = make([]Item, 0, len(filtered))
		for _, r := range filtered {
			items = append(items, Item{
				ID:          r.ID,
				Code:        r.Code,
				Description: r.Description,
				Location:    r.Location,
				Quantity:    r.Quantity,
				UnitPrice:   r.UnitPrice,
				Amount:      r.Quantity * r.UnitPrice,
				ItemCount:   1,
			})
		}
	}

	if opts.SortColumn != "" && opts.SortDir != Unsorted {
		sortItems(items, opts.SortColumn, opts.SortDir)
	}

	summary := Summary{Lines: len(items), Records: len(filtered)}
	for _, it := range items {
		summary.TotalValue += it.Quantity * it.UnitPrice
	}
	return items, summary
}

// NextSort aplica el ciclo de clic sobre un encabezado: asc -> desc -> sin
// orden -> asc. Un encabezado distinto arranca siempre en ascendente.
func NextSort(column string, dir Direction, clicked string) (string, Direction) {
	if column != clicked {
		return clicked, Ascending
	}
	switch dir {
	case Ascending:
		return clicked, Descending
	case Descending:
		return "", Unsorted
	default:
		return clicked, Ascending
	}
}

// filter retiene los registros cuyo código, descripción o ubicación
// contiene el término (sin distinguir mayúsculas). Término vacío deja
// pasar todo.
func filter(records []models.Record, term string) []models.Record {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}

	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Code), term) ||
			strings.Contains(strings.ToLower(r.Description), term) ||
			strings.Contains(strings.ToLower(r.Location), term) {
			out = append(out, r)
		}
	}
	return out
}

// groupByCode colapsa los registros por código normalizado (recortado y en
// mayúsculas), en orden de primera aparición. El grupo toma el ID, la
// descripción y el precio del primer miembro, suma cantidades y une las
// ubicaciones distintas no vacías.
func groupByCode(records []models.Record) []Item {
	type group struct {
		item      Item
		locations []string
	}

	index := make(map[string]int)
	groups := make([]*group, 0, len(records))

	for _, r := range records {
		key := strings.ToUpper(strings.TrimSpace(r.Code))
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, &group{item: Item{
				ID:          r.ID,
				Code:        r.Code,
				Description: r.Description,
				UnitPrice:   r.UnitPrice,
			}})
		}

		g := groups[gi]
		g.item.Quantity += r.Quantity
		g.item.ItemCount++
		if loc := strings.TrimSpace(r.Location); loc != "" && !containsString(g.locations, loc) {
			g.locations = append(g.locations, loc)
		}
	}

	items := make([]Item, 0, len(groups))
	for _, g := range groups {
		g.item.Location = joinLocations(g.locations)
		g.item.Amount = g.item.Quantity * g.item.UnitPrice
		g.item.AggregatesMultiple = g.item.ItemCount > 1
		items = append(items, g.item)
	}
	return items
}

// joinLocations formatea la lista de ubicaciones como "1, 6 y 12".
func joinLocations(locations []string) string {
	switch len(locations) {
	case 0:
		return ""
	case 1:
		return locations[0]
	}
	return strings.Join(locations[:len(locations)-1], ", ") + " y " + locations[len(locations)-1]
}

var textColumns = map[string]func(Item) string{
	"code":        func(it Item) string { return it.Code },
	"description": func(it Item) string { return it.Description },
	"location":    func(it Item) string { return it.Location },
}

var numberColumns = map[string]func(Item) float64{
	"quantity":  func(it Item) float64 { return it.Quantity },
	"unitPrice": func(it Item) float64 { return it.UnitPrice },
	"amount":    func(it Item) float64 { return it.Quantity * it.UnitPrice },
}

// sortItems ordena en el lugar. Las columnas de texto comparan con
// colación española sin distinguir mayúsculas ni acentos; las numéricas
// comparan por valor. Una columna desconocida no ordena nada.
func sortItems(items []Item, column string, dir Direction) {
	asc := dir == Ascending

	if key, ok := textColumns[column]; ok {
		// collate.Collator no es seguro para uso concurrente, se crea uno
		// por render.
		c := collate.New(language.Spanish, collate.Loose)
		sort.SliceStable(items, func(i, j int) bool {
			cmp := c.CompareString(key(items[i]), key(items[j]))
			if asc {
				return cmp < 0
			}
			return cmp > 0
		})
		return
	}

	if key, ok := numberColumns[column]; ok {
		sort.SliceStable(items, func(i, j int) bool {
			if asc {
				return key(items[i]) < key(items[j])
			}
			return key(items[i]) > key(items[j])
		})
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
