package stock

import (
	"errors"
	"strings"
	"sync"

	"github.com/YoElDante/stock-ga-herramientas/internal/models"
)

// ErrRecordNotFound: el ID pedido no existe en el stock actual.
var ErrRecordNotFound = errors.New("producto no encontrado")

// ErrNoValidRecords: la importación no produjo ningún registro válido.
var ErrNoValidRecords = errors.New("el archivo no tiene registros válidos")

// RecordInput: campos parciales de un registro. Los punteros en nil
// significan "no enviado": en alta el campo toma su default, en edición
// conserva el valor existente.
type RecordInput struct {
	Code        *string  `json:"code"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"unitPrice"`
}

// Store es la colección viva de registros de la sesión. Toda mutación pasa
// por el mutex: un solo escritor lógico a la vez, sin updates perdidos
// entre requests concurrentes.
type Store struct {
	mu      sync.Mutex
	records []models.Record
}

// NewStore crea el store con la semilla dada (el último artefacto guardado,
// o nada si no existe ninguno).
func NewStore(seed []models.Record) *Store {
	s := &Store{}
	if len(seed) > 0 {
		s.records = append(s.records, seed...)
	}
	return s
}

// List devuelve una copia del stock actual en orden de inserción.
func (s *Store) List() []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Count devuelve la cantidad de registros actual.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Get busca un registro por ID.
func (s *Store) Get(id int) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Record{}, ErrRecordNotFound
}

// Add agrega un registro nuevo con ID = max(IDs existentes) + 1. Los campos
// no enviados toman default (texto vacío, numérico 0).
func (s *Store) Add(in RecordInput) models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := models.Record{
		ID:          s.maxIDLocked() + 1,
		Code:        trimOrEmpty(in.Code),
		Description: trimOrEmpty(in.Description),
		Location:    trimOrEmpty(in.Location),
		Quantity:    valueOrZero(in.Quantity),
		UnitPrice:   valueOrZero(in.UnitPrice),
	}
	r.RecomputeAmount()
	s.records = append(s.records, r)
	return r
}

// Update pisa solo los campos enviados y recalcula el importe.
func (s *Store) Update(id int, in RecordInput) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		r := &s.records[i]
		if in.Code != nil {
			r.Code = strings.TrimSpace(*in.Code)
		}
		if in.Description != nil {
			r.Description = strings.TrimSpace(*in.Description)
		}
		if in.Location != nil {
			r.Location = strings.TrimSpace(*in.Location)
		}
		if in.Quantity != nil {
			r.Quantity = *in.Quantity
		}
		if in.UnitPrice != nil {
			r.UnitPrice = *in.UnitPrice
		}
		r.RecomputeAmount()
		return *r, nil
	}
	return models.Record{}, ErrRecordNotFound
}

// Remove elimina y devuelve el registro eliminado.
func (s *Store) Remove(id int) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		removed := s.records[i]
		s.records = append(s.records[:i], s.records[i+1:]...)
		return removed, nil
	}
	return models.Record{}, ErrRecordNotFound
}

// BulkAppend agrega un lote importado al final, reasignando IDs que
// continúan desde el máximo actual y conservando el orden de entrada.
// Devuelve la cantidad agregada.
func (s *Store) BulkAppend(records []models.Record) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.maxIDLocked()
	for _, r := range records {
		next++
		r.ID = next
		s.records = append(s.records, r)
	}
	return len(records)
}

// BulkReplace descarta el stock actual e instala el lote tal como viene
// (con los IDs 1..N que ya asignó el validador). Devuelve la cantidad
// instalada.
func (s *Store) BulkReplace(records []models.Record) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]models.Record, len(records))
	copy(s.records, records)
	return len(s.records)
}

func (s *Store) maxIDLocked() int {
	max := 0
	for _, r := range s.records {
		if r.ID > max {
			max = r.ID
		}
	}
	return max
}

func trimOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func valueOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
