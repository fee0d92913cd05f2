// Package memory implementa los puertos de persistencia en memoria. Se usa en pruebas y en
// modo desarrollo sin base de datos; respeta las mismas reglas que el adaptador PostgreSQL:
// bloqueo por artículo, control de versión, unicidad de SKU y referencia, libro append-only.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/pos-tracker/internal/domain/entity"
)

// Store estado compartido de los repositorios en memoria.
type Store struct {
	mu          sync.RWMutex
	brands      map[string]*entity.Brand
	items       map[string]*entity.InventoryItem
	adjustments []*entity.InventoryAdjustment // orden de inserción
	users       map[string]*entity.User

	locksMu sync.Mutex
	locks   map[string]chan struct{}
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		brands: make(map[string]*entity.Brand),
		items:  make(map[string]*entity.InventoryItem),
		users:  make(map[string]*entity.User),
		locks:  make(map[string]chan struct{}),
	}
}

// lockItem equivale a SELECT ... FOR UPDATE: espera el candado del artículo o el fin de ctx.
func (s *Store) lockItem(ctx context.Context, id string) error {
	s.locksMu.Lock()
	ch, ok := s.locks[id]
	if !ok {
		ch = make(chan struct{}, 1)
		s.locks[id] = ch
	}
	s.locksMu.Unlock()

	select {
	case ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) unlockItem(id string) {
	s.locksMu.Lock()
	ch := s.locks[id]
	s.locksMu.Unlock()
	<-ch
}

func copyItem(it *entity.InventoryItem) *entity.InventoryItem {
	c := *it
	return &c
}

func copyAdjustment(a *entity.InventoryAdjustment) *entity.InventoryAdjustment {
	c := *a
	return &c
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// paginate recorta una lista ya ordenada.
func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
