// repository/store.go
package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"restaurant-backend/pkg/logger"
)

// Entity is the identity contract every stored type must satisfy at
// compile time.
type Entity interface {
	EntityID() uuid.UUID
}

// FileStore keeps one collection in memory and mirrors it to a single
// JSON document, rewritten in full on every mutation (write-through).
// A missing, unreadable or corrupt file degrades to an empty collection
// at load time; it is logged, never fatal.
type FileStore[T Entity] struct {
	path  string
	mu    sync.RWMutex
	items []T
}

func NewFileStore[T Entity](dir, fileName string) (*FileStore[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &FileStore[T]{path: filepath.Join(dir, fileName)}
	s.items = s.load()
	return s, nil
}

// GetAll returns a copy of the collection in insertion order.
func (s *FileStore[T]) GetAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *FileStore[T]) GetByID(id uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (s *FileStore[T]) Add(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return s.save()
}

// Update replaces the record with the same id in place; a missing id is a
// no-op, not an error.
func (s *FileStore[T]) Update(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.EntityID() == item.EntityID() {
			s.items[i] = item
			return s.save()
		}
	}
	return nil
}

// Delete removes the record with the given id; a missing id is a no-op.
func (s *FileStore[T]) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.save()
		}
	}
	return nil
}

func (s *FileStore[T]) save() error {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *FileStore[T]) load() []T {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warn("store file unreadable, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return []T{}
	}
	if len(data) == 0 {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Log.Warn("store file corrupt, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}
