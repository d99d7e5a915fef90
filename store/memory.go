package store

import (
	"context"
	"sync"
	"time"
)

// Memory is the in-memory backend, the direct counterpart of the mock
// record store. A mutex guards each collection so that every operation
// is atomic with respect to the records it owns.
type Memory[T any] struct {
	desc Descriptor[T]

	mu      sync.RWMutex
	records []T
	lastID  int
}

func NewMemory[T any](desc Descriptor[T]) *Memory[T] {
	return &Memory[T]{desc: desc}
}

// List returns copies of all records in insertion order.
func (m *Memory[T]) List(ctx context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.records))
	for _, rec := range m.records {
		c, err := clone(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *Memory[T]) Get(ctx context.Context, id int) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.records {
		if m.desc.ID(rec) == id {
			return clone(rec)
		}
	}
	var zero T
	return zero, notFound(m.desc.Entity, id)
}

func (m *Memory[T]) Create(ctx context.Context, fields map[string]any) (T, error) {
	rec, err := decode[T](stripID(fields))
	if err != nil {
		var zero T
		return zero, err
	}

	m.mu.Lock()
	// lastID only grows, so ids are never reused within a process
	// lifetime even after the highest record is deleted.
	m.lastID++
	m.desc.SetID(&rec, m.lastID)
	m.desc.Stamp(&rec, time.Now().UTC())
	m.records = append(m.records, rec)
	m.mu.Unlock()

	return clone(rec)
}

func (m *Memory[T]) Update(ctx context.Context, id int, patch map[string]any) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, rec := range m.records {
		if m.desc.ID(rec) != id {
			continue
		}
		merged, err := merge(m.desc, rec, patch)
		if err != nil {
			var zero T
			return zero, err
		}
		m.records[i] = merged
		return clone(merged)
	}
	var zero T
	return zero, notFound(m.desc.Entity, id)
}

func (m *Memory[T]) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, rec := range m.records {
		if m.desc.ID(rec) == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return notFound(m.desc.Entity, id)
}
