package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-wellness/internal/ports/storage"
)

type entry[T storage.Record] struct {
	seq uint64
	v   T
}

// Repo es un storage.Repository in-memory, usado en modo dev y en tests.
type Repo[T storage.Record] struct {
	mu   sync.RWMutex
	seq  uint64
	byID map[string]entry[T]
}

func NewRepo[T storage.Record]() *Repo[T] {
	return &Repo[T]{
		byID: make(map[string]entry[T]),
	}
}

// Seed carga registros iniciales; ignora duplicados.
func (r *Repo[T]) Seed(items ...T) *Repo[T] {
	for _, v := range items {
		_ = r.Create(context.Background(), v)
	}
	return r
}

func (r *Repo[T]) Create(ctx context.Context, v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := v.RecordID()
	if strings.TrimSpace(id) == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[id]; exists {
		return storage.ErrConflict
	}
	r.seq++
	r.byID[id] = entry[T]{seq: r.seq, v: v}
	return nil
}

func (r *Repo[T]) Update(ctx context.Context, v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := v.RecordID()
	current, exists := r.byID[id]
	if !exists {
		return storage.ErrNotFound
	}
	current.v = v
	r.byID[id] = current
	return nil
}

func (r *Repo[T]) GetByID(ctx context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		var zero T
		return zero, storage.ErrNotFound
	}
	return e.v, nil
}

func (r *Repo[T]) ListByScope(ctx context.Context, scope string) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]entry[T], 0)
	for _, e := range r.byID {
		if e.v.RecordScope() == scope {
			matches = append(matches, e)
		}
	}

	// Orden de inserción, estable entre llamadas.
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].seq < matches[j].seq
	})

	out := make([]T, 0, len(matches))
	for _, e := range matches {
		out = append(out, e.v)
	}
	return out, nil
}

func (r *Repo[T]) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
