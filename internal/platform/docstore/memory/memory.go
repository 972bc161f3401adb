// Package memory implements docstore.Store in process memory.
// It backs tests and the "memory" store driver for local development.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pangolivas/gensemen-pro/internal/platform/docstore"
)

// Store implements docstore.Store using in-memory maps.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
}

func New() *Store {
	return &Store{
		collections: make(map[string]map[string]map[string]any),
	}
}

// Put stores data under an explicit id, replacing any existing document.
func (s *Store) Put(collection, id string, data map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(collection, id, data)
}

func (s *Store) put(collection, id string, data map[string]any) {
	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string]map[string]any)
		s.collections[collection] = docs
	}
	docs[id] = copyMap(data)
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return docstore.Document{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return docstore.Document{}, docstore.ErrNotFound
	}
	return docstore.Document{ID: id, Data: copyMap(data)}, nil
}

func (s *Store) Query(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []docstore.Document
	for id, data := range s.collections[q.Collection] {
		if !matchesAll(data, q.Filters) {
			continue
		}
		if q.OrderBy != "" {
			if _, ok := docstore.Lookup(data, q.OrderBy); !ok {
				continue
			}
		}
		docs = append(docs, docstore.Document{ID: id, Data: copyMap(data)})
	}

	slices.SortFunc(docs, func(a, b docstore.Document) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})

	if q.OrderBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			vi, _ := docstore.Lookup(docs[i].Data, q.OrderBy)
			vj, _ := docstore.Lookup(docs[j].Data, q.OrderBy)
			c, _ := docstore.Compare(vi, vj)
			if q.Direction == docstore.Desc {
				return c > 0
			}
			return c < 0
		})
	}

	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

func (s *Store) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.put(collection, id, data)
	return id, nil
}

func matchesAll(data map[string]any, filters []docstore.Filter) bool {
	for _, f := range filters {
		if !docstore.Match(data, f) {
			return false
		}
	}
	return true
}

func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return copyMap(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = copyValue(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = copyMap(e)
		}
		return out
	default:
		return v
	}
}

// Compile-time interface check.
var _ docstore.Store = (*Store)(nil)
