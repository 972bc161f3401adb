package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pangolivas/gensemen-pro/internal/platform/docstore"
	"github.com/pangolivas/gensemen-pro/internal/platform/docstore/memory"
)

func TestStore_CreateAndGet(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	id, err := s.Create(ctx, "pedidos", map[string]any{"estado": "pendiente"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := s.Get(ctx, "pedidos", id)
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "pendiente", doc.Data["estado"])
}

func TestStore_GetNotFound(t *testing.T) {
	s := memory.New()
	_, err := s.Get(context.Background(), "pedidos", "missing")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	s.Put("gensemen", "toros", map[string]any{
		"data": []any{map[string]any{"nombre": "Zeus"}},
	})

	doc, err := s.Get(ctx, "gensemen", "toros")
	require.NoError(t, err)
	doc.Data["data"].([]any)[0].(map[string]any)["nombre"] = "changed"

	again, err := s.Get(ctx, "gensemen", "toros")
	require.NoError(t, err)
	assert.Equal(t, "Zeus", again.Data["data"].([]any)[0].(map[string]any)["nombre"])
}

func TestStore_QueryFiltersOrderAndLimit(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	s.Put("pedidos", "a", map[string]any{"estado": "pendiente", "fechaCreacion": base, "cliente": map[string]any{"email": "ana@example.com"}})
	s.Put("pedidos", "b", map[string]any{"estado": "enviado", "fechaCreacion": base.Add(time.Hour), "cliente": map[string]any{"email": "ana@example.com"}})
	s.Put("pedidos", "c", map[string]any{"estado": "pendiente", "fechaCreacion": base.Add(2 * time.Hour), "cliente": map[string]any{"email": "luis@example.com"}})
	s.Put("pedidos", "d", map[string]any{"estado": "pendiente"})

	q := docstore.Query{Collection: "pedidos", OrderBy: "fechaCreacion", Direction: docstore.Desc}

	docs, err := s.Query(ctx, q.Where("estado", docstore.OpEqual, "pendiente"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "c", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)

	docs, err = s.Query(ctx, q.Where("cliente.email", docstore.OpEqual, "ana@example.com"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].ID)

	q.Limit = 1
	docs, err = s.Query(ctx, q)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "c", docs[0].ID)
}

func TestStore_QueryNumericComparison(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	s.Put("inventario", "x", map[string]any{"dosis": int64(0)})
	s.Put("inventario", "y", map[string]any{"dosis": 3.0})
	s.Put("inventario", "z", map[string]any{"dosis": 10})

	docs, err := s.Query(ctx, docstore.Query{Collection: "inventario"}.Where("dosis", docstore.OpGreaterEqual, 1))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "y", docs[0].ID)
	assert.Equal(t, "z", docs[1].ID)
}

func TestStore_QueryRejectsInvalidField(t *testing.T) {
	s := memory.New()
	_, err := s.Query(context.Background(), docstore.Query{Collection: "toros"}.Where("a'; DROP", docstore.OpEqual, 1))
	assert.ErrorIs(t, err, docstore.ErrInvalidQuery)
}
