package docstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pangolivas/gensemen-pro/internal/platform/docstore"
	"github.com/pangolivas/gensemen-pro/internal/platform/docstore/memory"
)

type observation struct {
	op, collection string
	err            error
}

type mockRecorder struct {
	observations []observation
}

func (m *mockRecorder) ObserveStoreOperation(op, collection string, err error, d time.Duration) {
	m.observations = append(m.observations, observation{op: op, collection: collection, err: err})
}

type failingStore struct {
	docstore.Store
	err error
}

func (f failingStore) Query(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	return nil, f.err
}

func TestInstrument_RecordsOperations(t *testing.T) {
	rec := &mockRecorder{}
	mem := memory.New()
	store := docstore.Instrument(mem, rec, nil)
	ctx := context.Background()

	id, err := store.Create(ctx, "pedidos", map[string]any{"total": 10.0})
	require.NoError(t, err)

	_, err = store.Get(ctx, "pedidos", id)
	require.NoError(t, err)

	_, err = store.Get(ctx, "pedidos", "missing")
	require.ErrorIs(t, err, docstore.ErrNotFound)

	require.Len(t, rec.observations, 3)
	assert.Equal(t, observation{op: "create", collection: "pedidos"}, rec.observations[0])
	assert.Equal(t, observation{op: "get", collection: "pedidos"}, rec.observations[1])
	assert.NoError(t, rec.observations[2].err, "not found is not a failed call")
}

func TestInstrument_PropagatesErrors(t *testing.T) {
	boom := errors.New("unavailable")
	rec := &mockRecorder{}
	store := docstore.Instrument(failingStore{Store: memory.New(), err: boom}, rec, nil)

	_, err := store.Query(context.Background(), docstore.Query{Collection: "toros"})
	assert.ErrorIs(t, err, boom)
	require.Len(t, rec.observations, 1)
	assert.ErrorIs(t, rec.observations[0].err, boom)
}

func TestQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   docstore.Query
		wantErr bool
	}{
		{"ok", docstore.Query{Collection: "pedidos", OrderBy: "fechaCreacion"}.Where("cliente.email", docstore.OpEqual, "a@b.c"), false},
		{"no collection", docstore.Query{}, true},
		{"bad op", docstore.Query{Collection: "x", Filters: []docstore.Filter{{Field: "a", Op: "!=", Value: 1}}}, true},
		{"bad order by", docstore.Query{Collection: "x", OrderBy: "a b"}, true},
		{"negative limit", docstore.Query{Collection: "x", Limit: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, docstore.ErrInvalidQuery)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	data := map[string]any{
		"dosis":            int64(4),
		"disponibleTienda": true,
		"cliente":          map[string]any{"email": "ana@example.com"},
	}

	assert.True(t, docstore.Match(data, docstore.Filter{Field: "dosis", Op: docstore.OpGreaterEqual, Value: 4}))
	assert.False(t, docstore.Match(data, docstore.Filter{Field: "dosis", Op: docstore.OpGreater, Value: 4.0}))
	assert.True(t, docstore.Match(data, docstore.Filter{Field: "disponibleTienda", Op: docstore.OpEqual, Value: true}))
	assert.True(t, docstore.Match(data, docstore.Filter{Field: "cliente.email", Op: docstore.OpEqual, Value: "ana@example.com"}))
	assert.False(t, docstore.Match(data, docstore.Filter{Field: "dosis", Op: docstore.OpEqual, Value: "4"}))
	assert.False(t, docstore.Match(data, docstore.Filter{Field: "missing", Op: docstore.OpEqual, Value: 1}))
}
