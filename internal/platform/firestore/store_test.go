package firestore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pangolivas/gensemen-pro/internal/platform/docstore"
	"github.com/pangolivas/gensemen-pro/internal/platform/firestore"
)

// newEmulatorStore connects to the emulator named by FIRESTORE_EMULATOR_HOST,
// e.g. `gcloud emulators firestore start --host-port=localhost:8086`.
func newEmulatorStore(t *testing.T) *firestore.Store {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), firestore.Config{ProjectID: "gensemen-test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return firestore.NewStore(client)
}

func TestConfig_Database(t *testing.T) {
	assert.Equal(t, "(default)", firestore.Config{}.Database())
	assert.Equal(t, "tienda", firestore.Config{DatabaseID: "tienda"}.Database())
}

func TestNewClient_RequiresProject(t *testing.T) {
	_, err := firestore.NewClient(context.Background(), firestore.Config{})
	assert.Error(t, err)
}

func TestStore_GetRejectsPathLikeIDs(t *testing.T) {
	// Emulator mode connects lazily, so no server is needed for ids that never reach it.
	t.Setenv("FIRESTORE_EMULATOR_HOST", "localhost:1")
	client, err := firestore.NewClient(context.Background(), firestore.Config{ProjectID: "gensemen-test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	store := firestore.NewStore(client)

	for _, id := range []string{"a/b", "toros/1", ""} {
		_, err := store.Get(context.Background(), "inventario", id)
		assert.ErrorIs(t, err, docstore.ErrNotFound, "id %q", id)
	}
}

func TestStore_Emulator(t *testing.T) {
	store := newEmulatorStore(t)
	ctx := context.Background()
	collection := "pedidos_" + uuid.NewString()[:8]
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	for i, estado := range []string{"pendiente", "enviado", "pendiente"} {
		id, err := store.Create(ctx, collection, map[string]any{
			"estado":        estado,
			"fechaCreacion": base.Add(time.Duration(i) * time.Hour),
			"cliente":       map[string]any{"email": "ana@example.com"},
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	doc, err := store.Get(ctx, collection, ids[1])
	require.NoError(t, err)
	assert.Equal(t, "enviado", doc.Data["estado"])

	_, err = store.Get(ctx, collection, "missing")
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	docs, err := store.Query(ctx, docstore.Query{
		Collection: collection,
		OrderBy:    "fechaCreacion",
		Direction:  docstore.Desc,
		Limit:      2,
	}.Where("estado", docstore.OpEqual, "pendiente"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, ids[2], docs[0].ID)
	assert.Equal(t, ids[0], docs[1].ID)
}
