package jsonstore_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"courierdesk/internal/adapters/out/jsonstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *jsonstore.Store {
	t.Helper()
	store, err := jsonstore.NewStore(filepath.Join(t.TempDir(), "data", "BaseDeDatos.json"), discardLogger())
	require.NoError(t, err)
	return store
}

func writeDocument(t *testing.T, store *jsonstore.Store, doc string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(doc), 0o600))
}

func TestNewStore_EmptyPath(t *testing.T) {
	_, err := jsonstore.NewStore("", discardLogger())
	require.ErrorIs(t, err, jsonstore.ErrSnapshotIO)
}

func TestStore_Load_MissingFileIsEmpty(t *testing.T) {
	store := newTestStore(t)

	snap, err := store.Load(testContext(t))

	require.NoError(t, err)
	assert.Empty(t, snap.Users)
	assert.NotNil(t, snap.Users)
	assert.NotNil(t, snap.Couriers)
	assert.NotNil(t, snap.Orders)
	assert.NotNil(t, snap.Clients)
	assert.NotNil(t, snap.History)
}

func TestStore_Load_NullCollectionsAreEmpty(t *testing.T) {
	store := newTestStore(t)
	writeDocument(t, store, `{"usuarios": null, "pedido": [], "historial": null}`)

	snap, err := store.Load(testContext(t))

	require.NoError(t, err)
	assert.NotNil(t, snap.Users)
	assert.NotNil(t, snap.Couriers)
	assert.Empty(t, snap.History)
}

func TestStore_Load_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"broken json", `{"usuarios": [`},
		{"wrong shape", `{"usuarios": {"cedula": "1"}}`},
		{"bad date", `{"pedido": [{"idPedido": "PED1", "fechaCreacion": "2025-05-10T10:00:00Z"}]}`},
		{"date not a string", `{"historial": [{"idHistorial": "H1", "fechaRegistro": 12}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			writeDocument(t, store, tt.doc)

			_, err := store.Load(testContext(t))

			require.ErrorIs(t, err, jsonstore.ErrSnapshotMalformed)
		})
	}
}

func TestStore_Load_Unreadable(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(store.Path(), 0o755))

	_, err := store.Load(testContext(t))

	require.ErrorIs(t, err, jsonstore.ErrSnapshotIO)
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	created := time.Date(2025, 5, 10, 9, 15, 0, 0, time.Local)
	courierID := "87654321"

	in := jsonstore.Snapshot{
		Users: []jsonstore.UserDTO{{NationalID: "1", Password: "x", Role: "admin"}},
		Orders: []jsonstore.OrderDTO{{
			ID:        "PED-1",
			ClientID:  "12345678",
			CourierID: &courierID,
			Combo:     "PARA4",
			Status:    "Pendiente",
			CreatedAt: &jsonstore.DateTime{Time: created},
			Total:     12,
		}},
	}
	require.NoError(t, store.Save(testContext(t), in))

	out, err := store.Load(testContext(t))
	require.NoError(t, err)

	require.Len(t, out.Orders, 1)
	got := out.Orders[0]
	assert.Equal(t, "PED-1", got.ID)
	require.NotNil(t, got.CourierID)
	assert.Equal(t, courierID, *got.CourierID)
	require.NotNil(t, got.CreatedAt)
	assert.True(t, created.Equal(got.CreatedAt.Time))
	assert.Nil(t, got.DeliveredAt)
	assert.Equal(t, in.Users, out.Users)
	assert.Empty(t, out.Clients)
}

func TestStore_Save_DocumentFormat(t *testing.T) {
	store := newTestStore(t)
	created := time.Date(2025, 5, 10, 9, 15, 42, 0, time.Local)

	require.NoError(t, store.Save(testContext(t), jsonstore.Snapshot{
		Orders: []jsonstore.OrderDTO{{ID: "PED-1", CreatedAt: &jsonstore.DateTime{Time: created}}},
	}))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	doc := string(raw)

	assert.Contains(t, doc, "\n  \"usuarios\": []")
	assert.Contains(t, doc, `"fechaCreacion": "10/05/2025 09:15"`)
	assert.Contains(t, doc, `"fechaEntrega": null`)
	assert.Contains(t, doc, `"idRepartidor": null`)

	var generic map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &generic))
	for _, key := range []string{"usuarios", "repartidor", "pedido", "cliente", "historial"} {
		assert.Contains(t, generic, key)
	}
}

func TestStore_Save_LeavesNoTemporaryFiles(t *testing.T) {
	store := newTestStore(t)

	for n := 0; n < 3; n++ {
		require.NoError(t, store.Save(testContext(t), jsonstore.Snapshot{}))
	}

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, strings.HasSuffix(entries[0].Name(), ".tmp"))
}

func TestStore_Update(t *testing.T) {
	store := newTestStore(t)

	err := store.Update(testContext(t), func(s *jsonstore.Snapshot) error {
		s.Clients = append(s.Clients, jsonstore.ClientDTO{NationalID: "12345678", Name: "Ana"})
		return nil
	})
	require.NoError(t, err)

	err = store.Update(testContext(t), func(s *jsonstore.Snapshot) error {
		s.Clients = nil
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	snap, err := store.Load(testContext(t))
	require.NoError(t, err)
	require.Len(t, snap.Clients, 1)
	assert.Equal(t, "Ana", snap.Clients[0].Name)
}

func TestStore_CanceledContext(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Save(ctx, jsonstore.Snapshot{}), context.Canceled)
}
