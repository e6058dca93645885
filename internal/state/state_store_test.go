package state_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"geo-attend/internal/geo"
	"geo-attend/internal/state"
	stateMock "geo-attend/internal/state/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRecord(id string, typ state.RecordType) state.AttendanceRecord {
	return state.AttendanceRecord{
		ID:        id,
		Timestamp: "2025-03-01T08:00:00.000Z",
		Type:      typ,
		Location:  geo.Location{Latitude: 37.7749, Longitude: -122.4194},
	}
}

func sampleOffice() state.OfficeConfig {
	return state.OfficeConfig{
		Name:     "Main HQ",
		Address:  "1 Market St, San Francisco",
		Location: geo.Location{Latitude: 37.7936, Longitude: -122.3950},
		Radius:   200,
	}
}

func TestStore_LoadDefault(t *testing.T) {
	store := state.NewStore(state.NewMemoryBackend(), "", nil)

	st, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.False(t, st.IsConfigured)
	assert.Nil(t, st.Office)
	assert.NotNil(t, st.History)
	assert.Empty(t, st.History)
	assert.Equal(t, state.StorageKey, store.Key())
}

func TestStore_AddRecordPrepends(t *testing.T) {
	ctx := context.Background()
	store := state.NewStore(state.NewMemoryBackend(), "", nil)

	r1 := newRecord("r1", state.RecordIn)
	r2 := newRecord("r2", state.RecordOut)

	_, err := store.AddRecord(ctx, r1)
	require.NoError(t, err)
	_, err = store.AddRecord(ctx, r2)
	require.NoError(t, err)

	st, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, st.History, 2)
	assert.Equal(t, r2, st.History[0])
	assert.Equal(t, r1, st.History[1])
}

func TestStore_SaveOfficeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := state.NewStore(state.NewMemoryBackend(), "", nil)

	_, err := store.AddRecord(ctx, newRecord("r1", state.RecordIn))
	require.NoError(t, err)

	office := sampleOffice()
	_, err = store.SaveOffice(ctx, office)
	require.NoError(t, err)

	st, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, st.IsConfigured)
	require.NotNil(t, st.Office)
	assert.Equal(t, office, *st.Office)
	require.Len(t, st.History, 1)
	assert.Equal(t, "r1", st.History[0].ID)

	t.Run("resave replaces the office", func(t *testing.T) {
		other := sampleOffice()
		other.Name = "Annex"
		other.Radius = 50

		_, err := store.SaveOffice(ctx, other)
		require.NoError(t, err)

		st, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, other, *st.Office)
		assert.Len(t, st.History, 1)
	})
}

func TestStore_Reset(t *testing.T) {
	ctx := context.Background()
	backend := state.NewMemoryBackend()
	store := state.NewStore(backend, "", nil)

	_, err := store.SaveOffice(ctx, sampleOffice())
	require.NoError(t, err)

	require.NoError(t, store.Reset(ctx))

	_, err = backend.Get(ctx, state.StorageKey)
	assert.ErrorIs(t, err, state.ErrNotFound)

	st, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.DefaultState(), st)
}

func TestStore_LoadsBrowserDocument(t *testing.T) {
	ctx := context.Background()
	backend := state.NewMemoryBackend()
	doc := `{"isConfigured":true,"office":{"name":"HQ","location":{"latitude":1.5,"longitude":2.5},"address":"HQ street","radius":150},` +
		`"history":[{"id":"b","timestamp":"2025-03-01T17:00:00.000Z","type":"OUT","location":{"latitude":1.5,"longitude":2.5},"isAuto":false},` +
		`{"id":"a","timestamp":"2025-03-01T08:00:00.000Z","type":"IN","location":{"latitude":1.5,"longitude":2.5},"isAuto":false}]}`
	require.NoError(t, backend.Set(ctx, state.StorageKey, []byte(doc)))

	st, err := state.NewStore(backend, "", nil).Load(ctx)

	require.NoError(t, err)
	assert.True(t, st.IsConfigured)
	assert.Equal(t, 150.0, st.Office.Radius)
	require.Len(t, st.History, 2)
	assert.Equal(t, state.RecordOut, st.History[0].Type)
	assert.Equal(t, 17, st.History[0].Time().Hour())
}

func TestStore_UnreadableDocumentFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	backend := state.NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, state.StorageKey, []byte("{not json")))
	store := state.NewStore(backend, "", nil)

	st, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.DefaultState(), st)

	// the next mutation overwrites the corrupt document
	_, err = store.AddRecord(ctx, newRecord("r1", state.RecordIn))
	require.NoError(t, err)
	st, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, st.History, 1)
}

func TestStore_NormalizesInconsistentDocument(t *testing.T) {
	ctx := context.Background()
	backend := state.NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, state.StorageKey, []byte(`{"isConfigured":true,"office":null,"history":null}`)))

	st, err := state.NewStore(backend, "", nil).Load(ctx)

	require.NoError(t, err)
	assert.False(t, st.IsConfigured)
	assert.NotNil(t, st.History)
}

func TestStore_BackendErrors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := stateMock.NewMockBackend(ctrl)
	store := state.NewStore(backend, "custom_key", nil)
	boom := errors.New("connection refused")

	t.Run("read error propagates", func(t *testing.T) {
		backend.EXPECT().Get(gomock.Any(), "custom_key").Return(nil, boom)

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("write error propagates", func(t *testing.T) {
		backend.EXPECT().Get(gomock.Any(), "custom_key").Return(nil, state.ErrNotFound)
		backend.EXPECT().Set(gomock.Any(), "custom_key", gomock.Any()).Return(boom)

		_, err := store.AddRecord(ctx, newRecord("r1", state.RecordIn))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("mutation does not write when read fails", func(t *testing.T) {
		backend.EXPECT().Get(gomock.Any(), "custom_key").Return(nil, boom)
		backend.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := store.SaveOffice(ctx, sampleOffice())
		assert.Error(t, err)
	})

	t.Run("delete error propagates", func(t *testing.T) {
		backend.EXPECT().Delete(gomock.Any(), "custom_key").Return(boom)

		assert.ErrorIs(t, store.Reset(ctx), boom)
	})
}

func TestStore_ConcurrentAddRecordKeepsEveryRecord(t *testing.T) {
	ctx := context.Background()
	store := state.NewStore(state.NewMemoryBackend(), "", nil)

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.AddRecord(ctx, newRecord(string(rune('a'+i)), state.RecordIn))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	st, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, st.History, n)
}
