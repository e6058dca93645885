package location_test

import (
	"context"
	"testing"
	"time"

	"geo-attend/internal/geo"
	"geo-attend/internal/location"
	locationerrors "geo-attend/internal/location/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_Lifecycle(t *testing.T) {
	tr := location.NewTracker(nil)

	snap := tr.Snapshot()
	assert.Nil(t, snap.Location)
	assert.False(t, snap.Watching)
	assert.False(t, snap.Locating)

	require.NoError(t, tr.Start())
	assert.True(t, tr.Snapshot().Locating)

	t.Run("only one watch at a time", func(t *testing.T) {
		assert.ErrorIs(t, tr.Start(), locationerrors.ErrWatchActive)
	})

	require.NoError(t, tr.Update(geo.Location{Latitude: 1, Longitude: 2}))
	snap = tr.Snapshot()
	require.NotNil(t, snap.Location)
	assert.Equal(t, geo.Location{Latitude: 1, Longitude: 2}, *snap.Location)
	assert.False(t, snap.Locating)
	assert.NotNil(t, snap.UpdatedAt)

	// the snapshot is a copy
	snap.Location.Latitude = 99
	assert.Equal(t, 1.0, tr.Snapshot().Location.Latitude)

	tr.Stop()
	snap = tr.Snapshot()
	assert.Nil(t, snap.Location)
	assert.False(t, snap.Watching)
	assert.Nil(t, snap.UpdatedAt)

	assert.ErrorIs(t, tr.Update(geo.Location{}), locationerrors.ErrNoActiveWatch)
	assert.NoError(t, tr.Start())
}

func TestTracker_Deny(t *testing.T) {
	t.Run("permission denied keeps the watch", func(t *testing.T) {
		tr := location.NewTracker(nil)
		require.NoError(t, tr.Start())

		tr.Deny(false)

		snap := tr.Snapshot()
		assert.Equal(t, location.MessageDenied, snap.Error)
		assert.True(t, snap.Watching)
		assert.False(t, snap.Locating)
		assert.Nil(t, snap.Location)

		require.NoError(t, tr.Update(geo.Location{Latitude: 3, Longitude: 4}))
		assert.Empty(t, tr.Snapshot().Error)
	})

	t.Run("unsupported ends the watch", func(t *testing.T) {
		tr := location.NewTracker(nil)
		require.NoError(t, tr.Start())

		tr.Deny(true)

		snap := tr.Snapshot()
		assert.Equal(t, location.MessageUnsupported, snap.Error)
		assert.False(t, snap.Watching)
	})
}

func TestTracker_Feed(t *testing.T) {
	tr := location.NewTracker(nil)
	ch := make(chan geo.Location, 3)
	ch <- geo.Location{Latitude: 1, Longitude: 1}
	ch <- geo.Location{Latitude: 2, Longitude: 2}
	close(ch)

	var seen []geo.Location
	err := tr.Feed(context.Background(), ch, func(loc geo.Location) {
		seen = append(seen, loc)
		assert.Equal(t, loc, *tr.Snapshot().Location)
	})

	require.NoError(t, err)
	assert.Len(t, seen, 2)
	assert.False(t, tr.Snapshot().Watching, "feed stops the watch when the channel closes")
}

func TestTracker_FeedStopsOnCancel(t *testing.T) {
	tr := location.NewTracker(nil)
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan geo.Location)

	done := make(chan error, 1)
	go func() { done <- tr.Feed(ctx, ch, nil) }()

	assert.Eventually(t, func() bool { return tr.Snapshot().Watching }, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, tr.Start(), locationerrors.ErrWatchActive)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("feed did not stop")
	}
	assert.False(t, tr.Snapshot().Watching)
}

func TestFixed(t *testing.T) {
	assert.Nil(t, location.Fixed(nil).Snapshot().Location)

	loc := &geo.Location{Latitude: 5, Longitude: 6}
	snap := location.Fixed(loc).Snapshot()
	require.NotNil(t, snap.Location)
	assert.Equal(t, *loc, *snap.Location)
}
