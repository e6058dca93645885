package location

import (
	"context"
	"sync"
	"time"

	"geo-attend/internal/geo"
	locationerrors "geo-attend/internal/location/errors"

	"go.uber.org/zap"
)

const (
	MessageDenied      = "Location access denied. Please enable GPS."
	MessageUnsupported = "Geolocation is not supported by your browser."
)

// Snapshot is the tracker state at one instant. Location is nil until the
// first fix arrives.
type Snapshot struct {
	Location  *geo.Location `json:"location"`
	Watching  bool          `json:"watching"`
	Locating  bool          `json:"locating"`
	Error     string        `json:"error,omitempty"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

// Source provides the current position to consumers of the tracker.
type Source interface {
	Snapshot() Snapshot
}

// Tracker holds the latest fix of the single location watch. Only one
// watch may be active; a new one needs Stop first.
type Tracker struct {
	mu        sync.RWMutex
	current   *geo.Location
	watching  bool
	errMsg    string
	updatedAt time.Time
	now       func() time.Time
	logger    *zap.Logger
}

func NewTracker(logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{now: time.Now, logger: logger.Named("location.tracker")}
}

func (t *Tracker) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.watching {
		return locationerrors.ErrWatchActive
	}
	t.watching = true
	t.errMsg = ""
	t.logger.Info("location watch started")
	return nil
}

// Stop tears the watch down and forgets the last fix.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.watching = false
	t.current = nil
	t.errMsg = ""
	t.updatedAt = time.Time{}
	t.logger.Info("location watch stopped")
}

// Update records a new fix from the active watch.
func (t *Tracker) Update(loc geo.Location) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.watching {
		return locationerrors.ErrNoActiveWatch
	}
	t.current = &loc
	t.errMsg = ""
	t.updatedAt = t.now().UTC()
	return nil
}

// Deny records that the platform refused or lacks location access.
// Unsupported platforms have no watch at all.
func (t *Tracker) Deny(unsupported bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.errMsg = MessageDenied
	if unsupported {
		t.errMsg = MessageUnsupported
		t.watching = false
	}
	t.logger.Warn("location unavailable", zap.String("reason", t.errMsg))
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := Snapshot{
		Watching: t.watching,
		Locating: t.watching && t.current == nil && t.errMsg == "",
		Error:    t.errMsg,
	}
	if t.current != nil {
		loc := *t.current
		s.Location = &loc
	}
	if !t.updatedAt.IsZero() {
		ts := t.updatedAt
		s.UpdatedAt = &ts
	}
	return s
}

// Feed runs a watch over ch: every fix is applied and then passed to
// onFix (which may be nil). The watch stops when ctx ends or ch closes.
// It returns ErrWatchActive if another watch is running.
func (t *Tracker) Feed(ctx context.Context, ch <-chan geo.Location, onFix func(geo.Location)) error {
	if err := t.Start(); err != nil {
		return err
	}
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case loc, ok := <-ch:
			if !ok {
				return nil
			}
			if err := t.Update(loc); err != nil {
				return err
			}
			if onFix != nil {
				onFix(loc)
			}
		}
	}
}

type fixed struct {
	loc *geo.Location
}

// Fixed returns a Source that always reports loc. A nil loc reports no fix.
func Fixed(loc *geo.Location) Source {
	return fixed{loc: loc}
}

func (f fixed) Snapshot() Snapshot {
	if f.loc == nil {
		return Snapshot{}
	}
	loc := *f.loc
	return Snapshot{Location: &loc, Watching: true}
}
