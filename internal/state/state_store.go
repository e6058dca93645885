package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"geo-attend/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Store reads and writes the whole UserState under one key. Every
// mutation re-reads the stored document, applies the change and writes
// the full document back.
//
// Mutations are serialized within the process. Separate processes sharing
// a backend still race and the last write wins.
type Store struct {
	backend Backend
	key     string
	logger  *zap.Logger
	mu      sync.Mutex
}

func NewStore(backend Backend, key string, logger *zap.Logger) *Store {
	if key == "" {
		key = StorageKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{backend: backend, key: key, logger: logger.Named("state.store")}
}

func (s *Store) Key() string {
	return s.key
}

// Load returns the stored state, or the default state when nothing is
// stored. A document that does not parse is treated as absent.
func (s *Store) Load(ctx context.Context) (UserState, error) {
	return s.load(ctx)
}

// SaveOffice replaces the office config and marks the state configured.
// History is left untouched.
func (s *Store) SaveOffice(ctx context.Context, office OfficeConfig) (UserState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return UserState{}, err
	}

	st.Office = &office
	st.IsConfigured = true

	if err := s.persist(ctx, st); err != nil {
		return UserState{}, err
	}
	return st, nil
}

// AddRecord prepends record to the history. The caller owns the id,
// timestamp, type and isAuto of the record.
func (s *Store) AddRecord(ctx context.Context, record AttendanceRecord) (UserState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return UserState{}, err
	}

	history := make([]AttendanceRecord, 0, len(st.History)+1)
	history = append(history, record)
	st.History = append(history, st.History...)

	if err := s.persist(ctx, st); err != nil {
		return UserState{}, err
	}
	return st, nil
}

// Reset deletes the stored document.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("delete state: %w", err)
	}
	return nil
}

func (s *Store) load(ctx context.Context) (UserState, error) {
	raw, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return DefaultState(), nil
	}
	if err != nil {
		return UserState{}, fmt.Errorf("read state: %w", err)
	}

	var st UserState
	if err := json.Unmarshal(raw, &st); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("stored state is unreadable, falling back to default state",
			zap.String("key", s.key),
			zap.Int("bytes", len(raw)),
			zap.Error(err),
		)
		return DefaultState(), nil
	}
	return st.normalized(), nil
}

func (s *Store) persist(ctx context.Context, st UserState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.backend.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}
