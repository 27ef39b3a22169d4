package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Defaults for the persisted history.
const (
	DefaultKey = "colorGameHistory"
	MaxRecords = 50
)

// Store ranks, trims and persists score records.
type Store struct {
	backend Backend
	key     string
	limit   int
	now     func() time.Time
	logger  *log.Logger

	// mu serializes read-modify-write cycles when one Store is shared
	// between SSH sessions.
	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithKey sets the storage key the history is kept under.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLimit sets how many records are kept after each save.
// The limit never exceeds MaxRecords.
func WithLimit(limit int) Option {
	return func(s *Store) {
		if limit > 0 {
			s.limit = min(limit, MaxRecords)
		}
	}
}

// WithClock sets the time source used to stamp undated records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used to report storage problems.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a history store on top of backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     DefaultKey,
		limit:   MaxRecords,
		now:     time.Now,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key in use.
func (s *Store) Key() string {
	return s.key
}

// Save adds rec to the history, re-ranks it and trims it to the limit.
// Ineligible records (zero score, no name or no level) are ignored and
// Save reports false.
func (s *Store) Save(ctx context.Context, rec Record) (bool, error) {
	if !rec.Eligible() {
		return false, nil
	}
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := append(s.load(ctx), rec)
	Sort(records)
	if len(records) > s.limit {
		records = records[:s.limit]
	}

	data, err := json.Marshal(records)
	if err != nil {
		return false, fmt.Errorf("history: cannot encode records: %w", err)
	}
	if err := s.backend.Set(ctx, s.key, string(data)); err != nil {
		return false, fmt.Errorf("history: cannot persist records: %w", err)
	}

	s.logger.Debug("score saved",
		"player", rec.PlayerName,
		"level", rec.Level,
		"score", rec.Score,
		"records", len(records),
	)
	return true, nil
}

// Load returns the ranked history. A missing, unreadable or corrupt
// history is returned as empty.
func (s *Store) Load(ctx context.Context) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Clear deletes the whole history.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("history: cannot clear records: %w", err)
	}
	s.logger.Info("history cleared", "key", s.key)
	return nil
}

func (s *Store) load(ctx context.Context) []Record {
	raw, ok, err := s.backend.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("cannot read history, treating as empty", "key", s.key, "error", err)
		return []Record{}
	}
	if !ok || raw == "" {
		return []Record{}
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.Warn("corrupt history, treating as empty", "key", s.key, "error", err)
		return []Record{}
	}
	if records == nil {
		return []Record{}
	}

	// Stored data may have been written by something else; rank it again.
	Sort(records)
	return records
}
