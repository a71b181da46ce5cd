package viewer

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/fgviewer/internal/ctxlog"
	"github.com/specialistvlad/fgviewer/internal/fginfo"
)

// ErrViewNotFound is returned when no snapshot is stored for a view.
var ErrViewNotFound = errors.New("view not found")

// Entry is the stored state of one view.
type Entry struct {
	View      string
	Revision  uuid.UUID
	Info      *fginfo.FrameGraphInfo
	UpdatedAt time.Time
}

// Store keeps the latest snapshot of each view. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	metrics *Metrics
	now     func() time.Time
}

// NewStore creates an empty store. metrics may be nil.
func NewStore(metrics *Metrics) *Store {
	return &Store{
		entries: make(map[string]Entry),
		metrics: metrics,
		now:     time.Now,
	}
}

// Update hands info to the store, which takes ownership of it. If the view
// already holds an equal snapshot the stored entry is kept as is, including its
// graphviz text, and changed is false. Otherwise info becomes the view's
// snapshot under a new revision.
func (s *Store) Update(ctx context.Context, info *fginfo.FrameGraphInfo) (entry Entry, changed bool) {
	logger := ctxlog.FromContext(ctx)
	view := info.ViewName()

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, exists := s.entries[view]
	if exists && prev.Info.Equal(info) {
		s.metrics.observeUpdate(resultUnchanged, len(s.entries))
		logger.Debug("Snapshot unchanged, keeping revision.", "view", view, "revision", prev.Revision)
		return prev, false
	}

	entry = Entry{
		View:      view,
		Revision:  uuid.New(),
		Info:      info,
		UpdatedAt: s.now(),
	}
	s.entries[view] = entry

	result := resultChanged
	if !exists {
		result = resultNew
	}
	s.metrics.observeUpdate(result, len(s.entries))
	logger.Debug("Snapshot stored.", "view", view, "revision", entry.Revision, "result", result, "passes", len(info.Passes()), "resources", len(info.Resources()))
	return entry, true
}

// Get returns the entry of a view.
func (s *Store) Get(view string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[view]
	if !ok {
		return Entry{}, ErrViewNotFound
	}
	return entry, nil
}

// Views returns every entry, sorted by view name.
func (s *Store) Views() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].View < entries[j].View })
	return entries
}

// Remove drops a view and reports whether it was present.
func (s *Store) Remove(view string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[view]; !ok {
		return false
	}
	delete(s.entries, view)
	s.metrics.observeViews(len(s.entries))
	return true
}
