package journal

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"ibelong/models"
	"ibelong/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewDefaultJournalService builds the store. debounce <= 0 falls back to
// DefaultDebounce.
func NewDefaultJournalService(store storage.Store, logger *zap.Logger, debounce time.Duration) *DefaultJournalService {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &DefaultJournalService{
		Store:    store,
		Logger:   logger,
		Debounce: debounce,
	}
}

func (s *DefaultJournalService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultJournalService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// loadEntries decodes the durable collection. Corruption or a read failure
// reads as empty; this store never fails the editing flow over storage.
func (s *DefaultJournalService) loadEntries(ctx context.Context) []models.UnloadEntry {
	raw, err := s.Store.Get(ctx, StorageKey)
	if err != nil {
		if err != storage.ErrNotFound {
			s.Logger.Warn("journal read failed, starting empty", zap.Error(err))
		}
		return nil
	}
	var list []models.UnloadEntry
	if err := json.Unmarshal(raw, &list); err != nil {
		s.Logger.Warn("journal data corrupt, starting empty", zap.Error(err))
		return nil
	}
	return list
}

// saveEntries persists the collection best-effort. A failed write is logged
// and swallowed; the in-memory state stays authoritative for this run.
func (s *DefaultJournalService) saveEntries(ctx context.Context, entries []models.UnloadEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		s.Logger.Warn("journal encode failed, skipping save", zap.Error(err))
		return
	}
	if err := s.Store.Set(ctx, StorageKey, raw); err != nil {
		s.Logger.Warn("journal save failed", zap.Error(err))
	}
}

func sortByUpdatedDesc(entries []models.UnloadEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].UpdatedAt.After(entries[j].UpdatedAt)
	})
}

// Load reads the collection, sorts it newest-first, and adopts the most
// recent entry as active only if nothing is active yet.
func (s *DefaultJournalService) Load(ctx context.Context) {
	list := s.loadEntries(ctx)
	sortByUpdatedDesc(list)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = list
	if len(list) > 0 && s.active == nil {
		entry := list[0]
		s.active = &entry
		s.content = entry.Content
	}
	s.loaded = true
}

// SetContent applies a keystroke. The in-memory content always updates
// immediately. When no entry is active and the content is non-blank, an
// entry is created and persisted at once so an id exists before the debounce
// fires. Each call restarts the single autosave timer.
func (s *DefaultJournalService) SetContent(ctx context.Context, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return
	}
	s.content = content

	if s.active == nil {
		if strings.TrimSpace(content) == "" {
			return
		}
		now := s.now()
		entry := models.UnloadEntry{
			ID:        s.newID(),
			CreatedAt: now,
			UpdatedAt: now,
			Content:   content,
		}
		s.active = &entry
		s.entries = append([]models.UnloadEntry{entry}, s.entries...)
		s.saveEntries(ctx, s.entries)
	}

	s.scheduleSaveLocked()
}

// scheduleSaveLocked restarts the debounce timer. At most one timer exists;
// scheduling cancels any previous handle first.
func (s *DefaultJournalService) scheduleSaveLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.Debounce, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.timer = nil
		s.persistActiveLocked(context.Background())
	})
}

// persistActiveLocked writes the active entry's current content with a fresh
// update timestamp and re-sorts the collection.
func (s *DefaultJournalService) persistActiveLocked(ctx context.Context) {
	if s.active == nil {
		return
	}
	updated := *s.active
	updated.Content = s.content
	updated.UpdatedAt = s.now()

	next := make([]models.UnloadEntry, 0, len(s.entries)+1)
	next = append(next, updated)
	for _, e := range s.entries {
		if e.ID != updated.ID {
			next = append(next, e)
		}
	}
	sortByUpdatedDesc(next)
	s.entries = next
	s.active = &updated
	s.saveEntries(ctx, next)
}

// flushLocked cancels the pending timer and persists unsaved non-blank
// content synchronously.
func (s *DefaultJournalService) flushLocked(ctx context.Context) {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.active != nil && strings.TrimSpace(s.content) != "" {
		s.persistActiveLocked(ctx)
	}
}

// Flush persists unsaved content before the caller navigates away.
func (s *DefaultJournalService) Flush(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked(ctx)
}

// NewEntry flushes the current entry, then switches to a fresh empty one.
// The fresh entry joins the durable collection on its first autosave.
func (s *DefaultJournalService) NewEntry(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked(ctx)

	now := s.now()
	entry := models.UnloadEntry{
		ID:        s.newID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.active = &entry
	s.content = ""
	s.deletePending = false
}

// Open makes a past entry active and loads its content into the editor.
func (s *DefaultJournalService) Open(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			if s.timer != nil {
				s.timer.Stop()
				s.timer = nil
			}
			entry := e
			s.active = &entry
			s.content = entry.Content
			s.deletePending = false
			return true
		}
	}
	return false
}

// RequestDelete is the first step of deletion; it only arms when the active
// entry is part of the durable collection.
func (s *DefaultJournalService) RequestDelete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return false
	}
	for _, e := range s.entries {
		if e.ID == s.active.ID {
			s.deletePending = true
			return true
		}
	}
	return false
}

// CancelDelete abandons a pending delete request.
func (s *DefaultJournalService) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletePending = false
}

// ConfirmDelete removes the active entry. The most recent remaining entry
// becomes active; with none left the active slot empties.
func (s *DefaultJournalService) ConfirmDelete(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.deletePending || s.active == nil {
		return false
	}
	s.deletePending = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	next := make([]models.UnloadEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != s.active.ID {
			next = append(next, e)
		}
	}
	s.entries = next
	s.saveEntries(ctx, next)

	if len(next) > 0 {
		entry := next[0]
		s.active = &entry
		s.content = entry.Content
	} else {
		s.active = nil
		s.content = ""
	}
	return true
}

// Entries returns a snapshot of the collection, newest first.
func (s *DefaultJournalService) Entries() []models.UnloadEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.UnloadEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Active returns the entry currently in the editor, if any.
func (s *DefaultJournalService) Active() (models.UnloadEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return models.UnloadEntry{}, false
	}
	return *s.active, true
}

// Content returns the in-memory editor content, which may be ahead of what
// is persisted.
func (s *DefaultJournalService) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}
