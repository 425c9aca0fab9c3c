package journal

import (
	"context"
	"sync"
	"time"

	"ibelong/models"
	"ibelong/storage"

	"go.uber.org/zap"
)

// StorageKey is the durable key owned by this store. No other component
// reads or writes it.
const StorageKey = "@unload_entries"

// DefaultDebounce is the quiet period after the last keystroke before an
// autosave fires.
const DefaultDebounce = 2500 * time.Millisecond

// JournalService owns the free-text "unload" entries. Edits are kept
// responsive in memory and persisted after a debounce quiet period; leaving
// the editor or starting a new entry flushes synchronously so content is
// never silently lost.
type JournalService interface {
	// Load reads the entry collection and, when nothing is being edited,
	// adopts the most recent entry as active.
	Load(ctx context.Context)

	// SetContent records a keystroke: the in-memory content updates
	// immediately, a new entry is created at once if none is active yet, and
	// the debounce timer restarts.
	SetContent(ctx context.Context, content string)

	// Flush cancels any pending autosave and persists unsaved non-blank
	// content synchronously.
	Flush(ctx context.Context)

	// NewEntry flushes the current entry, then makes a fresh empty entry
	// active. The fresh entry is only persisted once content arrives.
	NewEntry(ctx context.Context)

	// Open makes a past entry the active one and loads its content. Returns
	// false for an unknown id.
	Open(ctx context.Context, id string) bool

	// RequestDelete and ConfirmDelete are the two steps of deleting the
	// active entry; CancelDelete abandons a pending request.
	RequestDelete() bool
	ConfirmDelete(ctx context.Context) bool
	CancelDelete()

	Entries() []models.UnloadEntry
	Active() (models.UnloadEntry, bool)
	Content() string
}

// DefaultJournalService is the production implementation.
type DefaultJournalService struct {
	Store    storage.Store
	Logger   *zap.Logger
	Debounce time.Duration

	// Now and NewID are injectable for tests; nil means real clock / uuid.
	Now   func() time.Time
	NewID func() string

	mu            sync.Mutex
	entries       []models.UnloadEntry
	active        *models.UnloadEntry
	content       string
	timer         *time.Timer
	loaded        bool
	deletePending bool
}
