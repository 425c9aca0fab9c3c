package journal

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ibelong/models"
	"ibelong/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDebounce = 50 * time.Millisecond

// settle is comfortably longer than the debounce so a pending save has fired.
const settle = 6 * testDebounce

type failingStore struct{}

var _ storage.Store = failingStore{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk gone")
}
func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("disk gone")
}
func (failingStore) Delete(context.Context, string) error { return errors.New("disk gone") }
func (failingStore) Close() error                         { return nil }

func newTestJournal(t *testing.T) (*DefaultJournalService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	svc := NewDefaultJournalService(store, zap.NewNop(), testDebounce)
	svc.Load(context.Background())
	return svc, store
}

func persistedEntries(t *testing.T, store storage.Store) []models.UnloadEntry {
	t.Helper()
	raw, err := store.Get(context.Background(), StorageKey)
	if err == storage.ErrNotFound {
		return nil
	}
	require.NoError(t, err)
	var list []models.UnloadEntry
	require.NoError(t, json.Unmarshal(raw, &list))
	return list
}

func TestTypingThenQuietPeriodPersistsOneEntry(t *testing.T) {
	svc, store := newTestJournal(t)
	ctx := context.Background()

	svc.SetContent(ctx, "what feels heavy")
	time.Sleep(settle)

	list := persistedEntries(t, store)
	require.Len(t, list, 1)
	assert.Equal(t, "what feels heavy", list[0].Content)
}

func TestDebounceCollapsesRapidEdits(t *testing.T) {
	svc, store := newTestJournal(t)
	ctx := context.Background()

	svc.SetContent(ctx, "first ")
	time.Sleep(testDebounce / 2)
	svc.SetContent(ctx, "first and second")
	time.Sleep(settle)

	list := persistedEntries(t, store)
	require.Len(t, list, 1, "rapid edits must collapse into one entry")
	assert.Equal(t, "first and second", list[0].Content)
}

func TestEntryCreatedImmediatelyOnFirstKeystroke(t *testing.T) {
	svc, store := newTestJournal(t)

	svc.SetContent(context.Background(), "h")

	// Persisted before the debounce fires so an id exists already.
	list := persistedEntries(t, store)
	require.Len(t, list, 1)
	active, ok := svc.Active()
	require.True(t, ok)
	assert.Equal(t, list[0].ID, active.ID)
}

func TestBlankContentCreatesNothing(t *testing.T) {
	svc, store := newTestJournal(t)

	svc.SetContent(context.Background(), "   \n ")
	time.Sleep(settle)

	assert.Empty(t, persistedEntries(t, store))
	_, ok := svc.Active()
	assert.False(t, ok)
}

func TestNewEntryFlushesWithoutWaitingForDebounce(t *testing.T) {
	svc, store := newTestJournal(t)
	ctx := context.Background()

	svc.SetContent(ctx, "entry A")
	firstActive, ok := svc.Active()
	require.True(t, ok)
	// The second keystroke lives only in memory until a save fires.
	svc.SetContent(ctx, "entry A content")

	// No debounce wait: switching must still persist A's content first.
	svc.NewEntry(ctx)

	list := persistedEntries(t, store)
	require.Len(t, list, 1)
	assert.Equal(t, "entry A content", list[0].Content)
	assert.Equal(t, firstActive.ID, list[0].ID)

	secondActive, ok := svc.Active()
	require.True(t, ok)
	assert.NotEqual(t, firstActive.ID, secondActive.ID)
	assert.Empty(t, svc.Content())
}

func TestLoadAdoptsMostRecentEntry(t *testing.T) {
	store := storage.NewMemoryStore()
	older := models.UnloadEntry{ID: "old", Content: "older",
		CreatedAt: time.Now().Add(-2 * time.Hour), UpdatedAt: time.Now().Add(-2 * time.Hour)}
	newer := models.UnloadEntry{ID: "new", Content: "newer",
		CreatedAt: time.Now().Add(-time.Hour), UpdatedAt: time.Now().Add(-time.Minute)}
	raw, err := json.Marshal([]models.UnloadEntry{older, newer})
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), StorageKey, raw))

	svc := NewDefaultJournalService(store, zap.NewNop(), testDebounce)
	svc.Load(context.Background())

	active, ok := svc.Active()
	require.True(t, ok)
	assert.Equal(t, "new", active.ID)
	assert.Equal(t, "newer", svc.Content())

	entries := svc.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].ID, "list is sorted by update time descending")
}

func TestCorruptStorageLoadsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), StorageKey, []byte("{not json")))

	svc := NewDefaultJournalService(store, zap.NewNop(), testDebounce)
	svc.Load(context.Background())

	assert.Empty(t, svc.Entries())
	_, ok := svc.Active()
	assert.False(t, ok)
}

func TestOpenPastEntry(t *testing.T) {
	svc, _ := newTestJournal(t)
	ctx := context.Background()

	svc.SetContent(ctx, "first entry")
	svc.NewEntry(ctx)
	svc.SetContent(ctx, "second entry")
	svc.Flush(ctx)

	entries := svc.Entries()
	require.Len(t, entries, 2)
	oldest := entries[len(entries)-1]

	require.True(t, svc.Open(ctx, oldest.ID))
	active, ok := svc.Active()
	require.True(t, ok)
	assert.Equal(t, oldest.ID, active.ID)
	assert.Equal(t, "first entry", svc.Content())

	assert.False(t, svc.Open(ctx, "missing"))
}

func TestDeleteRequiresTwoSteps(t *testing.T) {
	svc, store := newTestJournal(t)
	ctx := context.Background()

	svc.SetContent(ctx, "to be removed")
	svc.Flush(ctx)

	// Confirm without a request does nothing.
	assert.False(t, svc.ConfirmDelete(ctx))
	require.Len(t, persistedEntries(t, store), 1)

	require.True(t, svc.RequestDelete())
	require.True(t, svc.ConfirmDelete(ctx))

	assert.Empty(t, persistedEntries(t, store))
	_, ok := svc.Active()
	assert.False(t, ok)
	assert.Empty(t, svc.Content())
}

func TestDeletePromotesNextMostRecent(t *testing.T) {
	svc, _ := newTestJournal(t)
	ctx := context.Background()

	svc.SetContent(ctx, "older entry")
	svc.NewEntry(ctx)
	svc.SetContent(ctx, "newest entry")
	svc.Flush(ctx)

	require.True(t, svc.RequestDelete())
	require.True(t, svc.ConfirmDelete(ctx))

	active, ok := svc.Active()
	require.True(t, ok)
	assert.Equal(t, "older entry", active.Content)
	assert.Equal(t, "older entry", svc.Content())
}

func TestCancelDeleteKeepsEntry(t *testing.T) {
	svc, store := newTestJournal(t)
	ctx := context.Background()

	svc.SetContent(ctx, "keep me")
	svc.Flush(ctx)
	require.True(t, svc.RequestDelete())
	svc.CancelDelete()

	assert.False(t, svc.ConfirmDelete(ctx))
	assert.Len(t, persistedEntries(t, store), 1)
}

func TestStorageFailuresNeverBreakEditing(t *testing.T) {
	svc := NewDefaultJournalService(failingStore{}, zap.NewNop(), testDebounce)
	ctx := context.Background()

	svc.Load(ctx)
	svc.SetContent(ctx, "still typing")
	svc.Flush(ctx)

	// Content stays live in memory despite every write failing.
	assert.Equal(t, "still typing", svc.Content())
	active, ok := svc.Active()
	require.True(t, ok)
	assert.Equal(t, "still typing", active.Content)
}
