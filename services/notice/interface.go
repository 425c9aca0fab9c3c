package notice

import (
	"context"
	"sync"
	"time"

	"ibelong/models"
	"ibelong/storage"

	"go.uber.org/zap"
)

// StorageKey is the durable key owned by this store.
const StorageKey = "@notice_entries"

// TrendWindow is the trailing window the trend view tallies over.
const TrendWindow = 7 * 24 * time.Hour

// Step is the check-in flow position.
type Step string

const (
	StepEmotions  Step = "emotions"
	StepIntensity Step = "intensity"
	StepBody      Step = "body"
	StepDone      Step = "done"
)

// EmotionCount is one row of the trend tally.
type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

// NoticeService runs the linear check-in flow
// (emotions → intensity → body → done) and retains the rolling history.
type NoticeService interface {
	Load(ctx context.Context)

	// ToggleEmotion selects or deselects a tag while on the emotions step.
	ToggleEmotion(tag string) bool

	// Continue advances emotions → intensity or intensity → body. Leaving
	// the emotions step is unavailable until at least one emotion is
	// selected; leaving intensity requires no selection (submission will
	// default to moderate).
	Continue() bool

	// SelectIntensity records the single-choice intensity on the intensity
	// step without advancing.
	SelectIntensity(value models.Intensity) bool

	// SetBodyNote records the optional free-text note on the body step.
	SetBodyNote(note string) bool

	// Back walks intensity → emotions or body → intensity.
	Back() bool

	// Submit finalizes from the body step: the entry persists regardless of
	// the note, with intensity defaulting to moderate when unset.
	Submit(ctx context.Context) (models.NoticeEntry, bool)

	// CheckInAgain resets to the emotions step with all selections cleared.
	CheckInAgain()

	Step() Step
	SelectedEmotions() []string
	Entries() []models.NoticeEntry

	// Trend tallies per-emotion counts over the trailing seven days,
	// sorted by count descending. Pure reflection of stored data.
	Trend() []EmotionCount
}

// DefaultNoticeService is the production implementation.
type DefaultNoticeService struct {
	Store  storage.Store
	Logger *zap.Logger

	// Now and NewID are injectable for tests; nil means real clock / uuid.
	Now   func() time.Time
	NewID func() string

	mu        sync.Mutex
	entries   []models.NoticeEntry
	step      Step
	selected  []string
	intensity models.Intensity
	bodyNote  string
	loaded    bool
}
