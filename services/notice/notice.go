package notice

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

// NewDefaultNoticeService builds the store, positioned at the emotions step.
func NewDefaultNoticeService(store storage.Store, logger *zap.Logger) *DefaultNoticeService {
	return &DefaultNoticeService{
		Store:  store,
		Logger: logger,
		step:   StepEmotions,
	}
}

func (s *DefaultNoticeService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultNoticeService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// Load reads the check-in history, newest first. Corruption reads as empty.
func (s *DefaultNoticeService) Load(ctx context.Context) {
	var list []models.NoticeEntry
	raw, err := s.Store.Get(ctx, StorageKey)
	if err != nil {
		if err != storage.ErrNotFound {
			s.Logger.Warn("check-in read failed, starting empty", zap.Error(err))
		}
	} else if err := json.Unmarshal(raw, &list); err != nil {
		s.Logger.Warn("check-in data corrupt, starting empty", zap.Error(err))
		list = nil
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = list
	s.loaded = true
}

// ToggleEmotion flips a tag's selection on the emotions step. Unknown tags
// and out-of-step taps are rejected.
func (s *DefaultNoticeService) ToggleEmotion(tag string) bool {
	if !models.IsPrimaryEmotion(tag) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepEmotions {
		return false
	}
	for i, e := range s.selected {
		if e == tag {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return true
		}
	}
	s.selected = append(s.selected, tag)
	return true
}

// Continue advances one step forward. The emotions step only opens up once
// at least one tag is selected; the intensity step may be left unselected.
func (s *DefaultNoticeService) Continue() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.step {
	case StepEmotions:
		if len(s.selected) == 0 {
			return false
		}
		s.step = StepIntensity
		return true
	case StepIntensity:
		s.step = StepBody
		return true
	}
	return false
}

// SelectIntensity records the intensity on the intensity step.
func (s *DefaultNoticeService) SelectIntensity(value models.Intensity) bool {
	switch value {
	case models.IntensityMild, models.IntensityModerate, models.IntensityStrong:
	default:
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepIntensity {
		return false
	}
	s.intensity = value
	return true
}

// SetBodyNote records the optional note while on the body step.
func (s *DefaultNoticeService) SetBodyNote(note string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepBody {
		return false
	}
	s.bodyNote = note
	return true
}

// Back walks one step towards emotions.
func (s *DefaultNoticeService) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.step {
	case StepIntensity:
		s.step = StepEmotions
		return true
	case StepBody:
		s.step = StepIntensity
		return true
	}
	return false
}

// Submit finalizes the check-in from the body step. The entry persists
// whether or not the note is empty; an unset intensity defaults to moderate.
func (s *DefaultNoticeService) Submit(ctx context.Context) (models.NoticeEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepBody || len(s.selected) == 0 {
		return models.NoticeEntry{}, false
	}

	intensity := s.intensity
	if intensity == "" {
		intensity = models.IntensityModerate
	}
	entry := models.NoticeEntry{
		ID:        s.newID(),
		CreatedAt: s.now(),
		Emotions:  append([]string(nil), s.selected...),
		Intensity: intensity,
		BodyNote:  strings.TrimSpace(s.bodyNote),
	}

	s.entries = append([]models.NoticeEntry{entry}, s.entries...)
	s.save(ctx)
	s.step = StepDone
	return entry, true
}

// CheckInAgain resets the flow to the emotions step with selections cleared.
func (s *DefaultNoticeService) CheckInAgain() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = StepEmotions
	s.selected = nil
	s.intensity = ""
	s.bodyNote = ""
}

// save persists the history best-effort; failures never break the flow.
func (s *DefaultNoticeService) save(ctx context.Context) {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		s.Logger.Warn("check-in encode failed, skipping save", zap.Error(err))
		return
	}
	if err := s.Store.Set(ctx, StorageKey, raw); err != nil {
		s.Logger.Warn("check-in save failed", zap.Error(err))
	}
}

// Step returns the current flow position.
func (s *DefaultNoticeService) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// SelectedEmotions returns the tags selected so far, in selection order.
func (s *DefaultNoticeService) SelectedEmotions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.selected...)
}

// Entries returns a snapshot of the history, newest first.
func (s *DefaultNoticeService) Entries() []models.NoticeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.NoticeEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Trend tallies emotion occurrences across the trailing seven days, sorted
// by count descending with alphabetical tie-break for stable output.
func (s *DefaultNoticeService) Trend() []EmotionCount {
	cutoff := s.now().Add(-TrendWindow)

	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int)
	for _, e := range s.entries {
		if e.CreatedAt.Before(cutoff) {
			continue
		}
		for _, em := range e.Emotions {
			counts[em]++
		}
	}

	out := make([]EmotionCount, 0, len(counts))
	for em, n := range counts {
		out = append(out, EmotionCount{Emotion: em, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Emotion < out[j].Emotion
	})
	return out
}
