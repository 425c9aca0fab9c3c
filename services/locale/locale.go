// Package locale is the single source of truth for the two-valued language
// preference and the coarse text-direction flip that rides on it.
package locale

import (
	"context"
	"sync"

	"ibelong/models"
	"ibelong/storage"

	"go.uber.org/zap"
)

// StorageKey is the durable key owned by this store.
const StorageKey = "@togetherness/locale"

// Reloader restarts the running application in place so direction-dependent
// layout takes effect everywhere. The host environment applies text direction
// at process start only, hence a restart rather than an in-place relayout.
// A nil Reloader defers the flip to the next launch.
type Reloader func() error

// LocaleService owns the persisted language preference.
type LocaleService interface {
	// Hydrate reads the persisted preference at startup (default "en"). When
	// the required direction differs from the active one it applies the
	// change and triggers a reload instead of marking itself ready.
	Hydrate(ctx context.Context)

	// SetLocale switches the preference. A no-op when unchanged; otherwise
	// it persists, updates memory, and reloads only on an actual direction
	// change. Returns whether a reload was triggered.
	SetLocale(ctx context.Context, next models.Locale) bool

	Locale() models.Locale
	IsRTLActive() bool
	IsHydrated() bool
}

// DefaultLocaleService is the production implementation.
type DefaultLocaleService struct {
	Store  storage.Store
	Logger *zap.Logger
	Reload Reloader

	// ActiveRTL is the direction the running process was laid out with.
	// It only changes through a reload.
	ActiveRTL bool

	mu       sync.Mutex
	locale   models.Locale
	hydrated bool
}

// NewDefaultLocaleService builds the store with English active until hydration.
func NewDefaultLocaleService(store storage.Store, logger *zap.Logger, reload Reloader) *DefaultLocaleService {
	return &DefaultLocaleService{
		Store:  store,
		Logger: logger,
		Reload: reload,
		locale: models.LocaleEnglish,
	}
}

// reload invokes the restart capability best-effort. When unavailable or
// failing, the direction change applies on the next full launch instead.
func (s *DefaultLocaleService) reload() {
	if s.Reload == nil {
		s.Logger.Info("reload unavailable, direction change applies on next launch")
		return
	}
	if err := s.Reload(); err != nil {
		s.Logger.Warn("reload failed, direction change applies on next launch", zap.Error(err))
	}
}

// Hydrate reads the persisted preference. Absence and corruption both decode
// to the default "en"; a read failure marks the store ready on the default.
func (s *DefaultLocaleService) Hydrate(ctx context.Context) {
	loc := models.LocaleEnglish
	raw, err := s.Store.Get(ctx, StorageKey)
	if err != nil {
		if err != storage.ErrNotFound {
			s.Logger.Warn("locale read failed, defaulting to en", zap.Error(err))
			s.mu.Lock()
			s.hydrated = true
			s.mu.Unlock()
			return
		}
	} else if stored := models.Locale(raw); stored.Valid() {
		loc = stored
	}

	if loc.IsRTL() != s.ActiveRTL {
		s.mu.Lock()
		s.locale = loc
		s.mu.Unlock()
		s.reload()
		return
	}

	s.mu.Lock()
	s.locale = loc
	s.hydrated = true
	s.mu.Unlock()
}

// SetLocale switches the preference. Identical values write nothing and
// trigger nothing.
func (s *DefaultLocaleService) SetLocale(ctx context.Context, next models.Locale) bool {
	if !next.Valid() {
		return false
	}

	s.mu.Lock()
	if s.locale == next {
		s.mu.Unlock()
		return false
	}
	if err := s.Store.Set(ctx, StorageKey, []byte(next)); err != nil {
		// Best-effort: the in-memory switch still happens this run.
		s.Logger.Warn("locale save failed", zap.Error(err))
	}
	s.locale = next
	needsReload := next.IsRTL() != s.ActiveRTL
	s.mu.Unlock()

	if needsReload {
		s.reload()
	}
	return needsReload
}

// Locale returns the current preference.
func (s *DefaultLocaleService) Locale() models.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

// IsRTLActive reports the direction the running process is laid out with.
func (s *DefaultLocaleService) IsRTLActive() bool {
	return s.ActiveRTL
}

// IsHydrated reports whether startup hydration completed without a reload.
func (s *DefaultLocaleService) IsHydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}
