package catalog

import (
	"context"
	"sort"
	"sync"

	"ibelong/directory"
	"ibelong/models"

	"go.uber.org/zap"
)

// catalogState is the mutable store behind the service. Enroll's
// read-check-increment runs as one critical section so the capacity
// invariant holds even under concurrent callers.
type catalogState struct {
	mu             sync.RWMutex
	sessions       []models.SupportSession
	providers      []models.Provider
	enrolledIDs    map[string]struct{}
	lastEnrolledID string
}

// NewDefaultSessionCatalogService builds the store, seeded with the built-in
// fallback dataset so the session list is never empty.
func NewDefaultSessionCatalogService(dir directory.Client, logger *zap.Logger) *DefaultSessionCatalogService {
	return &DefaultSessionCatalogService{
		Directory: dir,
		Logger:    logger,
		state: catalogState{
			sessions:    FallbackSessions(),
			providers:   FallbackProviders(),
			enrolledIDs: make(map[string]struct{}),
		},
	}
}

// FetchSessions refreshes the session list from the directory. A failed or
// malformed fetch retains the current list; the previous visible state stays
// valid and no error escapes.
func (s *DefaultSessionCatalogService) FetchSessions(ctx context.Context) {
	sessions, err := s.Directory.GetSessions(ctx)
	if err != nil {
		s.Logger.Warn("session fetch failed, keeping current list", zap.Error(err))
		return
	}

	st := &s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	// Wholesale replacement; local enrollment marks are re-applied so the
	// user's own enrollments stay visible across refreshes.
	for i := range sessions {
		if _, ok := st.enrolledIDs[sessions[i].ID]; ok {
			sessions[i].EnrolledByUser = true
		}
	}
	st.sessions = sessions
}

// Enroll reserves one slot in the session. Unknown ids and full sessions are
// expected outcomes, signalled by false with no mutation. Repeat enrollment
// by the same caller is allowed and consumes capacity each time.
func (s *DefaultSessionCatalogService) Enroll(sessionID string) bool {
	st := &s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	idx := -1
	for i := range st.sessions {
		if st.sessions[i].ID == sessionID {
			idx = i
			break
		}
	}
	if idx < 0 || st.sessions[idx].IsFull() {
		return false
	}

	st.sessions[idx].EnrolledCount++
	st.sessions[idx].EnrolledByUser = true
	st.enrolledIDs[sessionID] = struct{}{}
	st.lastEnrolledID = sessionID
	return true
}

// ClearLastEnrolledID clears the transient "most recently enrolled" marker.
func (s *DefaultSessionCatalogService) ClearLastEnrolledID() {
	st := &s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	st.lastEnrolledID = ""
}

// Sessions returns a snapshot of the current session list.
func (s *DefaultSessionCatalogService) Sessions() []models.SupportSession {
	st := &s.state
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]models.SupportSession, len(st.sessions))
	copy(out, st.sessions)
	return out
}

// Providers returns a snapshot of the provider directory.
func (s *DefaultSessionCatalogService) Providers() []models.Provider {
	st := &s.state
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]models.Provider, len(st.providers))
	copy(out, st.providers)
	return out
}

// GetSession looks up a session by id. Absence is an ordinary outcome.
func (s *DefaultSessionCatalogService) GetSession(id string) (models.SupportSession, bool) {
	st := &s.state
	st.mu.RLock()
	defer st.mu.RUnlock()
	for i := range st.sessions {
		if st.sessions[i].ID == id {
			return st.sessions[i], true
		}
	}
	return models.SupportSession{}, false
}

// GetProvider looks up a provider by id. Absence is an ordinary outcome.
func (s *DefaultSessionCatalogService) GetProvider(id string) (models.Provider, bool) {
	st := &s.state
	st.mu.RLock()
	defer st.mu.RUnlock()
	for i := range st.providers {
		if st.providers[i].ID == id {
			return st.providers[i], true
		}
	}
	return models.Provider{}, false
}

// EnrolledIDs returns the ids the local user enrolled in, sorted for
// deterministic output.
func (s *DefaultSessionCatalogService) EnrolledIDs() []string {
	st := &s.state
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]string, 0, len(st.enrolledIDs))
	for id := range st.enrolledIDs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// LastEnrolledID returns the transient celebration marker, or "".
func (s *DefaultSessionCatalogService) LastEnrolledID() string {
	st := &s.state
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.lastEnrolledID
}
