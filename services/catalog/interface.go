package catalog

import (
	"context"

	"ibelong/directory"
	"ibelong/models"

	"go.uber.org/zap"
)

// SessionCatalogService owns the session and provider lists and enforces
// enrollment capacity locally, pending any server-side confirmation.
type SessionCatalogService interface {
	// FetchSessions refreshes the list from the directory. On failure the
	// current list is silently retained; the error is never fatal.
	FetchSessions(ctx context.Context)

	// Enroll reserves one capacity slot. It returns false when the session is
	// unknown or already full; no state changes on failure.
	Enroll(sessionID string) bool

	// ClearLastEnrolledID drops the transient celebration marker. Idempotent.
	ClearLastEnrolledID()

	Sessions() []models.SupportSession
	Providers() []models.Provider
	GetSession(id string) (models.SupportSession, bool)
	GetProvider(id string) (models.Provider, bool)
	EnrolledIDs() []string
	LastEnrolledID() string
}

// DefaultSessionCatalogService is the production implementation.
type DefaultSessionCatalogService struct {
	Directory directory.Client
	Logger    *zap.Logger

	state catalogState
}
