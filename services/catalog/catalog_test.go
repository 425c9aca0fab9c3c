package catalog

import (
	"context"
	"errors"
	"testing"

	"ibelong/directory"
	"ibelong/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDirectory struct {
	sessions []models.SupportSession
	err      error
	calls    int
}

var _ directory.Client = (*fakeDirectory)(nil)

func (f *fakeDirectory) GetSessions(_ context.Context) ([]models.SupportSession, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.SupportSession(nil), f.sessions...), nil
}

func (f *fakeDirectory) GetSessionByID(_ context.Context, id string) (*models.SupportSession, error) {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			s := f.sessions[i]
			return &s, nil
		}
	}
	return nil, nil
}

func newTestCatalog(dir directory.Client) *DefaultSessionCatalogService {
	return NewDefaultSessionCatalogService(dir, zap.NewNop())
}

func TestCatalogStartsWithFallbackDataset(t *testing.T) {
	svc := newTestCatalog(&fakeDirectory{})
	assert.Len(t, svc.Sessions(), 5)
	assert.Len(t, svc.Providers(), 4)
}

func TestEnrollCapacityScenario(t *testing.T) {
	svc := newTestCatalog(&fakeDirectory{})
	svc.state.sessions = []models.SupportSession{{
		ID: "s1", Name: "test", MaxParticipants: 2, EnrolledCount: 1,
	}}

	require.True(t, svc.Enroll("s1"))
	got, ok := svc.GetSession("s1")
	require.True(t, ok)
	assert.Equal(t, 2, got.EnrolledCount)
	assert.True(t, got.EnrolledByUser)

	// Session is now full; the second attempt fails with no mutation.
	assert.False(t, svc.Enroll("s1"))
	got, _ = svc.GetSession("s1")
	assert.Equal(t, 2, got.EnrolledCount)
}

func TestEnrollUnknownSession(t *testing.T) {
	svc := newTestCatalog(&fakeDirectory{})
	assert.False(t, svc.Enroll("nope"))
	assert.Empty(t, svc.EnrolledIDs())
	assert.Empty(t, svc.LastEnrolledID())
}

func TestRepeatEnrollConsumesCapacityButDedupesMembership(t *testing.T) {
	svc := newTestCatalog(&fakeDirectory{})

	// Session 5 starts at 3/10 in the fallback dataset.
	require.True(t, svc.Enroll("5"))
	require.True(t, svc.Enroll("5"))

	got, ok := svc.GetSession("5")
	require.True(t, ok)
	assert.Equal(t, 5, got.EnrolledCount)
	assert.Equal(t, []string{"5"}, svc.EnrolledIDs())
	assert.Equal(t, "5", svc.LastEnrolledID())
}

func TestCapacityInvariantHolds(t *testing.T) {
	svc := newTestCatalog(&fakeDirectory{})
	svc.state.sessions = []models.SupportSession{{
		ID: "s1", MaxParticipants: 3, EnrolledCount: 0,
	}}

	for i := 0; i < 10; i++ {
		svc.Enroll("s1")
	}
	got, _ := svc.GetSession("s1")
	assert.GreaterOrEqual(t, got.EnrolledCount, 0)
	assert.LessOrEqual(t, got.EnrolledCount, got.MaxParticipants)
	assert.Equal(t, 3, got.EnrolledCount)
}

func TestClearLastEnrolledIDIsIdempotent(t *testing.T) {
	svc := newTestCatalog(&fakeDirectory{})
	require.True(t, svc.Enroll("1"))
	assert.Equal(t, "1", svc.LastEnrolledID())

	svc.ClearLastEnrolledID()
	assert.Empty(t, svc.LastEnrolledID())
	svc.ClearLastEnrolledID()
	assert.Empty(t, svc.LastEnrolledID())
}

func TestFetchFailureRetainsCurrentList(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("network down")}
	svc := newTestCatalog(dir)

	svc.FetchSessions(context.Background())

	assert.Equal(t, 1, dir.calls)
	assert.Len(t, svc.Sessions(), 5, "fallback dataset must remain visible")
}

func TestFetchSuccessReplacesListAndKeepsLocalEnrollment(t *testing.T) {
	dir := &fakeDirectory{sessions: []models.SupportSession{
		{ID: "1", Name: "refreshed", MaxParticipants: 10, EnrolledCount: 7},
		{ID: "9", Name: "brand new", MaxParticipants: 5, EnrolledCount: 0},
	}}
	svc := newTestCatalog(dir)
	require.True(t, svc.Enroll("1"))

	svc.FetchSessions(context.Background())

	sessions := svc.Sessions()
	require.Len(t, sessions, 2)
	got, ok := svc.GetSession("1")
	require.True(t, ok)
	assert.Equal(t, "refreshed", got.Name)
	assert.Equal(t, 7, got.EnrolledCount, "fetched count replaces the local one wholesale")
	assert.True(t, got.EnrolledByUser, "local enrollment mark survives a refresh")

	_, ok = svc.GetSession("5")
	assert.False(t, ok, "old fallback sessions are replaced wholesale")
}

func TestLookupsSignalAbsence(t *testing.T) {
	svc := newTestCatalog(&fakeDirectory{})

	_, ok := svc.GetSession("missing")
	assert.False(t, ok)
	_, ok = svc.GetProvider("missing")
	assert.False(t, ok)

	provider, ok := svc.GetProvider("p3")
	require.True(t, ok)
	assert.Equal(t, []string{"3", "5"}, provider.SessionIDs)
}
