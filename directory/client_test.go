package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSessionsParsesEnvelopeAndAttachesToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"id":"1","name":"circle","maxParticipants":8,"enrolledCount":2}]}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, func() string { return "tok-123" })
	sessions, err := client.GetSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "circle", sessions[0].Name)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestGetSessionsRejectsUnsuccessfulEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, nil)
	_, err := client.GetSessions(context.Background())
	assert.Error(t, err)
}

func TestGetSessionsReportsHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, nil)
	_, err := client.GetSessions(context.Background())
	assert.Error(t, err)
}

func TestGetSessionsReportsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, nil)
	_, err := client.GetSessions(context.Background())
	assert.Error(t, err)
}

func TestGetSessionByIDAbsence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, nil)
	session, err := client.GetSessionByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, session)
}
