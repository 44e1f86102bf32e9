package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arches/internal/domain/service"
)

func TestLocalHTTPPublisher_PublishVisitEvent(t *testing.T) {
	var (
		received PushMessage
		header   http.Header
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	event := &service.VisitEvent{
		EventID:    "evt-1",
		RequestID:  "req-1",
		UserID:     7,
		LocationID: 3,
		Outcome:    "added",
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishVisitEvent(context.Background(), event))

	assert.Equal(t, "req-1", header.Get("X-Request-Id"))
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "7", received.Message.Attributes["user_id"])
	assert.Equal(t, "3", received.Message.Attributes["location_id"])
	assert.Equal(t, "visit_toggled", received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.VisitEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishVisitEvent(context.Background(), &service.VisitEvent{EventID: "evt-1"})
	require.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(slog.New(slog.DiscardHandler))

	require.NoError(t, publisher.PublishVisitEvent(context.Background(), &service.VisitEvent{EventID: "evt-1"}))
	require.NoError(t, publisher.Close())
}
