package line

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushClient_PushMessages_Success(t *testing.T) {
	var received pushRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		err := json.NewDecoder(r.Body).Decode(&received)
		require.NoError(t, err)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewPushClient(server.URL, "test-token")
	err := client.PushMessages(context.Background(), "U1", []Message{NewTextMessage("hello")})

	require.NoError(t, err)
	assert.Equal(t, "U1", received.To)
	require.Len(t, received.Messages, 1)
	assert.Equal(t, "text", received.Messages[0].Type)
	assert.Equal(t, "hello", received.Messages[0].Text)
}

func TestPushClient_PushMessages_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer server.Close()

	client := NewPushClient(server.URL, "test-token")
	err := client.PushMessages(context.Background(), "U1", []Message{NewTextMessage("hello")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestPushClient_PushMessages_MissingConfiguration(t *testing.T) {
	// No network call should happen: there is no server behind these clients.
	t.Run("missing URL", func(t *testing.T) {
		client := NewPushClient("", "test-token")
		err := client.PushMessages(context.Background(), "U1", []Message{NewTextMessage("hi")})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("missing token", func(t *testing.T) {
		client := NewPushClient("http://localhost:0", "")
		err := client.PushMessages(context.Background(), "U1", []Message{NewTextMessage("hi")})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestPushClient_PushMessages_InvalidArguments(t *testing.T) {
	client := NewPushClient("http://localhost:0", "test-token")

	t.Run("empty recipient", func(t *testing.T) {
		err := client.PushMessages(context.Background(), "", []Message{NewTextMessage("hi")})
		assert.Error(t, err)
	})

	t.Run("empty messages", func(t *testing.T) {
		err := client.PushMessages(context.Background(), "U1", nil)
		assert.Error(t, err)
	})
}

func TestPushClient_PushMessages_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewPushClient(server.URL, "test-token")
	err := client.PushMessages(ctx, "U1", []Message{NewTextMessage("hello")})
	assert.Error(t, err)
}
