package arli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := New("test-key")
	c.BaseURL = srv.URL
	c.HTTP = srv.Client()
	return c, srv
}

func TestChat(t *testing.T) {
	var got chatRequest

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Let's go!"}},
			},
		})
	})
	defer srv.Close()

	reply, err := c.Ask(context.Background(), "how much protein?")
	assert.NoError(t, err)
	assert.Equal(t, "Let's go!", reply)

	assert.Equal(t, DefaultModel, got.Model)
	if assert.Len(t, got.Messages, 2) {
		assert.Equal(t, "system", got.Messages[0].Role)
		assert.Equal(t, Message{Role: "user", Content: "how much protein?"}, got.Messages[1])
	}
}

func TestChatKeepsCallerSystemMessage(t *testing.T) {
	var got chatRequest

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	})
	defer srv.Close()

	_, err := c.Chat(context.Background(), []Message{
		{Role: "system", Content: "be terse"},
		{Role: "user", Content: "hi"},
	})
	assert.NoError(t, err)
	if assert.Len(t, got.Messages, 2) {
		assert.Equal(t, "be terse", got.Messages[0].Content)
	}
}

func TestChatAPIError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, err := c.Ask(context.Background(), "hi")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestChatNoChoices(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})
	defer srv.Close()

	_, err := c.Ask(context.Background(), "hi")
	assert.Error(t, err)
}

func TestFallback(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.NotEmpty(t, Fallback())
	}
}
