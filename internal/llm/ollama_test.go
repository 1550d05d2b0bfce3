package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaComplete(t *testing.T) {
	var gotReq api.GenerateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := api.GenerateResponse{
			Model:    "llama3.2:3b",
			Response: "If you could have dinner with anyone, who would it be?",
			Done:     true,
		}
		resp.DoneReason = "stop"
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(srv.URL, "llama3.2:3b", 5*time.Second)
	require.NoError(t, err)

	got, err := p.Complete(context.Background(), NewRequest("", "icebreaker please"))
	require.NoError(t, err)

	assert.Equal(t, "llama3.2:3b", gotReq.Model)
	assert.Equal(t, "icebreaker please", gotReq.Prompt)
	require.NotNil(t, gotReq.Stream)
	assert.False(t, *gotReq.Stream)

	raw, ok := got.Raw.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "If you could have dinner with anyone, who would it be?", raw["response"])
	assert.Equal(t, "stop", raw["done_reason"])
	assert.Equal(t, "llama3.2:3b", got.Model)
}

func TestOllamaCompleteStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(srv.URL, "llama3.2:3b", time.Second)
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), NewRequest("", "hi"))
	require.Error(t, err)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusServiceUnavailable, te.StatusCode)
	assert.Contains(t, err.Error(), "503")
}

func TestOllamaCompleteServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model 'missing' not found"}`))
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(srv.URL, "missing", time.Second)
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), NewRequest("", "hi"))
	require.Error(t, err)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Contains(t, te.Body+" "+err.Error(), "not found")
}

func TestOllamaPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(srv.URL, "llama3.2:3b", time.Second)
	require.NoError(t, err)
	assert.NoError(t, p.Ping(context.Background()))
	assert.Equal(t, "ollama", p.Name())
}

func TestNewOllamaProviderBadHost(t *testing.T) {
	_, err := NewOllamaProvider("://broken", "m", time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing ollama host URL")
}
