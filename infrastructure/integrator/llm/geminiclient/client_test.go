package geminiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/adpulse-api/infrastructure/integrator/llm"
	"github.com/vfg2006/adpulse-api/internal/config"
)

func newTestClient(url string) *GeminiClient {
	return NewClient(&config.Config{Gemini: config.Gemini{BaseURL: url, Model: "gemini-2.0-flash", Timeout: 5 * time.Second}})
}

func TestGeminiClient_Complete(t *testing.T) {
	t.Run("generates content with the request key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.0-flash:generateContent"), r.URL.Path)
			assert.Equal(t, "g-key", r.Header.Get("x-goog-api-key"))

			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), `"responseMimeType":"application/json"`)
			assert.Contains(t, string(body), "audit these campaigns")

			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"summary\":\"fine\"}"}]}}]}`)
		}))
		defer server.Close()

		content, err := newTestClient(server.URL).Complete(context.Background(), llm.CompletionRequest{
			APIKey:      "g-key",
			System:      "sys",
			Prompt:      "audit these campaigns",
			Temperature: 0.7,
			JSONMode:    true,
		})
		require.NoError(t, err)
		assert.Equal(t, `{"summary":"fine"}`, content)
	})

	t.Run("api errors are wrapped", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Complete(context.Background(), llm.CompletionRequest{APIKey: "bad", Prompt: "p"})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, strings.HasPrefix(err.Error(), "Gemini API error: "))
		assert.Contains(t, err.Error(), "API key not valid")
	})
}
