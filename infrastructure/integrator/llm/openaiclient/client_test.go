package openaiclient

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

func newTestClient(url string) *OpenAIClient {
	return NewClient(&config.Config{OpenAI: config.OpenAI{URL: url, Model: "gpt-4o", Timeout: 5 * time.Second}})
}

func TestOpenAIClient_Complete(t *testing.T) {
	tests := []struct {
		name     string
		req      llm.CompletionRequest
		handler  func(t *testing.T) http.HandlerFunc
		validate func(t *testing.T, content string, err error)
	}{
		{
			name: "json mode request",
			req:  llm.CompletionRequest{APIKey: "sk-test", System: "sys", Prompt: "user prompt", Temperature: 0.7, JSONMode: true},
			handler: func(t *testing.T) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

					body, _ := io.ReadAll(r.Body)
					assert.JSONEq(t, `{
						"model": "gpt-4o",
						"messages": [{"role":"system","content":"sys"},{"role":"user","content":"user prompt"}],
						"response_format": {"type":"json_object"},
						"temperature": 0.7
					}`, string(body))

					_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"{\"summary\":\"ok\"}"}}]}`)
				}
			},
			validate: func(t *testing.T, content string, err error) {
				require.NoError(t, err)
				assert.Equal(t, `{"summary":"ok"}`, content)
			},
		},
		{
			name: "max tokens without json mode",
			req:  llm.CompletionRequest{APIKey: "sk", Prompt: "p", MaxTokens: 4000},
			handler: func(t *testing.T) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					body, _ := io.ReadAll(r.Body)
					assert.Contains(t, string(body), `"max_tokens":4000`)
					assert.NotContains(t, string(body), "response_format")
					_, _ = io.WriteString(w, `{"choices":[{"message":{"content":"# Report"}}]}`)
				}
			},
			validate: func(t *testing.T, content string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "# Report", content)
			},
		},
		{
			name: "no choices yields empty content",
			req:  llm.CompletionRequest{APIKey: "sk"},
			handler: func(t *testing.T) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					_, _ = io.WriteString(w, `{"choices":[]}`)
				}
			},
			validate: func(t *testing.T, content string, err error) {
				require.NoError(t, err)
				assert.Empty(t, content)
			},
		},
		{
			name: "error body is truncated",
			req:  llm.CompletionRequest{APIKey: "bad"},
			handler: func(t *testing.T) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = io.WriteString(w, strings.Repeat("e", 500))
				}
			},
			validate: func(t *testing.T, content string, err error) {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
				assert.Len(t, apiErr.Body, 200)
				assert.True(t, strings.HasPrefix(err.Error(), "OpenAI API error: eee"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler(t))
			defer server.Close()

			content, err := newTestClient(server.URL).Complete(context.Background(), tt.req)
			tt.validate(t, content, err)
		})
	}
}
