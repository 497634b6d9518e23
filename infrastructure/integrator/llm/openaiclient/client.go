package openaiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/adpulse-api/infrastructure/integrator/llm"
	"github.com/vfg2006/adpulse-api/internal/config"
	"github.com/vfg2006/adpulse-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const errorBodyLimit = 200

type OpenAIClient struct {
	URL        string
	Model      string
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) *OpenAIClient {
	return &OpenAIClient{
		URL:   cfg.OpenAI.URL,
		Model: cfg.OpenAI.Model,
		HTTPClient: &http.Client{
			Timeout: cfg.OpenAI.Timeout,
		},
	}
}

// APIError is returned for a non-2xx chat completion response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OpenAI API error: %s", e.Body)
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Complete sends one system and one user message and returns the first
// choice's content, which may be empty.
func (c *OpenAIClient) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	body := chatRequest{
		Model: c.Model,
		Messages: []message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", errors.Wrap(err, "encoding chat completion request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "creating chat completion request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)

	start := time.Now()
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "calling chat completions")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading chat completion response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &APIError{
			StatusCode: resp.StatusCode,
			Body:       utils.Truncate(string(raw), errorBodyLimit),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", errors.Wrap(err, "decoding chat completion response")
	}

	logrus.WithFields(logrus.Fields{
		"audit_model": c.Model,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("openai: completion received")

	if len(parsed.Choices) == 0 {
		return "", nil
	}

	return parsed.Choices[0].Message.Content, nil
}
