package geminiclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/vfg2006/adpulse-api/infrastructure/integrator/llm"
	"github.com/vfg2006/adpulse-api/internal/config"
	"github.com/vfg2006/adpulse-api/pkg/utils"
)

const errorMessageLimit = 200

type GeminiClient struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) *GeminiClient {
	return &GeminiClient{
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
		HTTPClient: &http.Client{
			Timeout: cfg.Gemini.Timeout,
		},
	}
}

type APIError struct {
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Gemini API error: %s", e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Complete builds a client per call since the API key arrives with each request.
func (c *GeminiClient) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      req.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  c.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: c.BaseURL},
	})
	if err != nil {
		return "", &APIError{Message: utils.Truncate(err.Error(), errorMessageLimit), Err: err}
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		Temperature:       genai.Ptr(float32(req.Temperature)),
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSONMode {
		cfg.ResponseMIMEType = "application/json"
	}

	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, c.Model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", &APIError{Message: utils.Truncate(err.Error(), errorMessageLimit), Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"audit_model": c.Model,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("gemini: completion received")

	return resp.Text(), nil
}
