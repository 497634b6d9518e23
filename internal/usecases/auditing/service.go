package auditing

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/adpulse-api/infrastructure/integrator/llm"
	"github.com/vfg2006/adpulse-api/internal/config"
	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/pkg/apiErrors"
	"github.com/vfg2006/adpulse-api/pkg/log"
	"github.com/vfg2006/adpulse-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const summaryLimit = 500

// The comprehensive prompt labels an unbounded request with this window, and
// reports fetched on its behalf use it too.
const comprehensiveWindow = domain.LastNinetyDays

type Service struct {
	cfg        *config.Config
	reports    ReportFetcher
	completers map[domain.Provider]llm.Completer
	now        func() time.Time
}

func NewService(cfg *config.Config, reports ReportFetcher, completers map[domain.Provider]llm.Completer) *Service {
	return &Service{
		cfg:        cfg,
		reports:    reports,
		completers: completers,
		now:        time.Now,
	}
}

type quickAuditResponse struct {
	Summary         string                  `json:"summary"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	CleanReport     string                  `json:"cleanReport"`
}

func (s *Service) GenerateQuick(ctx context.Context, req domain.QuickAuditRequest) (*domain.AuditResult, error) {
	provider, apiKey, err := s.provider(req.Provider, req.OpenAIAPIKey, req.GeminiAPIKey)
	if err != nil {
		return nil, NewAuditError(ErrInvalidRequest, apiErrors.ErrValidation, err.Error())
	}

	if err := validateCampaigns(req.Campaigns); err != nil {
		return nil, err
	}

	prompt, err := BuildQuickPrompt(req.Campaigns, req.DateRange)
	if err != nil {
		return nil, &AuditError{Err: err, Code: apiErrors.ErrInternalServer, Details: "failed to build audit prompt"}
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"mode":            domain.AuditModeQuick,
		"provider":        provider,
		"audit_campaigns": len(req.Campaigns),
	})
	logger.Info("audit: generating quick audit")

	content, err := s.complete(ctx, provider, llm.CompletionRequest{
		APIKey:      apiKey,
		System:      quickSystemPrompt,
		Prompt:      prompt,
		Temperature: s.cfg.Audit.Temperature,
		JSONMode:    true,
	})
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		logger.Warn("audit: model returned an empty answer")
		return nil, &AuditError{Err: ErrAuditService, Code: apiErrors.ErrAuditService, Details: llm.ErrEmptyCompletion.Error(), Cause: llm.ErrEmptyCompletion}
	}

	var parsed quickAuditResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		logger.WithError(err).Warn("audit: model answer is not valid JSON")
		return nil, &AuditError{Err: ErrAuditParse, Code: apiErrors.ErrAuditParse, Details: "Failed to parse audit JSON response", Cause: err}
	}

	if parsed.Recommendations == nil {
		parsed.Recommendations = []domain.Recommendation{}
	}

	return &domain.AuditResult{
		Summary:         parsed.Summary,
		Recommendations: parsed.Recommendations,
		CleanReport:     parsed.CleanReport,
		GeneratedAt:     s.now().UTC(),
		CampaignCount:   len(req.Campaigns),
	}, nil
}

func (s *Service) GenerateComprehensive(ctx context.Context, req domain.ComprehensiveAuditRequest) (*domain.AuditResult, error) {
	if req.AllReports == nil && req.Credentials == nil {
		return nil, NewAuditError(ErrMissingData, apiErrors.ErrMissingData, "allReports (or credentials) and an API key are required")
	}

	provider, apiKey, err := s.provider(req.Provider, req.OpenAIAPIKey, req.GeminiAPIKey)
	if err != nil {
		return nil, NewAuditError(ErrMissingData, apiErrors.ErrMissingData, err.Error())
	}

	set := req.AllReports
	dateRange := req.DateRange
	if set == nil {
		creds := *req.Credentials
		if dateRange != nil {
			creds.StartDate = dateRange.StartDate
			creds.EndDate = dateRange.EndDate
		}
		dateRange = creds.DateRange()

		set, err = s.reports.FetchAll(ctx, creds, comprehensiveWindow)
		if err != nil {
			return nil, err
		}
	}

	prompt, err := BuildComprehensivePrompt(set, dateRange, comprehensiveWindow)
	if err != nil {
		return nil, &AuditError{Err: err, Code: apiErrors.ErrInternalServer, Details: "failed to build audit prompt"}
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"mode":              domain.AuditModeComprehensive,
		"provider":          provider,
		"audit_counts":      set.Counts(),
		"audit_prompt_size": len(prompt),
	})
	logger.Info("audit: generating comprehensive audit")

	content, err := s.complete(ctx, provider, llm.CompletionRequest{
		APIKey:      apiKey,
		System:      comprehensiveSystemPrompt,
		Prompt:      prompt,
		Temperature: s.cfg.Audit.Temperature,
		MaxTokens:   s.cfg.Audit.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	logger.WithField("audit_report_size", len(content)).Info("audit: comprehensive audit generated")

	return &domain.AuditResult{
		Summary:         utils.Truncate(content, summaryLimit),
		Recommendations: []domain.Recommendation{},
		CleanReport:     content,
		GeneratedAt:     s.now().UTC(),
		CampaignCount:   len(set.Campaigns),
	}, nil
}

func (s *Service) complete(ctx context.Context, provider domain.Provider, req llm.CompletionRequest) (string, error) {
	completer, ok := s.completers[provider]
	if !ok {
		return "", NewAuditError(ErrInvalidRequest, apiErrors.ErrValidation, fmt.Sprintf("provider %q is not available", provider))
	}

	content, err := completer.Complete(ctx, req)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("provider", provider).Error("audit: completion failed")
		return "", &AuditError{Err: ErrAuditService, Code: apiErrors.ErrAuditService, Details: err.Error(), Cause: err}
	}

	return content, nil
}

// provider resolves the backend and the key that goes with it. OpenAI is the
// default.
func (s *Service) provider(p domain.Provider, openaiKey, geminiKey string) (domain.Provider, string, error) {
	if p == "" {
		p = domain.ProviderOpenAI
	}

	if !p.Valid() {
		return "", "", fmt.Errorf("provider must be one of %s, %s", domain.ProviderOpenAI, domain.ProviderGemini)
	}

	key := openaiKey
	field := "openaiApiKey"
	if p == domain.ProviderGemini {
		key, field = geminiKey, "geminiApiKey"
	}

	if strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("%s is required", field)
	}

	return p, key, nil
}

func validateCampaigns(campaigns []domain.CampaignRecord) error {
	if campaigns == nil {
		return NewAuditError(ErrInvalidRequest, apiErrors.ErrValidation, "campaigns is required")
	}

	verr := &domain.ValidationError{}
	for i, c := range campaigns {
		if !c.Status.Valid() {
			verr.Add(fmt.Sprintf("campaigns[%d].status", i), "must be one of ENABLED, PAUSED, REMOVED")
		}
	}
	if len(verr.Fields) > 0 {
		return &AuditError{Err: ErrInvalidRequest, Code: apiErrors.ErrValidation, Details: verr.Error(), Cause: verr}
	}

	if len(campaigns) == 0 {
		return NewAuditError(ErrNoCampaigns, apiErrors.ErrNoCampaigns, "No campaigns provided for audit")
	}

	return nil
}
