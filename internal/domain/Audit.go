package domain

import "time"

type AuditMode string

const (
	AuditModeQuick         AuditMode = "quick"
	AuditModeComprehensive AuditMode = "comprehensive"
)

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

type Recommendation struct {
	Priority Priority `json:"priority"`
	Category string   `json:"category"`
	Issue    string   `json:"issue"`
	Action   string   `json:"action"`
}

type AuditResult struct {
	Summary         string           `json:"summary"`
	Recommendations []Recommendation `json:"recommendations"`
	CleanReport     string           `json:"cleanReport"`
	GeneratedAt     time.Time        `json:"generatedAt"`
	CampaignCount   int              `json:"campaignCount"`
}

// Provider selects the language-model backend that writes the audit.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

func (p Provider) Valid() bool {
	return p == ProviderOpenAI || p == ProviderGemini
}

type QuickAuditRequest struct {
	Campaigns    []CampaignRecord `json:"campaigns"`
	Provider     Provider         `json:"provider,omitempty"`
	OpenAIAPIKey string           `json:"openaiApiKey"`
	GeminiAPIKey string           `json:"geminiApiKey,omitempty"`
	DateRange    *DateRange       `json:"dateRange,omitempty"`
}

// ComprehensiveAuditRequest carries either the reports already fetched by the
// client or the credentials to fetch them with. AllReports wins when both are set.
type ComprehensiveAuditRequest struct {
	AllReports   *AggregateReportSet `json:"allReports,omitempty"`
	Credentials  *Credentials        `json:"credentials,omitempty"`
	Provider     Provider            `json:"provider,omitempty"`
	OpenAIAPIKey string              `json:"openaiApiKey"`
	GeminiAPIKey string              `json:"geminiApiKey,omitempty"`
	DateRange    *DateRange          `json:"dateRange,omitempty"`
}

type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}
