package auditing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/adpulse-api/internal/domain"
)

func campaigns(n int) []domain.CampaignRecord {
	out := make([]domain.CampaignRecord, n)
	for i := range out {
		out[i] = domain.CampaignRecord{
			ID:          fmt.Sprintf("%d", i+1),
			Name:        fmt.Sprintf("Campaign %02d", i+1),
			Status:      domain.CampaignStatusEnabled,
			DailyBudget: 50,
			Cost:        123.456,
			CTR:         0.0425,
			AvgCPC:      1.2,
		}
	}
	return out
}

func TestBuildQuickPrompt(t *testing.T) {
	tests := []struct {
		name      string
		campaigns []domain.CampaignRecord
		dateRange *domain.DateRange
		validate  func(t *testing.T, prompt string)
	}{
		{
			name:      "defaults to the last 30 days",
			campaigns: campaigns(1),
			validate: func(t *testing.T, prompt string) {
				assert.True(t, strings.HasPrefix(prompt, "Analyze the following campaign data from the last 30 days"))
				assert.Contains(t, prompt, `"budget": "$50.00/day"`)
				assert.Contains(t, prompt, `"spend": "$123.46"`)
				assert.Contains(t, prompt, `"ctr": "4.25%"`)
				assert.Contains(t, prompt, `"cpc": "$1.20"`)
				assert.Contains(t, prompt, "You are strictly required to output valid JSON")
			},
		},
		{
			name:      "explicit range is quoted",
			campaigns: campaigns(1),
			dateRange: &domain.DateRange{StartDate: "2025-01-01", EndDate: "2025-01-31"},
			validate: func(t *testing.T, prompt string) {
				assert.Contains(t, prompt, "campaign data from 2025-01-01 to 2025-01-31 and provide")
			},
		},
		{
			name:      "half-open range falls back to the default window",
			campaigns: campaigns(1),
			dateRange: &domain.DateRange{StartDate: "2025-01-01"},
			validate: func(t *testing.T, prompt string) {
				assert.Contains(t, prompt, "from the last 30 days")
			},
		},
		{
			name:      "campaign list is capped",
			campaigns: campaigns(60),
			validate: func(t *testing.T, prompt string) {
				assert.Contains(t, prompt, "Campaign 50")
				assert.NotContains(t, prompt, "Campaign 51")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := BuildQuickPrompt(tt.campaigns, tt.dateRange)
			require.NoError(t, err)
			tt.validate(t, prompt)
		})
	}
}

func TestBuildComprehensivePrompt(t *testing.T) {
	t.Run("sections carry the full total but only leading rows", func(t *testing.T) {
		set := domain.NewAggregateReportSet(campaigns(25))

		prompt, err := BuildComprehensivePrompt(set, nil, domain.LastNinetyDays)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(prompt, "Analysis period: Last 90 days\n\n"))
		assert.Contains(t, prompt, "\n## CAMPAIGNS (25)\n")
		assert.Contains(t, prompt, "Campaign 20")
		assert.NotContains(t, prompt, "Campaign 21")
		assert.True(t, strings.HasSuffix(prompt, "Format as clean Markdown."))
	})

	t.Run("empty reports render as empty arrays", func(t *testing.T) {
		set := domain.NewAggregateReportSet(campaigns(1))

		prompt, err := BuildComprehensivePrompt(set, nil, domain.LastNinetyDays)
		require.NoError(t, err)

		assert.Contains(t, prompt, "\n## CAMPAIGNS (1)\n")
		assert.Contains(t, prompt, "\n## GEOGRAPHIC PERFORMANCE (0)\n[]\n")
		assert.Contains(t, prompt, "\n## RECENT CHANGES (0)\n[]\n")
	})

	t.Run("explicit range wins over the window", func(t *testing.T) {
		dr := &domain.DateRange{StartDate: "2025-02-01", EndDate: "2025-02-28"}

		prompt, err := BuildComprehensivePrompt(domain.NewAggregateReportSet(nil), dr, domain.LastNinetyDays)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(prompt, "Analysis period: 2025-02-01 to 2025-02-28\n\n"))
	})

	t.Run("secondary rows are capped per section", func(t *testing.T) {
		set := domain.NewAggregateReportSet(nil)
		rows := make([]domain.Row, 30)
		for i := range rows {
			rows[i] = domain.SearchTerm{SearchTerm: fmt.Sprintf("term-%02d", i+1)}
		}
		set.Set(domain.ReportSearchTerms, rows)

		prompt, err := BuildComprehensivePrompt(set, nil, domain.LastThirtyDays)
		require.NoError(t, err)

		assert.Contains(t, prompt, "\n## TOP SEARCH TERMS (30)\n")
		assert.Contains(t, prompt, "term-15")
		assert.NotContains(t, prompt, "term-16")
	})

	t.Run("nil set behaves like an empty one", func(t *testing.T) {
		prompt, err := BuildComprehensivePrompt(nil, nil, domain.LastThirtyDays)
		require.NoError(t, err)
		assert.Contains(t, prompt, "\n## CAMPAIGNS (0)\n[]\n")
	})
}

func TestHead(t *testing.T) {
	assert.Equal(t, []int{}, head[int](nil, 5))
	assert.Equal(t, []int{1, 2}, head([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1}, head([]int{1}, 10))
}
