package auditing

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/pkg/utils"
)

const (
	quickSystemPrompt         = "You are an expert Google Ads auditor. You answer strictly in JSON."
	comprehensiveSystemPrompt = "You are a senior Google Ads strategist. Analyze all the data provided and create a comprehensive audit report with actionable recommendations."

	quickPromptCampaignLimit = 50
)

type campaignSummary struct {
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Type        string  `json:"type"`
	Bidding     string  `json:"bidding"`
	Budget      string  `json:"budget"`
	Spend       string  `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         string  `json:"ctr"`
	Conversions float64 `json:"conversions"`
	CPC         string  `json:"cpc"`
}

func summarizeCampaign(c domain.CampaignRecord, _ int) campaignSummary {
	return campaignSummary{
		Name:        c.Name,
		Status:      string(c.Status),
		Type:        c.ChannelType,
		Bidding:     c.BiddingStrategyType,
		Budget:      fmt.Sprintf("$%.2f/day", c.DailyBudget),
		Spend:       fmt.Sprintf("$%.2f", c.Cost),
		Impressions: c.Impressions,
		Clicks:      c.Clicks,
		CTR:         fmt.Sprintf("%.2f%%", c.CTR*100),
		Conversions: c.Conversions,
		CPC:         fmt.Sprintf("$%.2f", c.AvgCPC),
	}
}

// BuildQuickPrompt asks for a JSON answer shaped like AuditResult.
func BuildQuickPrompt(campaigns []domain.CampaignRecord, dateRange *domain.DateRange) (string, error) {
	summary := lo.Map(head(campaigns, quickPromptCampaignLimit), summarizeCampaign)

	data, err := utils.PrettyJSON(summary)
	if err != nil {
		return "", err
	}

	dateContext := "from the last 30 days"
	if dateRange != nil && dateRange.StartDate != "" && dateRange.EndDate != "" {
		dateContext = fmt.Sprintf("from %s to %s", dateRange.StartDate, dateRange.EndDate)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the following campaign data %s and provide optimization recommendations.\n\n", dateContext)
	fmt.Fprintf(&b, "## Campaign Data\n%s\n\n", data)
	b.WriteString(`## Output Format
You are strictly required to output valid JSON matching this schema:
{
  "summary": "Executive summary string...",
  "recommendations": [
    {
      "priority": "HIGH" | "MEDIUM" | "LOW",
      "category": "string",
      "issue": "string",
      "action": "string"
    }
  ],
  "cleanReport": "Markdown string..."
}

## Your Task
1. Provide an executive summary (2-3 sentences) of overall account health.
2. Identify performance bottlenecks and issues.
3. Generate actionable, prioritized recommendations.
4. Create a clean Markdown report in the 'cleanReport' field.

Focus on:
- Low-performing campaigns (high spend, low conversions)
- CTR optimization opportunities
- Budget allocation improvements
- Bidding strategy recommendations
- Channel type effectiveness
`)

	return b.String(), nil
}

type promptSection struct {
	title string
	total int
	rows  any
}

func section[T any](title string, rows []T, limit int) promptSection {
	return promptSection{title: title, total: len(rows), rows: head(rows, limit)}
}

func comprehensiveSections(set *domain.AggregateReportSet) []promptSection {
	return []promptSection{
		section("CAMPAIGNS", set.Campaigns, 20),
		section("GEOGRAPHIC PERFORMANCE", set.Geographic, 10),
		section("DEVICE PERFORMANCE", set.Devices, 10),
		section("TOP SEARCH TERMS", set.SearchTerms, 15),
		section("TOP KEYWORDS", set.Keywords, 15),
		section("NEGATIVE KEYWORDS", set.NegativeKeywords, 10),
		section("QUALITY SCORES", set.QualityScores, 10),
		section("AUCTION INSIGHTS", set.AuctionInsights, 10),
		section("CONVERSION ACTIONS", set.ConversionActions, 20),
		section("LANDING PAGES", set.LandingPages, 10),
		section("SHOPPING PRODUCTS", set.ShoppingProducts, 10),
		section("PRODUCT GROUPS", set.ProductGroups, 10),
		section("ASSET GROUPS", set.AssetGroups, 10),
		section("RECENT CHANGES", set.ChangeHistory, 10),
	}
}

const comprehensiveTasks = `---

Please provide a comprehensive audit covering:
1. **Executive Summary** - Overall account health
2. **Campaign Analysis** - Strengths and weaknesses
3. **Geographic Insights** - Where to focus/reduce spend
4. **Device Performance** - Mobile vs Desktop optimization
5. **Search Term Analysis** - Keywords to add as negatives, opportunities
6. **Quality Score Issues** - Low QS keywords to fix
7. **Competitive Position** - Auction insights assessment
8. **Conversion Tracking** - Attribution recommendations
9. **Landing Page Performance** - Pages needing optimization
10. **Top 5 Priority Actions** - Most impactful next steps

Format as clean Markdown.`

// BuildComprehensivePrompt embeds the leading rows of every report under a
// "## TITLE (total)" heading, so the prompt size stays bounded whatever the
// account size.
func BuildComprehensivePrompt(set *domain.AggregateReportSet, dateRange *domain.DateRange, window domain.Window) (string, error) {
	if set == nil {
		set = domain.NewAggregateReportSet(nil)
	}

	var b strings.Builder
	if dateRange != nil && dateRange.StartDate != "" && dateRange.EndDate != "" {
		fmt.Fprintf(&b, "Analysis period: %s to %s\n\n", dateRange.StartDate, dateRange.EndDate)
	} else {
		fmt.Fprintf(&b, "Analysis period: %s\n\n", window.Label())
	}

	for _, s := range comprehensiveSections(set) {
		data, err := utils.PrettyJSON(s.rows)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "\n## %s (%d)\n%s\n", s.title, s.total, data)
	}

	b.WriteString("\n")
	b.WriteString(comprehensiveTasks)

	return b.String(), nil
}

// head returns at most n leading rows, never nil.
func head[T any](rows []T, n int) []T {
	out := lo.Slice(rows, 0, n)
	if out == nil {
		return []T{}
	}
	return out
}
