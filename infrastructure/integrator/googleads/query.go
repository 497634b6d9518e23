package googleads

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/pkg/utils"
)

const dateClausePlaceholder = "{{DATE_CLAUSE}}"

const campaignQuery = `
SELECT
  campaign.id, campaign.name, campaign.status,
  campaign.advertising_channel_type, campaign_budget.amount_micros,
  campaign_budget.total_amount_micros,
  campaign.bidding_strategy_type,
  campaign.target_cpa.target_cpa_micros,
  campaign.maximize_conversions.target_cpa_micros,
  campaign.target_roas.target_roas,
  campaign.maximize_conversion_value.target_roas,
  metrics.impressions, metrics.clicks, metrics.cost_micros,
  metrics.conversions, metrics.conversions_value,
  metrics.ctr, metrics.average_cpc
FROM campaign
WHERE {{DATE_CLAUSE}}
AND campaign.status != 'REMOVED'`

// Queries for the secondary reports. Those without the date placeholder are
// snapshots and ignore any requested range.
var reportQueries = map[domain.ReportKind]string{
	domain.ReportGeographic: `
SELECT
  campaign.name,
  user_location_view.country_criterion_id,
  metrics.impressions,
  metrics.clicks,
  metrics.conversions,
  metrics.cost_micros
FROM user_location_view
WHERE {{DATE_CLAUSE}}`,

	domain.ReportDevices: `
SELECT
  campaign.name,
  segments.device,
  metrics.impressions,
  metrics.clicks,
  metrics.conversions,
  metrics.cost_micros
FROM campaign
WHERE {{DATE_CLAUSE}}
AND campaign.status != 'REMOVED'`,

	domain.ReportSearchTerms: `
SELECT
  search_term_view.search_term,
  campaign.name,
  metrics.impressions,
  metrics.clicks,
  metrics.conversions,
  metrics.cost_micros
FROM search_term_view
WHERE {{DATE_CLAUSE}}
ORDER BY metrics.impressions DESC
LIMIT 200`,

	domain.ReportQualityScores: `
SELECT
  campaign.name,
  ad_group.name,
  ad_group_criterion.keyword.text,
  ad_group_criterion.quality_info.quality_score,
  ad_group_criterion.quality_info.creative_quality_score,
  ad_group_criterion.quality_info.search_predicted_ctr,
  ad_group_criterion.quality_info.post_click_quality_score
FROM keyword_view
WHERE ad_group_criterion.status = 'ENABLED'
AND ad_group_criterion.quality_info.quality_score IS NOT NULL
LIMIT 50`,

	domain.ReportAuctionInsights: `
SELECT
  campaign.name,
  metrics.search_impression_share,
  metrics.search_rank_lost_impression_share,
  metrics.search_budget_lost_impression_share,
  metrics.impressions,
  metrics.clicks
FROM campaign
WHERE {{DATE_CLAUSE}}
AND campaign.status = 'ENABLED'
AND campaign.advertising_channel_type = 'SEARCH'`,

	domain.ReportConversionActions: `
SELECT
  conversion_action.name,
  conversion_action.type,
  conversion_action.status,
  conversion_action.category,
  conversion_action.counting_type,
  conversion_action.attribution_model_settings.attribution_model
FROM conversion_action
WHERE conversion_action.status = 'ENABLED'`,

	domain.ReportLandingPages: `
SELECT
  landing_page_view.unexpanded_final_url,
  metrics.impressions,
  metrics.clicks,
  metrics.conversions
FROM landing_page_view
WHERE {{DATE_CLAUSE}}
ORDER BY metrics.clicks DESC
LIMIT 50`,

	domain.ReportKeywords: `
SELECT
  campaign.name,
  ad_group.name,
  ad_group_criterion.keyword.text,
  ad_group_criterion.keyword.match_type,
  metrics.impressions,
  metrics.clicks,
  metrics.conversions,
  metrics.cost_micros
FROM keyword_view
WHERE {{DATE_CLAUSE}}
ORDER BY metrics.impressions DESC
LIMIT 100`,

	domain.ReportNegativeKeywords: `
SELECT
  campaign.name,
  campaign_criterion.keyword.text,
  campaign_criterion.keyword.match_type
FROM campaign_criterion
WHERE campaign_criterion.type = 'KEYWORD'
AND campaign_criterion.negative = TRUE`,

	domain.ReportShoppingProducts: `
SELECT
  segments.product_item_id,
  segments.product_title,
  metrics.impressions,
  metrics.clicks,
  metrics.conversions,
  metrics.cost_micros
FROM shopping_performance_view
WHERE {{DATE_CLAUSE}}
ORDER BY metrics.impressions DESC
LIMIT 50`,

	domain.ReportProductGroups: `
SELECT
  campaign.name,
  ad_group.name,
  ad_group_criterion.listing_group.type,
  ad_group_criterion.cpc_bid_micros
FROM ad_group_criterion
WHERE ad_group_criterion.type = 'LISTING_GROUP'
AND ad_group_criterion.status != 'REMOVED'`,

	domain.ReportAssetGroups: `
SELECT
  campaign.name,
  asset_group.name,
  asset_group.status
FROM asset_group
WHERE asset_group.status != 'REMOVED'`,

	// Change history is capped by the API at a trailing window, so the
	// requested range does not apply.
	domain.ReportChangeHistory: `
SELECT
  change_event.change_date_time,
  change_event.change_resource_type,
  change_event.user_email,
  change_event.changed_fields
FROM change_event
WHERE change_event.change_date_time DURING LAST_14_DAYS
ORDER BY change_event.change_date_time DESC
LIMIT 50`,
}

// duringLiterals are the windows GAQL accepts after DURING. Any other window
// is rendered as an explicit range ending today.
var duringLiterals = map[domain.Window]bool{
	domain.LastFourteenDays: true,
	domain.LastThirtyDays:   true,
}

// DateClause renders the segments.date predicate: an inclusive BETWEEN when
// both bounds are set, otherwise the trailing window ending on today.
func DateClause(dateRange *domain.DateRange, window domain.Window, today time.Time) string {
	if dateRange != nil && dateRange.StartDate != "" && dateRange.EndDate != "" {
		return between(dateRange.StartDate, dateRange.EndDate)
	}

	if window == "" {
		window = domain.LastThirtyDays
	}

	if duringLiterals[window] {
		return fmt.Sprintf("segments.date DURING %s", window)
	}

	start := today.AddDate(0, 0, 1-window.Days())
	return between(utils.FormatDate(start), utils.FormatDate(today))
}

func between(start, end string) string {
	return fmt.Sprintf("segments.date BETWEEN '%s' AND '%s'", start, end)
}

func BuildCampaignQuery(dateRange *domain.DateRange, window domain.Window, today time.Time) string {
	return render(campaignQuery, DateClause(dateRange, window, today))
}

func BuildReportQuery(kind domain.ReportKind, dateRange *domain.DateRange, window domain.Window, today time.Time) (string, error) {
	query, ok := reportQueries[kind]
	if !ok {
		return "", fmt.Errorf("no query for report kind %q", kind)
	}

	return render(query, DateClause(dateRange, window, today)), nil
}

// IsSnapshot reports whether kind ignores the requested date range.
func IsSnapshot(kind domain.ReportKind) bool {
	return !strings.Contains(reportQueries[kind], dateClausePlaceholder)
}

func render(query, dateClause string) string {
	return strings.TrimSpace(strings.ReplaceAll(query, dateClausePlaceholder, dateClause))
}
