package googleads

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/adpulse-api/internal/domain"
)

var today = time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)

// Date literals accepted by GAQL after DURING.
var gaqlDuringLiterals = map[string]bool{
	"TODAY": true, "YESTERDAY": true,
	"LAST_7_DAYS": true, "LAST_14_DAYS": true, "LAST_30_DAYS": true,
	"LAST_BUSINESS_WEEK": true, "LAST_WEEK_SUN_SAT": true, "LAST_WEEK_MON_SUN": true,
	"THIS_WEEK_SUN_TODAY": true, "THIS_WEEK_MON_TODAY": true,
	"THIS_MONTH": true, "LAST_MONTH": true,
}

func TestDateClause(t *testing.T) {
	tests := []struct {
		name      string
		dateRange *domain.DateRange
		window    domain.Window
		want      string
	}{
		{
			name:      "explicit range is inclusive",
			dateRange: &domain.DateRange{StartDate: "2025-01-01", EndDate: "2025-01-31"},
			window:    domain.LastNinetyDays,
			want:      "segments.date BETWEEN '2025-01-01' AND '2025-01-31'",
		},
		{
			name:   "90 days becomes a range ending today",
			window: domain.LastNinetyDays,
			want:   "segments.date BETWEEN '2024-12-11' AND '2025-03-10'",
		},
		{
			name:   "14 days keeps the literal",
			window: domain.LastFourteenDays,
			want:   "segments.date DURING LAST_14_DAYS",
		},
		{
			name:      "half range uses the window",
			dateRange: &domain.DateRange{EndDate: "2025-01-31"},
			window:    domain.LastThirtyDays,
			want:      "segments.date DURING LAST_30_DAYS",
		},
		{
			name: "empty window defaults to 30 days",
			want: "segments.date DURING LAST_30_DAYS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateClause(tt.dateRange, tt.window, today))
		})
	}
}

func TestQueries_OnlyValidDuringLiterals(t *testing.T) {
	during := regexp.MustCompile(`DURING (\w+)`)

	for _, window := range []domain.Window{"", domain.LastFourteenDays, domain.LastThirtyDays, domain.LastNinetyDays} {
		queries := []string{BuildCampaignQuery(nil, window, today)}
		for _, kind := range domain.SecondaryReportKinds {
			query, err := BuildReportQuery(kind, nil, window, today)
			require.NoError(t, err)
			queries = append(queries, query)
		}

		for _, query := range queries {
			for _, m := range during.FindAllStringSubmatch(query, -1) {
				assert.True(t, gaqlDuringLiterals[m[1]], "window %q emitted DURING %s", window, m[1])
			}
		}
	}
}

func TestBuildCampaignQuery(t *testing.T) {
	query := BuildCampaignQuery(&domain.DateRange{StartDate: "2025-02-01", EndDate: "2025-02-10"}, domain.LastThirtyDays, today)

	assert.True(t, strings.HasPrefix(query, "SELECT"))
	assert.Contains(t, query, "WHERE segments.date BETWEEN '2025-02-01' AND '2025-02-10'")
	assert.Contains(t, query, "campaign.status != 'REMOVED'")
	assert.NotContains(t, query, dateClausePlaceholder)
}

func TestBuildReportQuery(t *testing.T) {
	dr := &domain.DateRange{StartDate: "2025-02-01", EndDate: "2025-02-10"}

	t.Run("every secondary kind has a query", func(t *testing.T) {
		for _, kind := range domain.SecondaryReportKinds {
			query, err := BuildReportQuery(kind, dr, domain.LastThirtyDays, today)
			require.NoError(t, err, kind)
			assert.NotContains(t, query, dateClausePlaceholder, kind)
		}
	})

	t.Run("ranged kinds honor the date range", func(t *testing.T) {
		query, err := BuildReportQuery(domain.ReportSearchTerms, dr, domain.LastThirtyDays, today)
		require.NoError(t, err)
		assert.Contains(t, query, "segments.date BETWEEN '2025-02-01' AND '2025-02-10'")
		assert.Contains(t, query, "LIMIT 200")
	})

	t.Run("snapshots ignore the date range", func(t *testing.T) {
		for _, kind := range []domain.ReportKind{
			domain.ReportQualityScores,
			domain.ReportConversionActions,
			domain.ReportNegativeKeywords,
			domain.ReportProductGroups,
			domain.ReportAssetGroups,
			domain.ReportChangeHistory,
		} {
			assert.True(t, IsSnapshot(kind), kind)

			query, err := BuildReportQuery(kind, dr, domain.LastThirtyDays, today)
			require.NoError(t, err)
			assert.NotContains(t, query, "segments.date", kind)
		}
	})

	t.Run("change history looks back 14 days", func(t *testing.T) {
		query, err := BuildReportQuery(domain.ReportChangeHistory, nil, domain.LastNinetyDays, today)
		require.NoError(t, err)
		assert.Contains(t, query, "DURING LAST_14_DAYS")
		assert.NotContains(t, query, "LAST_90_DAYS")
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := BuildReportQuery(domain.ReportAll, dr, domain.LastThirtyDays, today)
		assert.Error(t, err)
	})
}
