package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAggregateReportSet(t *testing.T) {
	set := NewAggregateReportSet(nil)

	assert.NotNil(t, set.Campaigns)
	for _, kind := range SecondaryReportKinds {
		rows := set.Rows(kind)
		assert.NotNil(t, rows, kind)
		assert.Empty(t, rows, kind)
	}

	counts := set.Counts()
	assert.Len(t, counts, len(SecondaryReportKinds)+1)
	assert.Zero(t, counts["campaigns"])
}

func TestAggregateReportSet_SetRows(t *testing.T) {
	set := NewAggregateReportSet([]CampaignRecord{{ID: "1"}})

	set.Set(ReportDevices, []Row{
		DevicePerformance{Device: "MOBILE"},
		GeoPerformance{CountryCode: "2076"},
		DevicePerformance{Device: "TABLET"},
	})

	require.Len(t, set.Devices, 2)
	assert.Equal(t, "TABLET", set.Devices[1].Device)
	assert.Equal(t, []Row{DevicePerformance{Device: "MOBILE"}, DevicePerformance{Device: "TABLET"}}, set.Rows(ReportDevices))

	set.Set(ReportDevices, nil)
	assert.NotNil(t, set.Devices)
	assert.Empty(t, set.Devices)

	assert.Equal(t, []Row{}, set.Rows(ReportAll))
}

func TestParseReportKind(t *testing.T) {
	kind, err := ParseReportKind("change-history")
	require.NoError(t, err)
	assert.Equal(t, ReportChangeHistory, kind)

	_, err = ParseReportKind("all")
	assert.Error(t, err)
}

func TestRowKinds(t *testing.T) {
	rows := []Row{
		GeoPerformance{}, DevicePerformance{}, SearchTerm{}, KeywordQualityScore{},
		AuctionInsight{}, ConversionAction{}, LandingPage{}, Keyword{}, NegativeKeyword{},
		ShoppingProduct{}, ProductGroup{}, AssetGroup{}, ChangeEvent{},
	}

	kinds := make([]ReportKind, 0, len(rows))
	for _, r := range rows {
		kinds = append(kinds, r.Kind())
	}
	assert.Equal(t, SecondaryReportKinds, kinds)
}

func TestEnumValid(t *testing.T) {
	assert.True(t, CampaignStatusEnabled.Valid())
	assert.True(t, CampaignStatusRemoved.Valid())
	assert.False(t, CampaignStatus("UNKNOWN").Valid())
	assert.True(t, ProviderOpenAI.Valid())
	assert.True(t, ProviderGemini.Valid())
	assert.False(t, Provider("claude").Valid())
}
