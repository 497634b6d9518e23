package googleads

import (
	adsdomain "github.com/vfg2006/adpulse-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/adpulse-api/internal/domain"
)

// Matched search terms are not projected by the search term query.
const searchTermMatchType = "N/A"

var (
	pathImpressions = []string{"metrics", "impressions"}
	pathClicks      = []string{"metrics", "clicks"}
	pathConversions = []string{"metrics", "conversions"}
	pathCostMicros  = []string{"metrics", "costMicros"}
	pathCampaign    = []string{"campaign", "name"}
	pathAdGroup     = []string{"adGroup", "name"}
)

func FactoryCampaign(r adsdomain.Row) domain.CampaignRecord {
	status := domain.CampaignStatus(r.StringOr(string(domain.CampaignStatusRemoved), "campaign", "status"))

	return domain.CampaignRecord{
		ID:                  r.String("campaign", "id"),
		Name:                r.String("campaign", "name"),
		Status:              status,
		ChannelType:         r.Enum("campaign", "advertisingChannelType"),
		BiddingStrategyType: r.Enum("campaign", "biddingStrategyType"),
		DailyBudget:         r.Micros("campaignBudget", "amountMicros"),
		TotalBudget:         r.Micros("campaignBudget", "totalAmountMicros"),
		TargetCPA: r.FirstMicros(
			[]string{"campaign", "targetCpa", "targetCpaMicros"},
			[]string{"campaign", "maximizeConversions", "targetCpaMicros"},
		),
		TargetROAS: r.FirstFloat(
			[]string{"campaign", "targetRoas", "targetRoas"},
			[]string{"campaign", "maximizeConversionValue", "targetRoas"},
		),
		Impressions:      r.Int(pathImpressions...),
		Clicks:           r.Int(pathClicks...),
		Cost:             r.Micros(pathCostMicros...),
		Conversions:      r.Float(pathConversions...),
		ConversionsValue: r.Float("metrics", "conversionsValue"),
		ConversionRate:   r.Ratio(pathConversions, pathClicks),
		CTR:              r.Float("metrics", "ctr"),
		AvgCPC:           r.Micros("metrics", "averageCpc"),
	}
}

func FactoryGeoPerformance(r adsdomain.Row) domain.Row {
	return domain.GeoPerformance{
		CountryCode:  r.Enum("userLocationView", "countryCriterionId"),
		CampaignName: r.String(pathCampaign...),
		Impressions:  r.Int(pathImpressions...),
		Clicks:       r.Int(pathClicks...),
		Cost:         r.Micros(pathCostMicros...),
		Conversions:  r.Float(pathConversions...),
	}
}

// FactoryDevicePerformance reports conversion rate as a percentage.
func FactoryDevicePerformance(r adsdomain.Row) domain.Row {
	return domain.DevicePerformance{
		Device:         r.Enum("segments", "device"),
		CampaignName:   r.String(pathCampaign...),
		Impressions:    r.Int(pathImpressions...),
		Clicks:         r.Int(pathClicks...),
		Cost:           r.Micros(pathCostMicros...),
		Conversions:    r.Float(pathConversions...),
		ConversionRate: r.Ratio(pathConversions, pathClicks) * 100,
	}
}

func FactorySearchTerm(r adsdomain.Row) domain.Row {
	return domain.SearchTerm{
		SearchTerm:   r.String("searchTermView", "searchTerm"),
		CampaignName: r.String(pathCampaign...),
		MatchType:    searchTermMatchType,
		Impressions:  r.Int(pathImpressions...),
		Clicks:       r.Int(pathClicks...),
		Conversions:  r.Float(pathConversions...),
		Cost:         r.Micros(pathCostMicros...),
	}
}

func FactoryKeywordQualityScore(r adsdomain.Row) domain.Row {
	return domain.KeywordQualityScore{
		Keyword:               r.String("adGroupCriterion", "keyword", "text"),
		AdGroupName:           r.String(pathAdGroup...),
		QualityScore:          r.Int("adGroupCriterion", "qualityInfo", "qualityScore"),
		ExpectedCTR:           r.Enum("adGroupCriterion", "qualityInfo", "searchPredictedCtr"),
		AdRelevance:           r.Enum("adGroupCriterion", "qualityInfo", "creativeQualityScore"),
		LandingPageExperience: r.Enum("adGroupCriterion", "qualityInfo", "postClickQualityScore"),
	}
}

func FactoryAuctionInsight(r adsdomain.Row) domain.Row {
	return domain.AuctionInsight{
		CampaignName:    r.String(pathCampaign...),
		ImpressionShare: r.Float("metrics", "searchImpressionShare"),
		LostISRank:      r.Float("metrics", "searchRankLostImpressionShare"),
		LostISBudget:    r.Float("metrics", "searchBudgetLostImpressionShare"),
	}
}

func FactoryConversionAction(r adsdomain.Row) domain.Row {
	return domain.ConversionAction{
		Name:             r.String("conversionAction", "name"),
		Type:             r.Enum("conversionAction", "type"),
		CountingType:     r.Enum("conversionAction", "countingType"),
		AttributionModel: r.Enum("conversionAction", "attributionModelSettings", "attributionModel"),
	}
}

// FactoryLandingPage reports conversion rate as a fraction.
func FactoryLandingPage(r adsdomain.Row) domain.Row {
	return domain.LandingPage{
		URL:            r.String("landingPageView", "unexpandedFinalUrl"),
		Impressions:    r.Int(pathImpressions...),
		Clicks:         r.Int(pathClicks...),
		Conversions:    r.Float(pathConversions...),
		ConversionRate: r.Ratio(pathConversions, pathClicks),
	}
}

func FactoryKeyword(r adsdomain.Row) domain.Row {
	return domain.Keyword{
		Keyword:      r.String("adGroupCriterion", "keyword", "text"),
		AdGroupName:  r.String(pathAdGroup...),
		CampaignName: r.String(pathCampaign...),
		MatchType:    r.Enum("adGroupCriterion", "keyword", "matchType"),
		Impressions:  r.Int(pathImpressions...),
		Clicks:       r.Int(pathClicks...),
		Conversions:  r.Float(pathConversions...),
		Cost:         r.Micros(pathCostMicros...),
	}
}

func FactoryNegativeKeyword(r adsdomain.Row) domain.Row {
	return domain.NegativeKeyword{
		Keyword:      r.String("campaignCriterion", "keyword", "text"),
		CampaignName: r.String(pathCampaign...),
		MatchType:    r.Enum("campaignCriterion", "keyword", "matchType"),
	}
}

func FactoryShoppingProduct(r adsdomain.Row) domain.Row {
	return domain.ShoppingProduct{
		ProductID:    r.String("segments", "productItemId"),
		ProductTitle: r.String("segments", "productTitle"),
		Impressions:  r.Int(pathImpressions...),
		Clicks:       r.Int(pathClicks...),
		Conversions:  r.Float(pathConversions...),
		Cost:         r.Micros(pathCostMicros...),
	}
}

func FactoryProductGroup(r adsdomain.Row) domain.Row {
	return domain.ProductGroup{
		CampaignName:     r.String(pathCampaign...),
		AdGroupName:      r.String(pathAdGroup...),
		ListingGroupType: r.Enum("adGroupCriterion", "listingGroup", "type"),
		CPCBid:           r.Micros("adGroupCriterion", "cpcBidMicros"),
	}
}

func FactoryAssetGroup(r adsdomain.Row) domain.Row {
	return domain.AssetGroup{
		CampaignName:   r.String(pathCampaign...),
		AssetGroupName: r.String("assetGroup", "name"),
		Status:         r.Enum("assetGroup", "status"),
	}
}

func FactoryChangeEvent(r adsdomain.Row) domain.Row {
	return domain.ChangeEvent{
		ChangeDateTime: r.String("changeEvent", "changeDateTime"),
		ResourceType:   r.Enum("changeEvent", "changeResourceType"),
		UserEmail:      r.String("changeEvent", "userEmail"),
		ChangedFields:  r.String("changeEvent", "changedFields"),
	}
}

var rowFactories = map[domain.ReportKind]func(adsdomain.Row) domain.Row{
	domain.ReportGeographic:        FactoryGeoPerformance,
	domain.ReportDevices:           FactoryDevicePerformance,
	domain.ReportSearchTerms:       FactorySearchTerm,
	domain.ReportQualityScores:     FactoryKeywordQualityScore,
	domain.ReportAuctionInsights:   FactoryAuctionInsight,
	domain.ReportConversionActions: FactoryConversionAction,
	domain.ReportLandingPages:      FactoryLandingPage,
	domain.ReportKeywords:          FactoryKeyword,
	domain.ReportNegativeKeywords:  FactoryNegativeKeyword,
	domain.ReportShoppingProducts:  FactoryShoppingProduct,
	domain.ReportProductGroups:     FactoryProductGroup,
	domain.ReportAssetGroups:       FactoryAssetGroup,
	domain.ReportChangeHistory:     FactoryChangeEvent,
}
