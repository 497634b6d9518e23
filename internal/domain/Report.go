package domain

import "fmt"

// ReportKind identifies one of the secondary reports. The value is the URL
// name used by the reports endpoints.
type ReportKind string

const (
	ReportGeographic        ReportKind = "geographic"
	ReportDevices           ReportKind = "devices"
	ReportSearchTerms       ReportKind = "search-terms"
	ReportQualityScores     ReportKind = "quality-scores"
	ReportAuctionInsights   ReportKind = "auction-insights"
	ReportConversionActions ReportKind = "conversion-actions"
	ReportLandingPages      ReportKind = "landing-pages"
	ReportKeywords          ReportKind = "keywords"
	ReportNegativeKeywords  ReportKind = "negative-keywords"
	ReportShoppingProducts  ReportKind = "shopping-products"
	ReportProductGroups     ReportKind = "product-groups"
	ReportAssetGroups       ReportKind = "asset-groups"
	ReportChangeHistory     ReportKind = "change-history"

	// ReportAll is not a report of its own; it asks for the whole aggregate.
	ReportAll ReportKind = "all"
)

// SecondaryReportKinds lists every report fetched next to the campaign report.
var SecondaryReportKinds = []ReportKind{
	ReportGeographic,
	ReportDevices,
	ReportSearchTerms,
	ReportQualityScores,
	ReportAuctionInsights,
	ReportConversionActions,
	ReportLandingPages,
	ReportKeywords,
	ReportNegativeKeywords,
	ReportShoppingProducts,
	ReportProductGroups,
	ReportAssetGroups,
	ReportChangeHistory,
}

func ParseReportKind(s string) (ReportKind, error) {
	for _, kind := range SecondaryReportKinds {
		if string(kind) == s {
			return kind, nil
		}
	}

	return "", fmt.Errorf("unknown report kind %q", s)
}

// Row is implemented by every normalized secondary report record.
type Row interface {
	Kind() ReportKind
}

type GeoPerformance struct {
	CountryCode  string  `json:"countryCode"`
	CampaignName string  `json:"campaignName"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	Cost         float64 `json:"cost"`
	Conversions  float64 `json:"conversions"`
}

type DevicePerformance struct {
	Device         string  `json:"device"`
	CampaignName   string  `json:"campaignName"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Cost           float64 `json:"cost"`
	Conversions    float64 `json:"conversions"`
	ConversionRate float64 `json:"conversionRate"`
}

type SearchTerm struct {
	SearchTerm   string  `json:"searchTerm"`
	CampaignName string  `json:"campaignName"`
	MatchType    string  `json:"matchType"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	Conversions  float64 `json:"conversions"`
	Cost         float64 `json:"cost"`
}

type KeywordQualityScore struct {
	Keyword               string `json:"keyword"`
	AdGroupName           string `json:"adGroupName"`
	QualityScore          int64  `json:"qualityScore"`
	ExpectedCTR           string `json:"expectedCtr"`
	AdRelevance           string `json:"adRelevance"`
	LandingPageExperience string `json:"landingPageExperience"`
}

type AuctionInsight struct {
	CampaignName    string  `json:"campaignName"`
	ImpressionShare float64 `json:"impressionShare"`
	LostISRank      float64 `json:"lostIsRank"`
	LostISBudget    float64 `json:"lostIsBudget"`
}

type ConversionAction struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	CountingType     string `json:"countingType"`
	AttributionModel string `json:"attributionModel"`
}

type LandingPage struct {
	URL            string  `json:"url"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    float64 `json:"conversions"`
	ConversionRate float64 `json:"conversionRate"`
}

type ShoppingProduct struct {
	ProductID    string  `json:"productId"`
	ProductTitle string  `json:"productTitle"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	Conversions  float64 `json:"conversions"`
	Cost         float64 `json:"cost"`
}

type ProductGroup struct {
	CampaignName     string  `json:"campaignName"`
	AdGroupName      string  `json:"adGroupName"`
	ListingGroupType string  `json:"listingGroupType"`
	CPCBid           float64 `json:"cpcBid"`
}

type AssetGroup struct {
	CampaignName   string `json:"campaignName"`
	AssetGroupName string `json:"assetGroupName"`
	Status         string `json:"status"`
}

type ChangeEvent struct {
	ChangeDateTime string `json:"changeDateTime"`
	ResourceType   string `json:"resourceType"`
	UserEmail      string `json:"userEmail"`
	ChangedFields  string `json:"changedFields"`
}

type Keyword struct {
	Keyword      string  `json:"keyword"`
	AdGroupName  string  `json:"adGroupName"`
	CampaignName string  `json:"campaignName"`
	MatchType    string  `json:"matchType"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	Conversions  float64 `json:"conversions"`
	Cost         float64 `json:"cost"`
}

type NegativeKeyword struct {
	Keyword      string `json:"keyword"`
	CampaignName string `json:"campaignName"`
	MatchType    string `json:"matchType"`
}

func (GeoPerformance) Kind() ReportKind      { return ReportGeographic }
func (DevicePerformance) Kind() ReportKind   { return ReportDevices }
func (SearchTerm) Kind() ReportKind          { return ReportSearchTerms }
func (KeywordQualityScore) Kind() ReportKind { return ReportQualityScores }
func (AuctionInsight) Kind() ReportKind      { return ReportAuctionInsights }
func (ConversionAction) Kind() ReportKind    { return ReportConversionActions }
func (LandingPage) Kind() ReportKind         { return ReportLandingPages }
func (ShoppingProduct) Kind() ReportKind     { return ReportShoppingProducts }
func (ProductGroup) Kind() ReportKind        { return ReportProductGroups }
func (AssetGroup) Kind() ReportKind          { return ReportAssetGroups }
func (ChangeEvent) Kind() ReportKind         { return ReportChangeHistory }
func (Keyword) Kind() ReportKind             { return ReportKeywords }
func (NegativeKeyword) Kind() ReportKind     { return ReportNegativeKeywords }

type ReportResult struct {
	Report    ReportKind `json:"report"`
	Results   []Row      `json:"results"`
	Count     int        `json:"count"`
	FetchedAt string     `json:"fetchedAt"`
}

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
