package domain

// AggregateReportSet holds the campaign report and every secondary report
// for one account. A kind that could not be fetched holds an empty slice.
type AggregateReportSet struct {
	Campaigns         []CampaignRecord      `json:"campaigns"`
	Geographic        []GeoPerformance      `json:"geographic"`
	Devices           []DevicePerformance   `json:"devices"`
	SearchTerms       []SearchTerm          `json:"searchTerms"`
	QualityScores     []KeywordQualityScore `json:"qualityScores"`
	AuctionInsights   []AuctionInsight      `json:"auctionInsights"`
	ConversionActions []ConversionAction    `json:"conversionActions"`
	LandingPages      []LandingPage         `json:"landingPages"`
	ShoppingProducts  []ShoppingProduct     `json:"shoppingProducts"`
	ProductGroups     []ProductGroup        `json:"productGroups"`
	AssetGroups       []AssetGroup          `json:"assetGroups"`
	ChangeHistory     []ChangeEvent         `json:"changeHistory"`
	Keywords          []Keyword             `json:"keywords"`
	NegativeKeywords  []NegativeKeyword     `json:"negativeKeywords"`
}

func NewAggregateReportSet(campaigns []CampaignRecord) *AggregateReportSet {
	if campaigns == nil {
		campaigns = []CampaignRecord{}
	}

	set := &AggregateReportSet{Campaigns: campaigns}
	for _, kind := range SecondaryReportKinds {
		set.Set(kind, nil)
	}

	return set
}

// Set stores rows under kind. Rows belonging to another kind are skipped.
func (s *AggregateReportSet) Set(kind ReportKind, rows []Row) {
	switch kind {
	case ReportGeographic:
		s.Geographic = rowsOf[GeoPerformance](rows)
	case ReportDevices:
		s.Devices = rowsOf[DevicePerformance](rows)
	case ReportSearchTerms:
		s.SearchTerms = rowsOf[SearchTerm](rows)
	case ReportQualityScores:
		s.QualityScores = rowsOf[KeywordQualityScore](rows)
	case ReportAuctionInsights:
		s.AuctionInsights = rowsOf[AuctionInsight](rows)
	case ReportConversionActions:
		s.ConversionActions = rowsOf[ConversionAction](rows)
	case ReportLandingPages:
		s.LandingPages = rowsOf[LandingPage](rows)
	case ReportShoppingProducts:
		s.ShoppingProducts = rowsOf[ShoppingProduct](rows)
	case ReportProductGroups:
		s.ProductGroups = rowsOf[ProductGroup](rows)
	case ReportAssetGroups:
		s.AssetGroups = rowsOf[AssetGroup](rows)
	case ReportChangeHistory:
		s.ChangeHistory = rowsOf[ChangeEvent](rows)
	case ReportKeywords:
		s.Keywords = rowsOf[Keyword](rows)
	case ReportNegativeKeywords:
		s.NegativeKeywords = rowsOf[NegativeKeyword](rows)
	}
}

// Rows returns the rows stored under kind.
func (s *AggregateReportSet) Rows(kind ReportKind) []Row {
	switch kind {
	case ReportGeographic:
		return asRows(s.Geographic)
	case ReportDevices:
		return asRows(s.Devices)
	case ReportSearchTerms:
		return asRows(s.SearchTerms)
	case ReportQualityScores:
		return asRows(s.QualityScores)
	case ReportAuctionInsights:
		return asRows(s.AuctionInsights)
	case ReportConversionActions:
		return asRows(s.ConversionActions)
	case ReportLandingPages:
		return asRows(s.LandingPages)
	case ReportShoppingProducts:
		return asRows(s.ShoppingProducts)
	case ReportProductGroups:
		return asRows(s.ProductGroups)
	case ReportAssetGroups:
		return asRows(s.AssetGroups)
	case ReportChangeHistory:
		return asRows(s.ChangeHistory)
	case ReportKeywords:
		return asRows(s.Keywords)
	case ReportNegativeKeywords:
		return asRows(s.NegativeKeywords)
	}

	return []Row{}
}

// Counts reports the number of rows held per kind, campaigns included.
func (s *AggregateReportSet) Counts() map[string]int {
	counts := map[string]int{"campaigns": len(s.Campaigns)}
	for _, kind := range SecondaryReportKinds {
		counts[string(kind)] = len(s.Rows(kind))
	}

	return counts
}

func rowsOf[T Row](rows []Row) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if typed, ok := row.(T); ok {
			out = append(out, typed)
		}
	}

	return out
}

func asRows[T Row](rows []T) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, row)
	}

	return out
}
