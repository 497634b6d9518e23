package domain

type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "ENABLED"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusRemoved CampaignStatus = "REMOVED"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusEnabled, CampaignStatusPaused, CampaignStatusRemoved:
		return true
	}

	return false
}

type CampaignRecord struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Status              CampaignStatus `json:"status"`
	ChannelType         string         `json:"channelType"`
	BiddingStrategyType string         `json:"biddingStrategyType"`
	DailyBudget         float64        `json:"dailyBudget"`
	TotalBudget         float64        `json:"totalBudget"`
	TargetCPA           *float64       `json:"targetCpa"`
	TargetROAS          *float64       `json:"targetRoas"`
	Impressions         int64          `json:"impressions"`
	Clicks              int64          `json:"clicks"`
	Cost                float64        `json:"cost"`
	Conversions         float64        `json:"conversions"`
	ConversionsValue    float64        `json:"conversionsValue"`
	ConversionRate      float64        `json:"conversionRate"`
	CTR                 float64        `json:"ctr"`
	AvgCPC              float64        `json:"avgCpc"`
}

type CampaignsResult struct {
	Campaigns []CampaignRecord `json:"campaigns"`
	FetchedAt string           `json:"fetchedAt"`
	Count     int              `json:"count"`
}
