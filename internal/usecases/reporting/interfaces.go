package reporting

import (
	"context"

	"github.com/vfg2006/adpulse-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// AdsIntegrator is the slice of the Google Ads integration the reports need
type AdsIntegrator interface {
	ExchangeToken(ctx context.Context, creds domain.Credentials) (*domain.AccessToken, error)
	GetCampaigns(ctx context.Context, token *domain.AccessToken, creds domain.Credentials, window domain.Window) ([]domain.CampaignRecord, error)
	GetReport(ctx context.Context, token *domain.AccessToken, creds domain.Credentials, kind domain.ReportKind, window domain.Window) ([]domain.Row, error)
}

// Reporter serves token exchange, single reports and the full aggregate
type Reporter interface {
	ExchangeToken(ctx context.Context, creds domain.Credentials) (*domain.AccessToken, error)
	GetCampaigns(ctx context.Context, creds domain.Credentials) (*domain.CampaignsResult, error)
	GetReport(ctx context.Context, creds domain.Credentials, kind domain.ReportKind) (*domain.ReportResult, error)

	// FetchAll exchanges the token once, fetches campaigns, then every
	// secondary report concurrently. A failed secondary report is logged and
	// left empty; a failed token exchange or campaign fetch aborts.
	FetchAll(ctx context.Context, creds domain.Credentials, window domain.Window) (*domain.AggregateReportSet, error)
}
