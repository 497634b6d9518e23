package googleads

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/adpulse-api/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/adpulse-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/adpulse-api/internal/domain"
)

type GoogleAdsIntegrator struct {
	Client adsclient.Client
	now    func() time.Time
}

func New(client adsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		Client: client,
		now:    time.Now,
	}
}

func (s *GoogleAdsIntegrator) ExchangeToken(ctx context.Context, creds domain.Credentials) (*domain.AccessToken, error) {
	return s.Client.ExchangeToken(ctx, creds)
}

func (s *GoogleAdsIntegrator) GetCampaigns(ctx context.Context, token *domain.AccessToken, creds domain.Credentials, window domain.Window) ([]domain.CampaignRecord, error) {
	query := BuildCampaignQuery(creds.DateRange(), window, s.now())

	rows, err := s.Client.Search(ctx, token, creds, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ads_customer_id": creds.CustomerID,
			"error":           err.Error(),
		}).Error("googleads: failed to fetch campaigns")
		return nil, err
	}

	campaigns := lo.Map(rows, func(r adsdomain.Row, _ int) domain.CampaignRecord {
		return FactoryCampaign(r)
	})

	logrus.WithFields(logrus.Fields{
		"ads_customer_id": creds.CustomerID,
		"ads_rows":        len(campaigns),
	}).Debug("googleads: campaigns fetched")

	return campaigns, nil
}

func (s *GoogleAdsIntegrator) GetReport(ctx context.Context, token *domain.AccessToken, creds domain.Credentials, kind domain.ReportKind, window domain.Window) ([]domain.Row, error) {
	factory, ok := rowFactories[kind]
	if !ok {
		return nil, fmt.Errorf("no normalizer for report kind %q", kind)
	}

	query, err := BuildReportQuery(kind, creds.DateRange(), window, s.now())
	if err != nil {
		return nil, err
	}

	rows, err := s.Client.Search(ctx, token, creds, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"report":          kind,
			"ads_customer_id": creds.CustomerID,
			"error":           err.Error(),
		}).Warn("googleads: failed to fetch report")
		return nil, err
	}

	return lo.Map(rows, func(r adsdomain.Row, _ int) domain.Row {
		return factory(r)
	}), nil
}
