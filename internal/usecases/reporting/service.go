package reporting

import (
	"context"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/pkg/apiErrors"
	"github.com/vfg2006/adpulse-api/pkg/log"
)

type Service struct {
	ads AdsIntegrator
	now func() time.Time
}

func NewService(ads AdsIntegrator) *Service {
	return &Service{
		ads: ads,
		now: time.Now,
	}
}

func (s *Service) ExchangeToken(ctx context.Context, creds domain.Credentials) (*domain.AccessToken, error) {
	if err := creds.ValidateOAuth(); err != nil {
		return nil, &ReportError{Err: ErrInvalidCredentials, Code: apiErrors.ErrValidation, Details: err.Error(), Cause: err}
	}

	return s.exchange(ctx, creds)
}

func (s *Service) GetCampaigns(ctx context.Context, creds domain.Credentials) (*domain.CampaignsResult, error) {
	if err := creds.Validate(); err != nil {
		return nil, &ReportError{Err: ErrInvalidCredentials, Code: apiErrors.ErrValidation, Details: err.Error(), Cause: err}
	}

	token, err := s.exchange(ctx, creds)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.campaigns(ctx, token, creds, domain.LastThirtyDays)
	if err != nil {
		return nil, err
	}

	return &domain.CampaignsResult{
		Campaigns: campaigns,
		FetchedAt: s.fetchedAt(),
		Count:     len(campaigns),
	}, nil
}

func (s *Service) GetReport(ctx context.Context, creds domain.Credentials, kind domain.ReportKind) (*domain.ReportResult, error) {
	if !slices.Contains(domain.SecondaryReportKinds, kind) {
		return nil, &ReportError{Err: ErrUnknownReport, Code: apiErrors.ErrUnknownReport, Report: kind, Details: "unknown report: " + string(kind)}
	}

	if err := creds.Validate(); err != nil {
		return nil, &ReportError{Err: ErrInvalidCredentials, Code: apiErrors.ErrValidation, Details: err.Error(), Cause: err}
	}

	token, err := s.exchange(ctx, creds)
	if err != nil {
		return nil, err
	}

	rows, err := s.ads.GetReport(ctx, token, creds, kind, domain.LastThirtyDays)
	if err != nil {
		return nil, newUpstreamError(ErrFetchReport, kind, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"report":   kind,
		"ads_rows": len(rows),
	}).Info("reports: report fetched")

	return &domain.ReportResult{
		Report:    kind,
		Results:   rows,
		Count:     len(rows),
		FetchedAt: s.fetchedAt(),
	}, nil
}

func (s *Service) FetchAll(ctx context.Context, creds domain.Credentials, window domain.Window) (*domain.AggregateReportSet, error) {
	if err := creds.Validate(); err != nil {
		return nil, &ReportError{Err: ErrInvalidCredentials, Code: apiErrors.ErrValidation, Details: err.Error(), Cause: err}
	}

	token, err := s.exchange(ctx, creds)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.campaigns(ctx, token, creds, window)
	if err != nil {
		return nil, err
	}

	kinds := domain.SecondaryReportKinds
	results := make([][]domain.Row, len(kinds))

	// Every secondary report is in flight at once.
	var g errgroup.Group

	for i, kind := range kinds {
		g.Go(func() error {
			rows, err := s.ads.GetReport(ctx, token, creds, kind, window)
			if err != nil {
				log.ForContext(ctx).WithFields(log.Fields{
					"report": kind,
					"error":  err.Error(),
				}).Warn("reports: secondary report failed, continuing without it")
				return nil
			}

			results[i] = rows
			return nil
		})
	}

	// Tasks never return an error.
	_ = g.Wait()

	set := domain.NewAggregateReportSet(campaigns)
	for i, kind := range kinds {
		set.Set(kind, results[i])
	}

	log.ForContext(ctx).WithField("ads_counts", set.Counts()).Info("reports: aggregate fetched")

	return set, nil
}

func (s *Service) exchange(ctx context.Context, creds domain.Credentials) (*domain.AccessToken, error) {
	token, err := s.ads.ExchangeToken(ctx, creds)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("reports: token exchange failed")
		return nil, newUpstreamError(ErrTokenExchange, "", err)
	}

	return token, nil
}

func (s *Service) campaigns(ctx context.Context, token *domain.AccessToken, creds domain.Credentials, window domain.Window) ([]domain.CampaignRecord, error) {
	campaigns, err := s.ads.GetCampaigns(ctx, token, creds, window)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("reports: campaign report failed")
		return nil, newUpstreamError(ErrFetchCampaigns, "", err)
	}

	if campaigns == nil {
		campaigns = []domain.CampaignRecord{}
	}

	return campaigns, nil
}

func (s *Service) fetchedAt() string {
	return s.now().UTC().Format(domain.TimestampLayout)
}
