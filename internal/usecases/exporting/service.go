package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/pkg/apiErrors"
	"github.com/vfg2006/adpulse-api/pkg/utils"
)

var (
	ErrNothingToExport = errors.New("nothing to export")
	ErrGenerateID      = errors.New("error generating file id")
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Exporter interface {
	CampaignsCSV(campaigns []domain.CampaignRecord) (*domain.ExportFile, error)
	AuditMarkdown(cleanReport string) (*domain.ExportFile, error)
}

// ExportError carries the API error code for a failed export
type ExportError struct {
	Err  error
	Code string
}

func (e *ExportError) Error() string {
	return e.Err.Error()
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

var campaignColumns = []string{
	"id", "name", "status", "channel_type", "bidding_strategy_type",
	"daily_budget", "total_budget", "target_cpa", "target_roas",
	"impressions", "clicks", "cost", "conversions", "conversions_value",
	"conversion_rate", "ctr", "avg_cpc",
}

type Service struct {
	now func() time.Time
	id  func() (string, error)
}

func NewService() *Service {
	return &Service{
		now: time.Now,
		id:  utils.GenerateID,
	}
}

func (s *Service) CampaignsCSV(campaigns []domain.CampaignRecord) (*domain.ExportFile, error) {
	if len(campaigns) == 0 {
		return nil, &ExportError{Err: ErrNothingToExport, Code: apiErrors.ErrNoCampaigns}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(campaignColumns); err != nil {
		return nil, errors.Wrap(err, "writing csv header")
	}

	for _, c := range campaigns {
		record := []string{
			c.ID,
			c.Name,
			string(c.Status),
			c.ChannelType,
			c.BiddingStrategyType,
			money(c.DailyBudget),
			money(c.TotalBudget),
			optional(c.TargetCPA),
			optional(c.TargetROAS),
			strconv.FormatInt(c.Impressions, 10),
			strconv.FormatInt(c.Clicks, 10),
			money(c.Cost),
			number(c.Conversions),
			money(c.ConversionsValue),
			number(c.ConversionRate),
			number(c.CTR),
			money(c.AvgCPC),
		}
		if err := w.Write(record); err != nil {
			return nil, errors.Wrap(err, "writing csv record")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "flushing csv")
	}

	name, err := s.filename("adpulse-campaigns", "csv")
	if err != nil {
		return nil, err
	}

	return &domain.ExportFile{
		Name:        name,
		ContentType: "text/csv; charset=utf-8",
		Content:     buf.Bytes(),
	}, nil
}

func (s *Service) AuditMarkdown(cleanReport string) (*domain.ExportFile, error) {
	if cleanReport == "" {
		return nil, &ExportError{Err: ErrNothingToExport, Code: apiErrors.ErrMissingData}
	}

	name, err := s.filename("adpulse-audit", "md")
	if err != nil {
		return nil, err
	}

	return &domain.ExportFile{
		Name:        name,
		ContentType: "text/markdown; charset=utf-8",
		Content:     []byte(cleanReport),
	}, nil
}

// filename renders "<prefix>-<YYYY-MM-DD>-<id>.<ext>".
func (s *Service) filename(prefix, ext string) (string, error) {
	id, err := s.id()
	if err != nil {
		return "", &ExportError{Err: fmt.Errorf("%w: %v", ErrGenerateID, err), Code: apiErrors.ErrInternalServer}
	}

	return fmt.Sprintf("%s-%s-%s.%s", prefix, utils.FormatDate(s.now().UTC()), id, ext), nil
}

// money renders a currency amount with exactly two decimals.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optional(v *float64) string {
	if v == nil {
		return ""
	}
	return number(*v)
}
