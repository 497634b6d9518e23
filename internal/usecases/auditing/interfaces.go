package auditing

import (
	"context"

	"github.com/vfg2006/adpulse-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// ReportFetcher loads every report for an account
type ReportFetcher interface {
	FetchAll(ctx context.Context, creds domain.Credentials, window domain.Window) (*domain.AggregateReportSet, error)
}

// Auditor writes audits. Quick audits expect a strict JSON answer from the
// model; comprehensive audits accept free-form Markdown.
type Auditor interface {
	GenerateQuick(ctx context.Context, req domain.QuickAuditRequest) (*domain.AuditResult, error)
	GenerateComprehensive(ctx context.Context, req domain.ComprehensiveAuditRequest) (*domain.AuditResult, error)
}
