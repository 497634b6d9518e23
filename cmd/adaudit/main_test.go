package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/adpulse-api/internal/domain"
	auditmocks "github.com/vfg2006/adpulse-api/internal/usecases/auditing/mocks"
	exportmocks "github.com/vfg2006/adpulse-api/internal/usecases/exporting/mocks"
	"github.com/vfg2006/adpulse-api/internal/usecases/reporting"
	reportmocks "github.com/vfg2006/adpulse-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/adpulse-api/pkg/apiErrors"
)

type cliMocks struct {
	reporter *reportmocks.MockReporter
	auditor  *auditmocks.MockAuditor
	exporter *exportmocks.MockExporter
}

func run(t *testing.T, setup func(m cliMocks), args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	ctrl := gomock.NewController(t)
	m := cliMocks{
		reporter: reportmocks.NewMockReporter(ctrl),
		auditor:  auditmocks.NewMockAuditor(ctrl),
		exporter: exportmocks.NewMockExporter(ctrl),
	}
	setup(m)

	cmd := newRootCmd(&services{reporter: m.reporter, auditor: m.auditor, exporter: m.exporter})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCampaignsCommand(t *testing.T) {
	out, err := run(t, func(m cliMocks) {
		m.reporter.EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, creds domain.Credentials) (*domain.CampaignsResult, error) {
				assert.Equal(t, "123-456-7890", creds.CustomerID)
				assert.Equal(t, "dev", creds.DeveloperToken)
				return &domain.CampaignsResult{Campaigns: []domain.CampaignRecord{{ID: "1", Name: "Brand"}}, Count: 1}, nil
			})
	}, "campaigns", "--customer-id", "123-456-7890", "--developer-token", "dev")

	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Brand"`)
	assert.Contains(t, out, `"count": 1`)
}

func TestCampaignsCommand_EnvFallback(t *testing.T) {
	t.Setenv("GOOGLE_ADS_CUSTOMER_ID", "999")

	_, err := run(t, func(m cliMocks) {
		m.reporter.EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, creds domain.Credentials) (*domain.CampaignsResult, error) {
				assert.Equal(t, "999", creds.CustomerID)
				return &domain.CampaignsResult{Campaigns: []domain.CampaignRecord{}}, nil
			})
	}, "campaigns")

	require.NoError(t, err)
}

func TestCampaignsCommand_CSV(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, func(m cliMocks) {
		campaigns := []domain.CampaignRecord{{ID: "1"}}
		m.reporter.EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).
			Return(&domain.CampaignsResult{Campaigns: campaigns, Count: 1}, nil)
		m.exporter.EXPECT().CampaignsCSV(campaigns).
			Return(&domain.ExportFile{Name: "adpulse-campaigns-2025-04-02-abc123.csv", Content: []byte("id\n1\n")}, nil)
	}, "campaigns", "--csv", dir)

	require.NoError(t, err)

	path := filepath.Join(dir, "adpulse-campaigns-2025-04-02-abc123.csv")
	assert.Equal(t, path, strings.TrimSpace(out))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id\n1\n", string(content))
}

func TestReportCommand(t *testing.T) {
	out, err := run(t, func(m cliMocks) {
		m.reporter.EXPECT().GetReport(gomock.Any(), gomock.Any(), domain.ReportDevices).
			Return(&domain.ReportResult{Report: domain.ReportDevices, Results: []domain.Row{}, Count: 0}, nil)
	}, "report", "devices")

	require.NoError(t, err)
	assert.Contains(t, out, `"report": "devices"`)

	_, err = run(t, func(m cliMocks) {}, "report")
	assert.Error(t, err)
}

func TestReportsCommand(t *testing.T) {
	out, err := run(t, func(m cliMocks) {
		m.reporter.EXPECT().FetchAll(gomock.Any(), gomock.Any(), domain.LastThirtyDays).
			Return(domain.NewAggregateReportSet(nil), nil)
	}, "reports")

	require.NoError(t, err)
	assert.Contains(t, out, `"changeHistory": []`)
}

func TestAuditCommand(t *testing.T) {
	t.Run("quick audit feeds fetched campaigns to the auditor", func(t *testing.T) {
		out, err := run(t, func(m cliMocks) {
			campaigns := []domain.CampaignRecord{{ID: "1", Status: domain.CampaignStatusEnabled}}
			m.reporter.EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).
				Return(&domain.CampaignsResult{Campaigns: campaigns, Count: 1}, nil)
			m.auditor.EXPECT().GenerateQuick(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req domain.QuickAuditRequest) (*domain.AuditResult, error) {
					assert.Equal(t, campaigns, req.Campaigns)
					assert.Equal(t, "sk", req.OpenAIAPIKey)
					return &domain.AuditResult{Summary: "fine", Recommendations: []domain.Recommendation{}}, nil
				})
		}, "audit", "--openai-api-key", "sk")

		require.NoError(t, err)
		assert.Contains(t, out, `"summary": "fine"`)
	})

	t.Run("comprehensive audit sends credentials", func(t *testing.T) {
		dir := t.TempDir()

		out, err := run(t, func(m cliMocks) {
			m.auditor.EXPECT().GenerateComprehensive(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req domain.ComprehensiveAuditRequest) (*domain.AuditResult, error) {
					require.NotNil(t, req.Credentials)
					assert.Equal(t, "42", req.Credentials.CustomerID)
					assert.Equal(t, domain.ProviderGemini, req.Provider)
					assert.Nil(t, req.AllReports)
					return &domain.AuditResult{CleanReport: "# Report"}, nil
				})
			m.exporter.EXPECT().AuditMarkdown("# Report").
				Return(&domain.ExportFile{Name: "adpulse-audit.md", Content: []byte("# Report")}, nil)
		}, "audit", "--mode", "comprehensive", "--provider", "gemini", "--gemini-api-key", "g",
			"--customer-id", "42", "--markdown", dir)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "adpulse-audit.md"), strings.TrimSpace(out))
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := run(t, func(m cliMocks) {}, "audit", "--mode", "deep")
		assert.ErrorContains(t, err, `unknown audit mode "deep"`)
	})
}

func TestPrintError(t *testing.T) {
	var out bytes.Buffer
	printError(&out, reporting.NewReportError(reporting.ErrUnknownReport, apiErrors.ErrUnknownReport, "unknown report: budgets"))
	assert.Equal(t, "error: UNKNOWN_REPORT: unknown report: budgets\n", out.String())

	out.Reset()
	printError(&out, assert.AnError)
	assert.True(t, strings.HasPrefix(out.String(), "error: CLI_ERROR: "))
}
