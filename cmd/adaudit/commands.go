package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vfg2006/adpulse-api/internal/domain"
)

func (c *cli) tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Exchange the refresh token for an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.services()
			if err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			token, err := svc.reporter.ExchangeToken(ctx, credentialsFromFlags())
			if err != nil {
				return err
			}
			return c.printJSON(token)
		},
	}
}

func (c *cli) campaignsCmd() *cobra.Command {
	var csvDir string

	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "List campaigns with their performance metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.services()
			if err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			result, err := svc.reporter.GetCampaigns(ctx, credentialsFromFlags())
			if err != nil {
				return err
			}

			if csvDir == "" {
				return c.printJSON(result)
			}

			file, err := svc.exporter.CampaignsCSV(result.Campaigns)
			if err != nil {
				return err
			}
			return c.writeFile(csvDir, file)
		},
	}

	cmd.Flags().StringVar(&csvDir, "csv", "", "write a CSV export into this directory instead of printing JSON")
	return cmd
}

func (c *cli) reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "report <kind>",
		Short:     "Fetch a single report",
		Args:      cobra.ExactArgs(1),
		ValidArgs: reportKindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.services()
			if err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			result, err := svc.reporter.GetReport(ctx, credentialsFromFlags(), domain.ReportKind(args[0]))
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}
}

func (c *cli) reportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "Fetch campaigns and every secondary report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.services()
			if err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			set, err := svc.reporter.FetchAll(ctx, credentialsFromFlags(), domain.LastThirtyDays)
			if err != nil {
				return err
			}
			return c.printJSON(set)
		},
	}
}

func (c *cli) auditCmd() *cobra.Command {
	var (
		mode        string
		provider    string
		openaiKey   string
		geminiKey   string
		markdownDir string
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Generate an AI audit of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.services()
			if err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			creds := credentialsFromFlags()
			p := domain.Provider(provider)
			if openaiKey == "" {
				openaiKey = os.Getenv("OPENAI_API_KEY")
			}
			if geminiKey == "" {
				geminiKey = os.Getenv("GEMINI_API_KEY")
			}

			var result *domain.AuditResult
			switch domain.AuditMode(mode) {
			case domain.AuditModeQuick:
				campaigns, err := svc.reporter.GetCampaigns(ctx, creds)
				if err != nil {
					return err
				}
				result, err = svc.auditor.GenerateQuick(ctx, domain.QuickAuditRequest{
					Campaigns:    campaigns.Campaigns,
					Provider:     p,
					OpenAIAPIKey: openaiKey,
					GeminiAPIKey: geminiKey,
					DateRange:    creds.DateRange(),
				})
				if err != nil {
					return err
				}
			case domain.AuditModeComprehensive:
				result, err = svc.auditor.GenerateComprehensive(ctx, domain.ComprehensiveAuditRequest{
					Credentials:  &creds,
					Provider:     p,
					OpenAIAPIKey: openaiKey,
					GeminiAPIKey: geminiKey,
					DateRange:    creds.DateRange(),
				})
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown audit mode %q, want quick or comprehensive", mode)
			}

			if markdownDir != "" {
				file, err := svc.exporter.AuditMarkdown(result.CleanReport)
				if err != nil {
					return err
				}
				return c.writeFile(markdownDir, file)
			}
			return c.printJSON(result)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(domain.AuditModeQuick), "quick or comprehensive")
	cmd.Flags().StringVar(&provider, "provider", string(domain.ProviderOpenAI), "openai or gemini")
	cmd.Flags().StringVar(&openaiKey, "openai-api-key", "", "OpenAI API key (or set OPENAI_API_KEY)")
	cmd.Flags().StringVar(&geminiKey, "gemini-api-key", "", "Gemini API key (or set GEMINI_API_KEY)")
	cmd.Flags().StringVar(&markdownDir, "markdown", "", "write the report as Markdown into this directory")
	return cmd
}

func (c *cli) writeFile(dir string, file *domain.ExportFile) error {
	path := filepath.Join(dir, file.Name)
	if err := os.WriteFile(path, file.Content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	_, err := fmt.Fprintln(c.out, path)
	return err
}

func reportKindNames() []string {
	names := make([]string, 0, len(domain.SecondaryReportKinds))
	for _, kind := range domain.SecondaryReportKinds {
		names = append(names, string(kind))
	}
	return names
}
