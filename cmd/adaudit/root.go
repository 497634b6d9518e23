package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vfg2006/adpulse-api/internal/app"
	"github.com/vfg2006/adpulse-api/internal/config"
	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/internal/usecases/auditing"
	"github.com/vfg2006/adpulse-api/internal/usecases/exporting"
	"github.com/vfg2006/adpulse-api/internal/usecases/reporting"
	"github.com/vfg2006/adpulse-api/pkg/log"
	"github.com/vfg2006/adpulse-api/pkg/utils"
)

// services is what the commands need. Tests swap it for mocks.
type services struct {
	reporter reporting.Reporter
	auditor  auditing.Auditor
	exporter exporting.Exporter
}

type cli struct {
	svc     *services
	build   func() (*services, error)
	out     io.Writer
	timeout time.Duration
}

// credentialFlags maps flag names to the environment keys they fall back to
var credentialFlags = []struct {
	flag, env, usage string
}{
	{"refresh-token", "GOOGLE_ADS_REFRESH_TOKEN", "OAuth refresh token"},
	{"client-id", "GOOGLE_ADS_CLIENT_ID", "OAuth client ID"},
	{"client-secret", "GOOGLE_ADS_CLIENT_SECRET", "OAuth client secret"},
	{"developer-token", "GOOGLE_ADS_DEVELOPER_TOKEN", "Google Ads developer token"},
	{"customer-id", "GOOGLE_ADS_CUSTOMER_ID", "customer account ID, dashes allowed"},
	{"login-customer-id", "GOOGLE_ADS_LOGIN_CUSTOMER_ID", "manager account ID"},
	{"start-date", "GOOGLE_ADS_START_DATE", "range start, YYYY-MM-DD"},
	{"end-date", "GOOGLE_ADS_END_DATE", "range end, YYYY-MM-DD"},
}

// newRootCmd builds the command tree. A nil svc wires the real services from
// the environment on first use.
func newRootCmd(svc *services) *cobra.Command {
	c := &cli{svc: svc, build: buildServices}

	root := &cobra.Command{
		Use:           "adaudit",
		Short:         "Fetch Google Ads reports and generate AI audits",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.out = cmd.OutOrStdout()
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.Setup("debug")
			}
			return nil
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 5*time.Minute, "overall operation timeout")

	for _, f := range credentialFlags {
		root.PersistentFlags().String(f.flag, "", f.usage+" (or set "+f.env+")")
		_ = viper.BindPFlag(f.env, root.PersistentFlags().Lookup(f.flag))
		_ = viper.BindEnv(f.env)
	}

	root.AddCommand(
		c.tokenCmd(),
		c.campaignsCmd(),
		c.reportCmd(),
		c.reportsCmd(),
		c.auditCmd(),
	)

	return root
}

func buildServices() (*services, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	log.Setup(cfg.App.LogLevel)

	s := app.NewServices(cfg)
	return &services{reporter: s.Reporter, auditor: s.Auditor, exporter: s.Exporter}, nil
}

func (c *cli) services() (*services, error) {
	if c.svc != nil {
		return c.svc, nil
	}

	svc, err := c.build()
	if err != nil {
		return nil, err
	}
	c.svc = svc
	return svc, nil
}

func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx, _ := log.WithCorrelationID(cmd.Context(), "")
	return context.WithTimeout(ctx, c.timeout)
}

func credentialsFromFlags() domain.Credentials {
	return domain.Credentials{
		RefreshToken:    viper.GetString("GOOGLE_ADS_REFRESH_TOKEN"),
		ClientID:        viper.GetString("GOOGLE_ADS_CLIENT_ID"),
		ClientSecret:    viper.GetString("GOOGLE_ADS_CLIENT_SECRET"),
		DeveloperToken:  viper.GetString("GOOGLE_ADS_DEVELOPER_TOKEN"),
		CustomerID:      viper.GetString("GOOGLE_ADS_CUSTOMER_ID"),
		LoginCustomerID: viper.GetString("GOOGLE_ADS_LOGIN_CUSTOMER_ID"),
		StartDate:       viper.GetString("GOOGLE_ADS_START_DATE"),
		EndDate:         viper.GetString("GOOGLE_ADS_END_DATE"),
	}
}

func (c *cli) printJSON(v any) error {
	out, err := utils.PrettyJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, out)
	return err
}
