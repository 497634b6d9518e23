// Package app wires the usecases shared by the HTTP server and the CLI.
package app

import (
	"github.com/vfg2006/adpulse-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/adpulse-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/adpulse-api/infrastructure/integrator/llm"
	"github.com/vfg2006/adpulse-api/infrastructure/integrator/llm/geminiclient"
	"github.com/vfg2006/adpulse-api/infrastructure/integrator/llm/openaiclient"
	"github.com/vfg2006/adpulse-api/internal/config"
	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/internal/usecases/auditing"
	"github.com/vfg2006/adpulse-api/internal/usecases/exporting"
	"github.com/vfg2006/adpulse-api/internal/usecases/reporting"
)

type Services struct {
	Reporter *reporting.Service
	Auditor  *auditing.Service
	Exporter *exporting.Service
}

func NewServices(cfg *config.Config) *Services {
	adsIntegrator := googleads.New(adsclient.NewClient(cfg))
	reporter := reporting.NewService(adsIntegrator)

	completers := map[domain.Provider]llm.Completer{
		domain.ProviderOpenAI: openaiclient.NewClient(cfg),
		domain.ProviderGemini: geminiclient.NewClient(cfg),
	}

	return &Services{
		Reporter: reporter,
		Auditor:  auditing.NewService(cfg, reporter, completers),
		Exporter: exporting.NewService(),
	}
}
