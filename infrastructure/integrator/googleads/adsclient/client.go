package adsclient

import (
	"context"
	"net/http"

	adsdomain "github.com/vfg2006/adpulse-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/adpulse-api/internal/config"
	"github.com/vfg2006/adpulse-api/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

type Client interface {
	ExchangeToken(ctx context.Context, creds domain.Credentials) (*domain.AccessToken, error)
	Search(ctx context.Context, token *domain.AccessToken, creds domain.Credentials, query string) ([]adsdomain.Row, error)
}

type AdsClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AdsClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.GoogleAds.Timeout,
		},
	}
}
