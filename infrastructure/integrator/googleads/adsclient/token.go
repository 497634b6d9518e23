package adsclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	adsdomain "github.com/vfg2006/adpulse-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/pkg/utils"
)

// ExchangeToken trades the refresh token in creds for a short-lived access
// token. Nothing is cached; every call hits the token endpoint.
func (c *AdsClient) ExchangeToken(ctx context.Context, creds domain.Credentials) (*domain.AccessToken, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.Cfg.GoogleAds.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.HTTPClient)

	start := time.Now()
	tok, err := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken}).Token()
	if err != nil {
		tokenErr := newTokenError(err)
		logrus.WithFields(logrus.Fields{
			"ads_status_code": tokenErr.StatusCode,
			"error":           tokenErr.Message,
		}).Warn("googleads: token exchange failed")
		return nil, tokenErr
	}

	logrus.WithField("duration_ms", time.Since(start).Milliseconds()).Debug("googleads: token exchanged")

	return &domain.AccessToken{
		AccessToken: tok.AccessToken,
		ExpiresIn:   expiresIn(tok),
		TokenType:   tok.TokenType,
	}, nil
}

func expiresIn(tok *oauth2.Token) int64 {
	if tok.ExpiresIn > 0 {
		return tok.ExpiresIn
	}

	if tok.Expiry.IsZero() {
		return 0
	}

	return int64(time.Until(tok.Expiry).Round(time.Second).Seconds())
}

// newTokenError prefers error_description, then error, then the raw body.
func newTokenError(err error) *TokenError {
	var retrieveErr *oauth2.RetrieveError
	if !errors.As(err, &retrieveErr) {
		return &TokenError{Message: err.Error(), Err: err}
	}

	tokenErr := &TokenError{Err: err}
	if retrieveErr.Response != nil {
		tokenErr.StatusCode = retrieveErr.Response.StatusCode
	}

	var body adsdomain.TokenErrorResponse
	if jsonErr := adsdomain.JSON.Unmarshal(retrieveErr.Body, &body); jsonErr == nil {
		switch {
		case body.ErrorDescription != "":
			tokenErr.Message = body.ErrorDescription
			return tokenErr
		case body.Error != "":
			tokenErr.Message = body.Error
			return tokenErr
		}
	}

	raw := strings.TrimSpace(string(retrieveErr.Body))
	if raw == "" && tokenErr.StatusCode != 0 {
		raw = http.StatusText(tokenErr.StatusCode)
	}
	tokenErr.Message = utils.Truncate(raw, tokenErrorBodyLimit) + "..."

	return tokenErr
}
