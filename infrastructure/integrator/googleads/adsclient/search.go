package adsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	adsdomain "github.com/vfg2006/adpulse-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/adpulse-api/internal/domain"
	"github.com/vfg2006/adpulse-api/pkg/utils"
)

type searchRequest struct {
	Query string `json:"query"`
}

// Search runs one GAQL query against the customer in creds and returns the raw
// result rows. A response without results yields an empty slice.
func (c *AdsClient) Search(ctx context.Context, token *domain.AccessToken, creds domain.Credentials, query string) ([]adsdomain.Row, error) {
	url := fmt.Sprintf("%s/%s/customers/%s/googleAds:search",
		strings.TrimRight(c.Cfg.GoogleAds.BaseURL, "/"),
		c.Cfg.GoogleAds.APIVersion,
		utils.StripDashes(creds.CustomerID),
	)

	payload, err := adsdomain.JSON.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, errors.Wrap(err, "encoding search request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "creating search request")
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("developer-token", creds.DeveloperToken)
	req.Header.Set("Content-Type", "application/json")
	if creds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", utils.StripDashes(creds.LoginCustomerID))
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling googleAds:search")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading googleAds:search response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Body:       utils.Truncate(string(body), searchErrorBodyLimit),
		}

		var details adsdomain.ErrorResponse
		if adsdomain.JSON.Unmarshal(body, &details) == nil && details.Error.Code != 0 {
			apiErr.Details = &details
		}

		return nil, apiErr
	}

	var response adsdomain.SearchResponse
	if err := adsdomain.JSON.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "decoding googleAds:search response")
	}

	logrus.WithFields(logrus.Fields{
		"ads_rows":    len(response.Results),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("googleads: search completed")

	if response.Results == nil {
		return []adsdomain.Row{}, nil
	}

	return response.Results, nil
}
