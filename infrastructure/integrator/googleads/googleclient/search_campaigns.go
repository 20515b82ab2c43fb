package googleclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/ads-pilot-api/infrastructure/integrator/googleads/domain"
)

// campaignSearchQuery é a consulta GAQL do scan: campanhas ativas ou
// pausadas com métricas dos últimos 30 dias
const campaignSearchQuery = `
SELECT
  campaign.id,
  campaign.name,
  campaign.status,
  campaign_budget.amount_micros,
  metrics.cost_micros,
  metrics.clicks,
  metrics.conversions,
  metrics.impressions
FROM campaign
WHERE campaign.status IN ('ENABLED', 'PAUSED')
AND segments.date DURING LAST_30_DAYS
`

type searchRequest struct {
	Query string `json:"query"`
}

// SearchCampaigns executa a consulta de relatório no endpoint
// googleAds:search de uma conta. customerID já deve estar normalizado
func (c *GoogleClient) SearchCampaigns(ctx context.Context, accessToken string, customerID string) ([]googledomain.SearchRow, error) {
	url := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.Google.AdsURL, customerID)

	payload, err := json.Marshal(searchRequest{Query: campaignSearchQuery})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", c.Cfg.Google.DeveloperToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"status":      resp.StatusCode,
			"response":    string(body),
		}).Error("Erro na API do Google Ads")
		return nil, fmt.Errorf("erro ao consultar campanhas. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	var response googledomain.SearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Results, nil
}
