package googleclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

type responseListAccessibleCustomers struct {
	ResourceNames []string `json:"resourceNames"`
}

// ListAccessibleCustomers consulta as contas do Google Ads acessíveis pela
// identidade autenticada. Requer o developer token além do bearer token
func (c *GoogleClient) ListAccessibleCustomers(ctx context.Context, accessToken string) ([]string, error) {
	url := fmt.Sprintf("%s/customers:listAccessibleCustomers", c.Cfg.Google.AdsURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", c.Cfg.Google.DeveloperToken)

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
		return nil, fmt.Errorf("erro ao listar contas acessíveis. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	var response responseListAccessibleCustomers
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.ResourceNames, nil
}
