package googleads

import (
	"context"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/ads-pilot-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-pilot-api/infrastructure/integrator/googleads/googleclient"
	"github.com/vfg2006/ads-pilot-api/internal/config"
	"github.com/vfg2006/ads-pilot-api/internal/domain"
)

const (
	microsPerUnit = 1_000_000

	// potentialSavingsRate é a heurística fixa do dashboard: 23% do gasto
	// total é apresentado como economia potencial
	potentialSavingsRate = 0.23

	// keywordsPlaceholder substitui a contagem de keywords enquanto a
	// análise de keywords não existe; o front end espera o campo preenchido
	keywordsPlaceholder = 247
)

// IssueCounter atribui a quantidade de problemas detectados em uma
// campanha. A detecção real ainda não existe; a implementação padrão
// reproduz o placeholder de demonstração (uniforme entre 0 e 4) e os
// testes injetam uma versão determinística
type IssueCounter func() int

func DefaultIssueCounter() int {
	return rand.IntN(5)
}

type GoogleAdsIntegrator struct {
	cfg          *config.Config
	Client       googleclient.Client
	issueCounter IssueCounter
}

func New(cfg *config.Config, client googleclient.Client, issueCounter IssueCounter) *GoogleAdsIntegrator {
	if issueCounter == nil {
		issueCounter = DefaultIssueCounter
	}

	return &GoogleAdsIntegrator{
		cfg:          cfg,
		Client:       client,
		issueCounter: issueCounter,
	}
}

// FetchCampaignSummary consulta o relatório de campanhas de uma conta e
// reduz as linhas em um resumo para o dashboard. A decisão de substituir
// falhas por dados mock fica com a camada de usecase
func (s *GoogleAdsIntegrator) FetchCampaignSummary(ctx context.Context, accessToken string, customerID string) (*domain.ScanSummary, error) {
	cleanID := googleclient.NormalizeCustomerID(customerID)

	logrus.WithField("customer_id", cleanID).Debug("scan: consultando campanhas na API do Google Ads")

	rows, err := s.Client.SearchCampaigns(ctx, accessToken, cleanID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": cleanID,
			"error":       err.Error(),
		}).Error("scan: falha ao consultar campanhas")
		return nil, err
	}

	summary := s.buildSummary(rows)

	logrus.WithFields(logrus.Fields{
		"customer_id":      cleanID,
		"total_campaigns":  summary.TotalCampaigns,
		"active_campaigns": summary.ActiveCampaigns,
	}).Info("scan: campanhas agregadas com sucesso")

	return summary, nil
}

func (s *GoogleAdsIntegrator) buildSummary(rows []googledomain.SearchRow) *domain.ScanSummary {
	var (
		totalSpend           float64
		totalClicks          int64
		totalConversions     float64
		activeCampaigns      int
		totalRecommendations int
	)

	campaigns := make([]domain.CampaignRecord, 0, len(rows))

	for _, row := range rows {
		spend := float64(row.Metrics.CostMicros) / microsPerUnit

		var budget float64
		if row.CampaignBudget != nil {
			budget = float64(row.CampaignBudget.AmountMicros) / microsPerUnit
		}

		clicks := row.Metrics.Clicks
		conversions := row.Metrics.Conversions

		// Evita divisão por zero em campanhas sem conversões
		var cpa float64
		if conversions > 0 {
			cpa = spend / conversions
		}

		totalSpend += spend
		totalClicks += clicks
		totalConversions += conversions

		if row.Campaign.Status == domain.CampaignStatusEnabled {
			activeCampaigns++
		}

		issues := s.issueCounter()
		totalRecommendations += issues

		campaigns = append(campaigns, domain.CampaignRecord{
			ID:          row.Campaign.ID,
			Name:        row.Campaign.Name,
			Status:      row.Campaign.Status,
			Budget:      budget,
			Spend:       spend,
			Clicks:      clicks,
			Conversions: conversions,
			CPA:         cpa,
			Issues:      issues,
		})
	}

	return &domain.ScanSummary{
		Success:              true,
		TotalCampaigns:       len(campaigns),
		ActiveCampaigns:      activeCampaigns,
		TotalKeywords:        keywordsPlaceholder,
		TotalSpend:           totalSpend,
		TotalClicks:          totalClicks,
		TotalConversions:     totalConversions,
		PotentialSavings:     totalSpend * potentialSavingsRate,
		TotalRecommendations: totalRecommendations,
		Campaigns:            campaigns,
	}
}
