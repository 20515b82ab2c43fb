package googleads

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	googledomain "github.com/vfg2006/ads-pilot-api/infrastructure/integrator/googleads/domain"
	clientmocks "github.com/vfg2006/ads-pilot-api/infrastructure/integrator/googleads/googleclient/mocks"
	"github.com/vfg2006/ads-pilot-api/internal/config"
	"go.uber.org/mock/gomock"
)

// fixedIssueCounter devolve sempre o mesmo valor, substituindo o
// placeholder aleatório nos testes
func fixedIssueCounter(value int) IssueCounter {
	return func() int { return value }
}

func TestGoogleAdsIntegrator_FetchCampaignSummary(t *testing.T) {
	cfg := &config.Config{}

	rows := []googledomain.SearchRow{
		{
			Campaign: googledomain.Campaign{ID: "111", Name: "Brand - Search", Status: "ENABLED"},
			Metrics: googledomain.Metrics{
				CostMicros:  2_000_000,
				Clicks:      100,
				Conversions: 4,
			},
			CampaignBudget: &googledomain.CampaignBudget{AmountMicros: 5_000_000},
		},
		{
			Campaign: googledomain.Campaign{ID: "222", Name: "Display Remarketing", Status: "PAUSED"},
			Metrics: googledomain.Metrics{
				CostMicros:  1_500_000,
				Clicks:      40,
				Conversions: 0,
			},
			// Sem campaignBudget: orçamento deve ser tratado como zero
		},
	}

	t.Run("Reduz linhas do relatório em um resumo agregado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)
		mockClient.EXPECT().
			SearchCampaigns(gomock.Any(), "access-123", "1234567890").
			Return(rows, nil)

		integrator := New(cfg, mockClient, fixedIssueCounter(2))

		summary, err := integrator.FetchCampaignSummary(context.Background(), "access-123", "customers/123-456-7890")
		require.NoError(t, err)
		require.NotNil(t, summary)

		assert.True(t, summary.Success)
		assert.Equal(t, 2, summary.TotalCampaigns)
		assert.Equal(t, 1, summary.ActiveCampaigns)
		assert.Equal(t, 247, summary.TotalKeywords)

		// Conversão micros -> unidade monetária
		assert.InDelta(t, 3.5, summary.TotalSpend, 1e-9)
		assert.Equal(t, int64(140), summary.TotalClicks)
		assert.InDelta(t, 4, summary.TotalConversions, 1e-9)

		// Economia potencial é sempre 23% do gasto total
		assert.InDelta(t, summary.TotalSpend*0.23, summary.PotentialSavings, 1e-9)

		// IssueCounter fixo em 2: uma recomendação por campanha somada
		assert.Equal(t, 4, summary.TotalRecommendations)

		first := summary.Campaigns[0]
		assert.Equal(t, "111", first.ID)
		assert.InDelta(t, 2.0, first.Spend, 1e-9)
		assert.InDelta(t, 5.0, first.Budget, 1e-9)
		assert.InDelta(t, 0.5, first.CPA, 1e-9)
		assert.Equal(t, 2, first.Issues)

		second := summary.Campaigns[1]
		assert.InDelta(t, 1.5, second.Spend, 1e-9)
		assert.Zero(t, second.Budget)
		// Sem conversões o CPA é zero, nunca divisão por zero
		assert.Zero(t, second.CPA)
	})

	t.Run("Relatório vazio produz resumo zerado mas válido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)
		mockClient.EXPECT().
			SearchCampaigns(gomock.Any(), "access-123", "1234567890").
			Return([]googledomain.SearchRow{}, nil)

		integrator := New(cfg, mockClient, fixedIssueCounter(0))

		summary, err := integrator.FetchCampaignSummary(context.Background(), "access-123", "1234567890")
		require.NoError(t, err)

		assert.True(t, summary.Success)
		assert.Zero(t, summary.TotalCampaigns)
		assert.Zero(t, summary.TotalSpend)
		assert.Zero(t, summary.PotentialSavings)
		assert.Empty(t, summary.Campaigns)
	})

	t.Run("Erro do cliente é propagado sem resumo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)
		mockClient.EXPECT().
			SearchCampaigns(gomock.Any(), "access-123", "1234567890").
			Return(nil, errors.New("erro ao consultar campanhas. Status: 403"))

		integrator := New(cfg, mockClient, nil)

		summary, err := integrator.FetchCampaignSummary(context.Background(), "access-123", "1234567890")
		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}

func TestDefaultIssueCounter(t *testing.T) {
	// O placeholder de demonstração fica sempre no intervalo [0, 4]
	for range 100 {
		value := DefaultIssueCounter()
		assert.GreaterOrEqual(t, value, 0)
		assert.LessOrEqual(t, value, 4)
	}
}
