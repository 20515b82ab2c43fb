package scanning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-pilot-api/internal/config"
	"github.com/vfg2006/ads-pilot-api/internal/domain"
	"github.com/vfg2006/ads-pilot-api/internal/usecases/scanning/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig(developerToken string) *config.Config {
	return &config.Config{
		Google: config.Google{
			DeveloperToken: developerToken,
		},
	}
}

func TestService_Scan(t *testing.T) {
	liveSummary := &domain.ScanSummary{
		Success:        true,
		TotalCampaigns: 2,
		TotalSpend:     310.5,
		Campaigns: []domain.CampaignRecord{
			{Name: "Brand - Search", Status: "ENABLED"},
			{Name: "Display Remarketing", Status: "PAUSED"},
		},
	}

	tests := []struct {
		name       string
		cfg        *config.Config
		customerID string
		setup      func(mockFetcher *mocks.MockCampaignFetcher)
		validate   func(t *testing.T, summary *domain.ScanSummary)
	}{
		{
			name:       "Sem customer_id retorna exatamente o dataset mock",
			cfg:        testConfig("dev-token"),
			customerID: "",
			setup: func(mockFetcher *mocks.MockCampaignFetcher) {
				// A API de relatórios não deve ser consultada
			},
			validate: func(t *testing.T, summary *domain.ScanSummary) {
				assert.Equal(t, MockSummary(), summary)
			},
		},
		{
			name:       "Sem developer token degrada para o dataset mock",
			cfg:        testConfig(""),
			customerID: "customers/1234567890",
			setup:      func(mockFetcher *mocks.MockCampaignFetcher) {},
			validate: func(t *testing.T, summary *domain.ScanSummary) {
				assert.Equal(t, MockSummary(), summary)
			},
		},
		{
			name:       "Falha na API de relatórios degrada para o dataset mock",
			cfg:        testConfig("dev-token"),
			customerID: "customers/1234567890",
			setup: func(mockFetcher *mocks.MockCampaignFetcher) {
				mockFetcher.EXPECT().
					FetchCampaignSummary(gomock.Any(), "access-123", "customers/1234567890").
					Return(nil, errors.New("erro ao consultar campanhas. Status: 403"))
			},
			validate: func(t *testing.T, summary *domain.ScanSummary) {
				assert.Equal(t, MockSummary(), summary)
			},
		},
		{
			name:       "Com dados reais disponíveis o resumo real é retornado",
			cfg:        testConfig("dev-token"),
			customerID: "customers/1234567890",
			setup: func(mockFetcher *mocks.MockCampaignFetcher) {
				mockFetcher.EXPECT().
					FetchCampaignSummary(gomock.Any(), "access-123", "customers/1234567890").
					Return(liveSummary, nil)
			},
			validate: func(t *testing.T, summary *domain.ScanSummary) {
				assert.Equal(t, liveSummary, summary)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFetcher := mocks.NewMockCampaignFetcher(ctrl)
			tt.setup(mockFetcher)

			service := NewService(tt.cfg, mockFetcher)

			summary := service.Scan(context.Background(), "access-123", tt.customerID)
			require.NotNil(t, summary)
			tt.validate(t, summary)
		})
	}
}

func TestMockSummary(t *testing.T) {
	summary := MockSummary()

	// Totais fixos fazem parte do contrato com o front end
	assert.True(t, summary.Success)
	assert.Equal(t, 8, summary.TotalCampaigns)
	assert.Len(t, summary.Campaigns, 8)
	assert.Equal(t, 6, summary.ActiveCampaigns)
	assert.Equal(t, 247, summary.TotalKeywords)
	assert.Equal(t, float64(12450), summary.TotalSpend)
	assert.Equal(t, int64(3842), summary.TotalClicks)
	assert.Equal(t, float64(156), summary.TotalConversions)
	assert.Equal(t, float64(2890), summary.PotentialSavings)
	assert.Equal(t, 23, summary.TotalRecommendations)

	// O dataset é idêntico em toda chamada
	assert.Equal(t, summary, MockSummary())

	enabled := 0
	for _, campaign := range summary.Campaigns {
		if campaign.Status == domain.CampaignStatusEnabled {
			enabled++
		}
	}
	assert.Equal(t, summary.ActiveCampaigns, enabled)
}
