package scanning

import "github.com/vfg2006/ads-pilot-api/internal/domain"

// MockSummary retorna o dataset fixo de demonstração usado como fallback
// sempre que dados reais não podem ser buscados. Os valores são os mesmos
// em toda chamada; os totais são parte do contrato com o front end
func MockSummary() *domain.ScanSummary {
	return &domain.ScanSummary{
		Success:              true,
		TotalCampaigns:       8,
		ActiveCampaigns:      6,
		TotalKeywords:        247,
		TotalSpend:           12450,
		TotalClicks:          3842,
		TotalConversions:     156,
		PotentialSavings:     2890,
		TotalRecommendations: 23,
		Campaigns: []domain.CampaignRecord{
			{Name: "Emergency Plumbing - Boston", Status: "ENABLED", Budget: 2500, Spend: 2340, Clicks: 892, Conversions: 45, CPA: 52, Issues: 3},
			{Name: "HVAC Repair Services", Status: "ENABLED", Budget: 3000, Spend: 2890, Clicks: 1024, Conversions: 38, CPA: 76, Issues: 2},
			{Name: "Water Heater Installation", Status: "ENABLED", Budget: 1500, Spend: 1420, Clicks: 567, Conversions: 22, CPA: 65, Issues: 1},
			{Name: "Drain Cleaning Services", Status: "ENABLED", Budget: 1200, Spend: 980, Clicks: 445, Conversions: 18, CPA: 54, Issues: 0},
			{Name: "Commercial Plumbing", Status: "PAUSED", Budget: 2000, Spend: 1650, Clicks: 398, Conversions: 12, CPA: 138, Issues: 5},
			{Name: "Leak Detection & Repair", Status: "ENABLED", Budget: 1800, Spend: 1720, Clicks: 516, Conversions: 21, CPA: 82, Issues: 4},
			{Name: "24/7 Emergency Services", Status: "ENABLED", Budget: 2200, Spend: 1950, Clicks: 678, Conversions: 31, CPA: 63, Issues: 2},
			{Name: "Residential Plumbing", Status: "PAUSED", Budget: 1600, Spend: 500, Clicks: 187, Conversions: 7, CPA: 71, Issues: 1},
		},
	}
}
