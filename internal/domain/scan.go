package domain

// CampaignRecord representa uma campanha do Google Ads já convertida
// para os valores exibidos no dashboard (micros -> unidade monetária)
type CampaignRecord struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Budget      float64 `json:"budget"`
	Spend       float64 `json:"spend"`
	Clicks      int64   `json:"clicks"`
	Conversions float64 `json:"conversions"`
	CPA         float64 `json:"cpa"`
	Issues      int     `json:"issues"`
}

// CampaignStatusEnabled é o valor sentinela usado pela API do Google Ads
// para campanhas ativas
const CampaignStatusEnabled = "ENABLED"

// ScanSummary agrega as campanhas de uma conta em totais para o dashboard.
// Recalculado a cada requisição; nada é persistido entre chamadas
type ScanSummary struct {
	Success              bool             `json:"success"`
	TotalCampaigns       int              `json:"totalCampaigns"`
	ActiveCampaigns      int              `json:"activeCampaigns"`
	TotalKeywords        int              `json:"totalKeywords"`
	TotalSpend           float64          `json:"totalSpend"`
	TotalClicks          int64            `json:"totalClicks"`
	TotalConversions     float64          `json:"totalConversions"`
	PotentialSavings     float64          `json:"potentialSavings"`
	TotalRecommendations int              `json:"totalRecommendations"`
	Campaigns            []CampaignRecord `json:"campaigns"`
}
