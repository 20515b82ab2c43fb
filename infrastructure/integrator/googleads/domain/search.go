package googledomain

// SearchResponse é a resposta do endpoint googleAds:search
type SearchResponse struct {
	Results       []SearchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken"`
}

// SearchRow é uma linha do relatório de campanhas. A API REST do Google Ads
// serializa métricas int64 como strings JSON, por isso a opção ",string"
type SearchRow struct {
	Campaign       Campaign        `json:"campaign"`
	Metrics        Metrics         `json:"metrics"`
	CampaignBudget *CampaignBudget `json:"campaignBudget"`
}

type Campaign struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
}

type Metrics struct {
	CostMicros  int64   `json:"costMicros,string"`
	Clicks      int64   `json:"clicks,string"`
	Impressions int64   `json:"impressions,string"`
	Conversions float64 `json:"conversions"`
}

type CampaignBudget struct {
	ResourceName string `json:"resourceName"`
	AmountMicros int64  `json:"amountMicros,string"`
}

// ErrorResponse é o envelope de erro da API do Google Ads
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
