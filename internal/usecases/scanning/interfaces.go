package scanning

import (
	"context"

	"github.com/vfg2006/ads-pilot-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// CampaignFetcher busca e agrega as campanhas de uma conta na API de
// relatórios. Retorna erro quando dados reais não puderam ser obtidos; a
// decisão de substituir por dados mock é do Scanner, não do fetcher
type CampaignFetcher interface {
	FetchCampaignSummary(ctx context.Context, accessToken string, customerID string) (*domain.ScanSummary, error)
}

// Scanner é a operação de scan exposta à API. Sempre devolve um resumo
// renderizável: falhas de upstream degradam para o dataset mock
type Scanner interface {
	Scan(ctx context.Context, accessToken string, customerID string) *domain.ScanSummary
}
