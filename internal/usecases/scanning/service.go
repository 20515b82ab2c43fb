package scanning

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-pilot-api/internal/config"
	"github.com/vfg2006/ads-pilot-api/internal/domain"
)

type Service struct {
	cfg     *config.Config
	fetcher CampaignFetcher
}

func NewService(cfg *config.Config, fetcher CampaignFetcher) Scanner {
	return &Service{
		cfg:     cfg,
		fetcher: fetcher,
	}
}

// Scan devolve o resumo de campanhas de uma conta. O contrato com o front
// end é "sempre retornar algo renderizável": sem conta selecionada, sem
// developer token ou com falha na API, o dataset mock entra no lugar.
// A validação do access token é do handler - token ausente é erro do
// chamador e nunca vira dados mock.
//
// Limitação conhecida: o chamador não distingue uma conta real sem
// campanhas de um fallback por falha (ver DESIGN.md)
func (s *Service) Scan(ctx context.Context, accessToken string, customerID string) *domain.ScanSummary {
	// Sem conta selecionada ainda não é um erro: o front end usa o mock
	// como dataset de demonstração
	if customerID == "" {
		logrus.Info("scan: customer_id não informado - retornando dados mock")
		return MockSummary()
	}

	if !s.cfg.Google.HasDeveloperToken() {
		logrus.Warn("scan: developer token ausente - retornando dados mock")
		return MockSummary()
	}

	summary, err := s.fetcher.FetchCampaignSummary(ctx, accessToken, customerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("scan: falha ao obter dados reais - retornando dados mock")
		return MockSummary()
	}

	return summary
}
